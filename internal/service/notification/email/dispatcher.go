package email

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/darkkaiser/notify-relay/internal/metrics"
	"github.com/darkkaiser/notify-relay/internal/pkg/fetcher"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/google/uuid"
)

// Dispatcher 설정된 백엔드 중 첫 번째로 사용 가능한 백엔드를 통해 메일을 발송합니다.
//
// 백엔드 선택은 Send 호출마다 다시 평가됩니다.
// Dispatcher는 가변 상태를 갖지 않으므로 여러 고루틴에서 동시에 사용할 수 있습니다.
type Dispatcher struct {
	cfg      *config.AppConfig
	backends []Backend
	logger   applog.FieldLogger
}

// NewDispatcher 새로운 Dispatcher를 생성합니다.
// f가 nil이면 설정된 타임아웃으로 기본 Fetcher 체인을 구성합니다.
func NewDispatcher(cfg *config.AppConfig, f fetcher.Fetcher, logger applog.FieldLogger) *Dispatcher {
	if cfg == nil {
		panic("email: AppConfig는 필수입니다")
	}
	if f == nil {
		f = fetcher.New(fetcher.Config{
			Timeout: cfg.Email.Timeout(),
			Logger:  logger,
		})
	}

	logger = applog.Component(logger, component)

	return &Dispatcher{
		cfg: cfg,
		backends: []Backend{
			newJMAPBackend(cfg, f, logger),
			newAPIBackend(cfg, f),
			newGmailBackend(cfg, f, logger),
			newDevBackend(logger),
		},
		logger: logger,
	}
}

// Select 현재 설정에서 사용할 백엔드를 반환합니다. dev 백엔드가 항상 마지막에 위치하므로 nil을 반환하지 않습니다.
func (d *Dispatcher) Select() Backend {
	for _, b := range d.backends {
		if b.Usable() {
			return b
		}
	}
	return d.backends[len(d.backends)-1]
}

// BackendName 현재 선택되는 백엔드의 식별자를 반환합니다.
func (d *Dispatcher) BackendName() string {
	return d.Select().Name()
}

// Send 한 명의 수신자에게 메일을 발송합니다.
// 반환되는 에러는 ExecutionFailed 타입이며, 메시지는 수신자별 결과에 그대로 기록됩니다.
func (d *Dispatcher) Send(ctx context.Context, to, subject, body string) (*Result, error) {
	msg := &Message{
		To:      to,
		From:    d.cfg.Email.SenderAddress(),
		Subject: subject,
		Text:    body,
		HTML:    FormatHTML(body),
	}

	b := d.Select()
	started := time.Now()

	result, err := b.Send(ctx, msg)
	metrics.ObserveDispatch(b.Name(), started, err)

	fields := applog.Fields{
		"backend":  b.Name(),
		"to":       to,
		"duration": time.Since(started).String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		d.logger.WithFields(fields).Warn("메일 발송 실패")
		return nil, err
	}

	fields["message_id"] = result.MessageID
	d.logger.WithFields(fields).Info("메일 발송 완료")

	return result, nil
}

func newAuthorizedRequest(ctx context.Context, method, url, token string, payload any) (*http.Request, error) {
	req, err := fetcher.NewJSONRequest(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

// newMessageID 실제 제공자를 거치지 않은 발송 결과에 사용할 식별자를 생성합니다.
//
//	dev_1718000000000_3f2a9c1de
func newMessageID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
