package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/config"
	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/darkkaiser/notify-relay/internal/pkg/fetcher"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/darkkaiser/notify-relay/pkg/strutil"
	"github.com/tidwall/gjson"
	"gopkg.in/gomail.v2"
)

const gmailErrorPrefix = "Gmail API error"

// gmailBackend SMTP 자격 증명이 설정된 경우 선택되며, 실제 발송은 Gmail REST API로 수행합니다.
//
// 메시지는 RFC 5322 형식으로 구성한 뒤 base64url로 인코딩하여 {"raw": ...} 본문으로 전송합니다.
type gmailBackend struct {
	smtp    *config.SMTPConfig
	gmail   *config.GmailConfig
	fetcher fetcher.Fetcher
	logger  applog.FieldLogger
}

func newGmailBackend(cfg *config.AppConfig, f fetcher.Fetcher, logger applog.FieldLogger) *gmailBackend {
	return &gmailBackend{
		smtp:    &cfg.Email.SMTP,
		gmail:   &cfg.Email.Gmail,
		fetcher: f,
		logger:  logger,
	}
}

func (b *gmailBackend) Name() string { return BackendGmail }

func (b *gmailBackend) Usable() bool { return b.smtp.Configured() }

func (b *gmailBackend) Send(ctx context.Context, msg *Message) (*Result, error) {
	result, err := b.send(ctx, msg)
	if err == nil {
		return result, nil
	}

	if !b.gmail.SimulateOnFailure {
		return nil, err
	}

	b.logger.WithFields(applog.Fields{
		"backend":   BackendGmail,
		"smtp_host": b.smtp.Host,
		"smtp_user": b.smtp.User,
		"to":        msg.To,
		"subject":   msg.Subject,
		"error":     err.Error(),
	}).Warn("Gmail API 발송에 실패하여 발송된 것으로 간주합니다 (simulate_on_failure)")

	return &Result{
		Success:   true,
		MessageID: newMessageID("smtp_sim"),
	}, nil
}

func (b *gmailBackend) send(ctx context.Context, msg *Message) (*Result, error) {
	if b.gmail.AccessToken == "" {
		return nil, newDispatchError(gmailErrorPrefix + ": access token not configured")
	}

	raw, err := composeRFC5322(msg)
	if err != nil {
		return nil, err
	}

	b.logger.WithFields(applog.Fields{
		"backend": BackendGmail,
		"token":   strutil.MaskSensitiveData(b.gmail.AccessToken),
		"bytes":   len(raw),
	}).Debug("Gmail API로 메시지를 전송합니다")

	req, err := newAuthorizedRequest(ctx, http.MethodPost, b.gmail.APIURL, b.gmail.AccessToken, map[string]string{
		"raw": base64.URLEncoding.EncodeToString(raw),
	})
	if err != nil {
		return nil, err
	}

	data, err := fetcher.DoRead(b.fetcher, req)
	if err != nil {
		return nil, newRequestError(err, gmailErrorPrefix)
	}

	return &Result{
		Success:   true,
		MessageID: gjson.GetBytes(data, "id").String(),
	}, nil
}

// composeRFC5322 텍스트 본문과 HTML 대체 본문을 갖는 multipart/alternative 메시지를 구성합니다.
func composeRFC5322(msg *Message) ([]byte, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "메일 메시지 구성에 실패했습니다")
	}
	return buf.Bytes(), nil
}
