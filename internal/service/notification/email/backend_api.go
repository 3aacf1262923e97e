package email

import (
	"context"
	"net/http"

	"github.com/darkkaiser/notify-relay/internal/config"
	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/darkkaiser/notify-relay/internal/pkg/fetcher"
	"github.com/tidwall/gjson"
)

// responseIDKeys 범용 메일 API 응답에서 메시지 ID를 찾는 키 (Resend, SendGrid 등 제공자마다 다름)
var responseIDKeys = []string{"id", "messageId", "message_id"}

// apiBackend Resend, SendGrid 형식의 범용 HTTP 메일 API를 사용합니다.
type apiBackend struct {
	cfg     *config.ServiceConfig
	fetcher fetcher.Fetcher
}

func newAPIBackend(cfg *config.AppConfig, f fetcher.Fetcher) *apiBackend {
	return &apiBackend{
		cfg:     &cfg.Email.Service,
		fetcher: f,
	}
}

func (b *apiBackend) Name() string { return BackendAPI }

func (b *apiBackend) Usable() bool { return b.cfg.Configured() }

func (b *apiBackend) Send(ctx context.Context, msg *Message) (*Result, error) {
	req, err := newAuthorizedRequest(ctx, http.MethodPost, b.cfg.URL, b.cfg.APIKey, msg)
	if err != nil {
		return nil, err
	}

	data, err := fetcher.DoRead(b.fetcher, req)
	if err != nil {
		var statusErr *fetcher.HTTPStatusError
		if apperrors.As(err, &statusErr) {
			return nil, newDispatchErrorf("Email service error: %d - %s", statusErr.StatusCode, statusErr.BodySnippet)
		}
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "Email service error")
	}

	if !gjson.ValidBytes(data) {
		return nil, newDispatchError("Email service error: invalid JSON response")
	}
	doc := gjson.ParseBytes(data)

	result := &Result{Success: true}
	for _, key := range responseIDKeys {
		if id := doc.Get(key); id.Exists() {
			result.MessageID = id.String()
			break
		}
	}

	return result, nil
}
