package email

import (
	"context"

	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/darkkaiser/notify-relay/pkg/strutil"
)

const maxLoggedBody = 200

// devBackend 메일 자격 증명이 하나도 없을 때 사용됩니다. 발송할 내용을 로그에만 남깁니다.
type devBackend struct {
	logger applog.FieldLogger
}

func newDevBackend(logger applog.FieldLogger) *devBackend {
	return &devBackend{logger: logger}
}

func (b *devBackend) Name() string { return BackendDev }

func (b *devBackend) Usable() bool { return true }

func (b *devBackend) Send(_ context.Context, msg *Message) (*Result, error) {
	b.logger.WithFields(applog.Fields{
		"backend": BackendDev,
		"to":      msg.To,
		"subject": msg.Subject,
		"body":    strutil.Truncate(msg.Text, maxLoggedBody),
	}).Info("개발 모드: 메일을 실제로 발송하지 않습니다")

	return &Result{
		Success:   true,
		MessageID: newMessageID(BackendDev),
	}, nil
}
