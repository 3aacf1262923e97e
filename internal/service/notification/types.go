// Package notification 알림 요청을 검증하고 수신자를 해석한 뒤, 수신자마다 메일을 발송하여 결과를 집계합니다.
package notification

import (
	"context"

	"github.com/darkkaiser/notify-relay/internal/service/contact"
	"github.com/darkkaiser/notify-relay/internal/service/notification/email"
)

// DefaultRecipient recipients가 생략된 요청의 기본 수신자 라벨입니다.
const DefaultRecipient = "personal"

// 수신자별 에러 항목의 채널 구분
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// 집계 결과 메시지
const (
	MessageAllSent   = "All notifications sent successfully"
	MessagePartial   = "Some notifications failed to send"
	MessageAllFailed = "All notifications failed to send"
)

// Request 검증을 통과한 알림 요청입니다.
type Request struct {
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients,omitempty"`
}

// Sent 발송에 성공한 주소 목록입니다. 항상 배열로 직렬화됩니다.
type Sent struct {
	Email []string `json:"email"`
	SMS   []string `json:"sms"`
}

// SendError 수신자 한 명에 대한 발송 실패 기록입니다.
type SendError struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Error     string `json:"error"`
}

// Result 알림 요청 하나의 집계 결과입니다.
type Result struct {
	Success bool        `json:"success"`
	Sent    Sent        `json:"sent"`
	Errors  []SendError `json:"errors"`
	Message string      `json:"message"`
}

// Sender 수신자 한 명에게 메일을 발송합니다. email.Dispatcher가 구현합니다.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) (*email.Result, error)
}

// Resolver 수신자 라벨을 주소 집합으로 해석합니다. contact.Resolver가 구현합니다.
type Resolver interface {
	Resolve(labels []string) contact.ResolvedSet
}

var (
	_ Sender   = (*email.Dispatcher)(nil)
	_ Resolver = (*contact.Resolver)(nil)
)
