// Package email 설정된 자격 증명에 따라 메일 백엔드를 선택하여 한 명의 수신자에게 메일을 발송합니다.
//
// 백엔드는 아래 순서로 평가되며, 사용 가능한 첫 번째 백엔드가 선택됩니다.
//
//	jmap  → FASTMAIL_API_TOKEN + FASTMAIL_USERNAME
//	api   → EMAIL_SERVICE_URL + EMAIL_API_KEY
//	gmail → SMTP_HOST + SMTP_USER + SMTP_PASS (인증은 GMAIL_ACCESS_TOKEN)
//	dev   → 항상 사용 가능 (로그만 남기고 실제로 발송하지 않음)
package email

import "context"

const component = "email.dispatcher"

// 백엔드 식별자
const (
	BackendJMAP  = "jmap"
	BackendAPI   = "api"
	BackendGmail = "gmail"
	BackendDev   = "dev"
)

// Message 백엔드에 전달되는 메일 한 통입니다.
// JSON 태그는 범용 메일 API 백엔드의 요청 본문 형식과 같습니다.
type Message struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// Result 발송 성공 결과입니다.
type Result struct {
	Success      bool   `json:"success"`
	MessageID    string `json:"messageId"`
	SubmissionID string `json:"submissionId,omitempty"`
}

// Backend 메일 발송 수단 하나를 나타냅니다.
type Backend interface {
	// Name 메트릭 라벨과 로그에 사용하는 백엔드 식별자입니다.
	Name() string

	// Usable 현재 설정으로 이 백엔드를 사용할 수 있는지 반환합니다.
	Usable() bool

	Send(ctx context.Context, msg *Message) (*Result, error)
}
