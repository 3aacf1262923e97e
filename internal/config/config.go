package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/darkkaiser/notify-relay/pkg/strutil"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "notify-relay"

	// DefaultFilename 명시적인 경로가 없을 때 탐색하는 설정 파일명입니다. 파일이 없으면 건너뜁니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 계층형 설정 키를 덮어쓰는 환경 변수 접두사입니다.
	// 예: NOTIFY_RELAY_SERVER__LISTEN_PORT=9090 → server.listen_port
	EnvPrefix = "NOTIFY_RELAY_"

	DefaultListenPort     = 8080
	DefaultBodyLimit      = "128K"
	DefaultRequestTimeout = "30s"

	DefaultFastmailSessionURL = "https://api.fastmail.com/jmap/session"
	DefaultGmailAPIURL        = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

	// DefaultFromEmail 발신 주소를 결정할 수 없을 때 사용하는 주소입니다.
	DefaultFromEmail = "noreply@example.com"
)

// AppConfig 애플리케이션 설정의 최상위 구조체입니다.
//
// 프로세스 시작 시 한 번 로드된 뒤에는 읽기 전용으로 취급되며,
// 요청 처리 경로에서는 이 스냅샷으로부터 연락처 디렉토리 등을 매번 새로 구성합니다.
type AppConfig struct {
	Debug    bool           `json:"debug"`
	Server   ServerConfig   `json:"server"`
	Auth     AuthConfig     `json:"auth"`
	Contacts ContactsConfig `json:"contacts"`
	Email    EmailConfig    `json:"email"`
}

// ServerConfig HTTP 서버 설정입니다.
type ServerConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	BodyLimit   string `json:"body_limit" validate:"required"`
}

// AuthConfig 인증 게이트 설정입니다.
type AuthConfig struct {
	// Enabled 정확히 "true"일 때만 인증이 활성화됩니다. ("TRUE", "1" 등은 비활성)
	Enabled string `json:"enabled"`
	Token   string `json:"token"`
}

// IsEnabled 인증 게이트가 활성화되어 있는지 반환합니다.
func (c AuthConfig) IsEnabled() bool {
	return c.Enabled == "true"
}

// ContactsConfig 연락처 디렉토리의 원천 데이터입니다.
type ContactsConfig struct {
	// ConfigJSON 전체 디렉토리를 기술하는 JSON 문서 (CONTACTS_CONFIG)
	ConfigJSON string `json:"config_json"`

	Personal string `json:"personal"`
	Work     string `json:"work"`
	Urgent   string `json:"urgent"`
}

// EmailConfig 메일 백엔드 설정입니다. 어떤 백엔드를 사용할지는 자격 증명의 존재 여부로 결정됩니다.
type EmailConfig struct {
	FromEmail      string `json:"from_email" validate:"omitempty,email"`
	RequestTimeout string `json:"request_timeout" validate:"required,duration"`

	Fastmail FastmailConfig `json:"fastmail"`
	Service  ServiceConfig  `json:"service"`
	SMTP     SMTPConfig     `json:"smtp"`
	Gmail    GmailConfig    `json:"gmail"`
}

// FastmailConfig JMAP 백엔드 설정입니다.
type FastmailConfig struct {
	APIToken   string `json:"api_token"`
	Username   string `json:"username"`
	SessionURL string `json:"session_url" validate:"required,url"`
}

// Configured JMAP 백엔드를 사용할 수 있는지 반환합니다.
func (c FastmailConfig) Configured() bool {
	return c.APIToken != "" && c.Username != ""
}

// ServiceConfig 범용 HTTP 메일 API 설정입니다.
type ServiceConfig struct {
	URL    string `json:"url" validate:"omitempty,url"`
	APIKey string `json:"api_key"`
}

// Configured 범용 메일 API 백엔드를 사용할 수 있는지 반환합니다.
func (c ServiceConfig) Configured() bool {
	return c.URL != "" && c.APIKey != ""
}

// SMTPConfig SMTP 자격 증명입니다. Gmail 백엔드 선택의 트리거로만 사용됩니다.
type SMTPConfig struct {
	Host string `json:"host"`
	User string `json:"user"`
	Pass string `json:"pass"`
}

// Configured SMTP 자격 증명이 모두 설정되어 있는지 반환합니다.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// GmailConfig Gmail REST API 설정입니다.
type GmailConfig struct {
	AccessToken string `json:"access_token"`
	APIURL      string `json:"api_url" validate:"required,url"`

	// SimulateOnFailure 발송 실패 시 에러 대신 가상의 메시지 ID로 성공 처리합니다. (이전 동작 호환용)
	SimulateOnFailure bool `json:"simulate_on_failure"`
}

// SenderAddress 발신 주소를 FASTMAIL_USERNAME → SMTP_USER → FROM_EMAIL → 기본값 순으로 결정합니다.
func (c EmailConfig) SenderAddress() string {
	if from := strutil.FirstNonBlank(c.Fastmail.Username, c.SMTP.User, c.FromEmail); from != "" {
		return from
	}
	return DefaultFromEmail
}

// Timeout 외부 메일 제공자 호출의 타임아웃을 반환합니다.
func (c EmailConfig) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultRequestTimeout)
	}
	return d
}

// Default 모든 설정 항목의 기본값을 반환합니다.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			ListenPort: DefaultListenPort,
			BodyLimit:  DefaultBodyLimit,
		},
		Email: EmailConfig{
			RequestTimeout: DefaultRequestTimeout,
			Fastmail: FastmailConfig{
				SessionURL: DefaultFastmailSessionURL,
			},
			Gmail: GmailConfig{
				APIURL: DefaultGmailAPIURL,
			},
		},
	}
}

// VerifyRecommendations 실행은 가능하지만 운영상 주의가 필요한 설정을 진단합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if !c.Auth.IsEnabled() {
		if strings.EqualFold(c.Auth.Enabled, "true") || c.Auth.Enabled == "1" {
			warnings = append(warnings, fmt.Sprintf("AUTH_ENABLED 값('%s')은 인증을 활성화하지 않습니다. 정확히 'true'로 설정해야 합니다", c.Auth.Enabled))
		} else {
			warnings = append(warnings, "인증이 비활성화되어 있습니다. 누구나 알림 발송을 요청할 수 있습니다")
		}
	} else if c.Auth.Token == "" {
		warnings = append(warnings, "인증이 활성화되었지만 AUTH_TOKEN이 설정되지 않아 모든 요청이 거부됩니다")
	}

	if !c.Email.Fastmail.Configured() && !c.Email.Service.Configured() && !c.Email.SMTP.Configured() {
		warnings = append(warnings, "메일 백엔드 자격 증명이 없습니다. 개발 모드로 동작하며 실제 메일은 발송되지 않습니다")
	}

	if c.Email.SMTP.Configured() && !c.Email.Fastmail.Configured() && !c.Email.Service.Configured() && c.Email.Gmail.AccessToken == "" {
		warnings = append(warnings, "Gmail 백엔드가 선택되었지만 GMAIL_ACCESS_TOKEN이 설정되지 않았습니다")
	}

	if c.Email.Gmail.SimulateOnFailure {
		warnings = append(warnings, "Gmail 발송 실패를 성공으로 위장하는 옵션(simulate_on_failure)이 활성화되어 있습니다")
	}

	if c.Server.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 관리자 권한이 필요할 수 있습니다", c.Server.ListenPort))
	}

	return warnings
}
