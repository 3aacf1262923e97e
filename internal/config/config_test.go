package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv 테스트가 실행 환경의 변수에 영향을 받지 않도록 관련 환경 변수를 제거합니다.
func clearEnv(t *testing.T) {
	t.Helper()

	for name := range wellKnownEnv {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notify-relay.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultListenPort, cfg.Server.ListenPort)
	assert.Equal(t, DefaultBodyLimit, cfg.Server.BodyLimit)
	assert.Equal(t, DefaultFastmailSessionURL, cfg.Email.Fastmail.SessionURL)
	assert.Equal(t, DefaultGmailAPIURL, cfg.Email.Gmail.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Email.Timeout())
	assert.False(t, cfg.Auth.IsEnabled())
	assert.Equal(t, DefaultFromEmail, cfg.Email.SenderAddress())
}

func TestLoad_WellKnownEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_TOKEN", "s3cret")
	t.Setenv("CONTACTS_CONFIG", `{"email":{}}`)
	t.Setenv("CONTACT_PERSONAL", "me@fastmail.com")
	t.Setenv("CONTACT_WORK", "me@work.io")
	t.Setenv("CONTACT_URGENT", "pager@work.io")
	t.Setenv("FASTMAIL_API_TOKEN", "fmu1-token")
	t.Setenv("FASTMAIL_USERNAME", "me@fastmail.com")
	t.Setenv("EMAIL_SERVICE_URL", "https://mail.example.net/send")
	t.Setenv("EMAIL_API_KEY", "key")
	t.Setenv("SMTP_HOST", "smtp.gmail.com")
	t.Setenv("SMTP_USER", "me@gmail.com")
	t.Setenv("SMTP_PASS", "pass")
	t.Setenv("GMAIL_ACCESS_TOKEN", "ya29.token")
	t.Setenv("GMAIL_SIMULATE_ON_FAILURE", "true")
	t.Setenv("FROM_EMAIL", "relay@work.io")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Auth.IsEnabled())
	assert.Equal(t, "s3cret", cfg.Auth.Token)
	assert.Equal(t, `{"email":{}}`, cfg.Contacts.ConfigJSON)
	assert.Equal(t, "me@fastmail.com", cfg.Contacts.Personal)
	assert.Equal(t, "me@work.io", cfg.Contacts.Work)
	assert.Equal(t, "pager@work.io", cfg.Contacts.Urgent)
	assert.True(t, cfg.Email.Fastmail.Configured())
	assert.True(t, cfg.Email.Service.Configured())
	assert.True(t, cfg.Email.SMTP.Configured())
	assert.Equal(t, "ya29.token", cfg.Email.Gmail.AccessToken)
	assert.True(t, cfg.Email.Gmail.SimulateOnFailure)
	assert.Equal(t, 9090, cfg.Server.ListenPort)
	assert.Equal(t, "me@fastmail.com", cfg.Email.SenderAddress())
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	path := writeConfigFile(t, `{
		"server": {"listen_port": 7000},
		"email": {"from_email": "file@work.io"}
	}`)

	t.Run("파일이 기본값을 덮어쓴다", func(t *testing.T) {
		cfg, err := LoadWithOptions(LoadOptions{Filename: path})
		require.NoError(t, err)
		assert.Equal(t, 7000, cfg.Server.ListenPort)
		assert.Equal(t, "file@work.io", cfg.Email.FromEmail)
	})

	t.Run("고정 이름 환경 변수가 파일을 덮어쓴다", func(t *testing.T) {
		t.Setenv("FROM_EMAIL", "env@work.io")

		cfg, err := LoadWithOptions(LoadOptions{Filename: path})
		require.NoError(t, err)
		assert.Equal(t, "env@work.io", cfg.Email.FromEmail)
	})

	t.Run("접두사 환경 변수가 고정 이름보다 우선한다", func(t *testing.T) {
		t.Setenv("PORT", "7100")
		t.Setenv("NOTIFY_RELAY_SERVER__LISTEN_PORT", "7200")

		cfg, err := LoadWithOptions(LoadOptions{Filename: path})
		require.NoError(t, err)
		assert.Equal(t, 7200, cfg.Server.ListenPort)
	})

	t.Run("Overrides가 최우선이다", func(t *testing.T) {
		t.Setenv("NOTIFY_RELAY_SERVER__LISTEN_PORT", "7200")

		cfg, err := LoadWithOptions(LoadOptions{
			Filename:  path,
			Overrides: map[string]any{"server.listen_port": 7300},
		})
		require.NoError(t, err)
		assert.Equal(t, 7300, cfg.Server.ListenPort)
	})
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("명시한 파일이 없으면 에러", func(t *testing.T) {
		_, err := LoadWithOptions(LoadOptions{Filename: filepath.Join(t.TempDir(), "missing.json")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
		assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
	})

	t.Run("알 수 없는 키는 거부", func(t *testing.T) {
		path := writeConfigFile(t, `{"server": {"listen_port": 8080, "unknown_key": 1}}`)

		_, err := LoadWithOptions(LoadOptions{Filename: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown_key")
	})

	t.Run("잘못된 JSON", func(t *testing.T) {
		path := writeConfigFile(t, `{"server": `)

		_, err := LoadWithOptions(LoadOptions{Filename: path})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})
}

func TestLoad_BooleanValues(t *testing.T) {
	clearEnv(t)

	t.Run("불리언 설정값", func(t *testing.T) {
		path := writeConfigFile(t, `{"auth": {"enabled": true, "token": "abc"}, "email": {"gmail": {"simulate_on_failure": true}}}`)

		cfg, err := LoadWithOptions(LoadOptions{Filename: path})
		require.NoError(t, err)
		assert.Equal(t, "true", cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.IsEnabled())
		assert.True(t, cfg.Email.Gmail.SimulateOnFailure)
	})

	t.Run("불리언 false는 인증 비활성", func(t *testing.T) {
		path := writeConfigFile(t, `{"auth": {"enabled": false}}`)

		cfg, err := LoadWithOptions(LoadOptions{Filename: path})
		require.NoError(t, err)
		assert.Equal(t, "false", cfg.Auth.Enabled)
		assert.False(t, cfg.Auth.IsEnabled())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	certFile := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0644))

	tests := []struct {
		name        string
		mutate      func(c *AppConfig)
		expectError string
	}{
		{"기본값", func(c *AppConfig) {}, ""},
		{"포트 범위 초과", func(c *AppConfig) { c.Server.ListenPort = 70000 }, "'server.listen_port' 값이 허용 범위를 벗어났습니다"},
		{"TLS 인증서 누락", func(c *AppConfig) { c.Server.TLSServer = true }, "'server.tls_cert_file' 설정은 필수입니다"},
		{"TLS 인증서 파일 없음", func(c *AppConfig) {
			c.Server.TLSServer = true
			c.Server.TLSCertFile = "/nonexistent/cert.pem"
			c.Server.TLSKeyFile = certFile
		}, "지정된 파일을 찾을 수 없습니다"},
		{"TLS 정상", func(c *AppConfig) {
			c.Server.TLSServer = true
			c.Server.TLSCertFile = certFile
			c.Server.TLSKeyFile = certFile
		}, ""},
		{"메일 API URL 형식", func(c *AppConfig) { c.Email.Service.URL = "not a url" }, "'email.service.url' 값이 올바른 URL 형식이 아닙니다"},
		{"발신 주소 형식", func(c *AppConfig) { c.Email.FromEmail = "relay" }, "'email.from_email' 값이 올바른 이메일 주소 형식이 아닙니다"},
		{"타임아웃 형식", func(c *AppConfig) { c.Email.RequestTimeout = "soon" }, "'email.request_timeout' 값이 올바른 시간 형식이 아닙니다"},
		{"세션 URL 누락", func(c *AppConfig) { c.Email.Fastmail.SessionURL = "" }, "'email.fastmail.session_url' 설정은 필수입니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestAuthConfig_IsEnabled(t *testing.T) {
	t.Parallel()

	for value, expected := range map[string]bool{"true": true, "TRUE": false, "1": false, "": false, "yes": false} {
		assert.Equal(t, expected, AuthConfig{Enabled: value}.IsEnabled(), "AUTH_ENABLED=%q", value)
	}
}

func TestEmailConfig_SenderAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      EmailConfig
		expected string
	}{
		{"Fastmail 계정 우선", EmailConfig{Fastmail: FastmailConfig{Username: "fm@x.io"}, SMTP: SMTPConfig{User: "smtp@x.io"}, FromEmail: "from@x.io"}, "fm@x.io"},
		{"SMTP 사용자", EmailConfig{SMTP: SMTPConfig{User: "smtp@x.io"}, FromEmail: "from@x.io"}, "smtp@x.io"},
		{"FROM_EMAIL", EmailConfig{FromEmail: "from@x.io"}, "from@x.io"},
		{"기본값", EmailConfig{}, DefaultFromEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.SenderAddress())
		})
	}
}

func TestVerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("인증 비활성 및 개발 모드 경고", func(t *testing.T) {
		cfg := Default()

		warnings := cfg.VerifyRecommendations()
		assert.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "인증이 비활성화되어 있습니다")
		assert.Contains(t, warnings[1], "개발 모드")
	})

	t.Run("대문자 TRUE는 별도로 경고", func(t *testing.T) {
		cfg := Default()
		cfg.Auth.Enabled = "TRUE"
		cfg.Email.Service = ServiceConfig{URL: "https://mail.example.net", APIKey: "k"}

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "정확히 'true'로 설정해야 합니다")
	})

	t.Run("토큰 없는 인증과 Gmail 토큰 누락", func(t *testing.T) {
		cfg := Default()
		cfg.Auth.Enabled = "true"
		cfg.Email.SMTP = SMTPConfig{Host: "smtp.gmail.com", User: "u", Pass: "p"}

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "AUTH_TOKEN")
		assert.Contains(t, warnings[1], "GMAIL_ACCESS_TOKEN")
	})
}
