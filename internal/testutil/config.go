package testutil

import (
	"testing"

	"github.com/darkkaiser/notify-relay/internal/config"
)

// 테스트 연락처 주소
const (
	PersonalAddress = "me@fastmail.com"
	WorkAddress     = "me@work.io"
	UrgentAddress   = "pager@work.io"
)

// NewAppConfig 기본값에 테스트 연락처를 채운 설정을 반환합니다. 메일 자격 증명이 없으므로 개발 백엔드가 선택됩니다.
func NewAppConfig(t testing.TB, mutators ...func(c *config.AppConfig)) *config.AppConfig {
	t.Helper()

	cfg := config.Default()
	cfg.Contacts = config.ContactsConfig{
		Personal: PersonalAddress,
		Work:     WorkAddress,
		Urgent:   UrgentAddress,
	}

	for _, mutate := range mutators {
		mutate(&cfg)
	}

	return &cfg
}
