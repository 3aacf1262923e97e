package main

import (
	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/darkkaiser/notify-relay/internal/service/contact"
	"github.com/darkkaiser/notify-relay/internal/service/notification"
	"github.com/darkkaiser/notify-relay/internal/service/notification/email"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
)

// components 설정 스냅샷 하나로 구성되는 도메인 컴포넌트 묶음입니다.
type components struct {
	resolver   *contact.Resolver
	dispatcher *email.Dispatcher
	notifier   *notification.Service
}

// newComponents 연락처 해석기, 메일 디스패처, 알림 오케스트레이터를 구성합니다. logger가 nil이면 전역 로거를 사용합니다.
func newComponents(appConfig *config.AppConfig, logger applog.FieldLogger) *components {
	resolver := contact.NewResolver(appConfig, logger)
	dispatcher := email.NewDispatcher(appConfig, nil, logger)

	return &components{
		resolver:   resolver,
		dispatcher: dispatcher,
		notifier:   notification.NewService(resolver, dispatcher, logger),
	}
}
