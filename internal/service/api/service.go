// Package api 알림 릴레이의 HTTP 서버와 그 생명주기를 관리합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/notify-relay/docs"
	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/darkkaiser/notify-relay/internal/service/api/auth"
	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/darkkaiser/notify-relay/internal/service/api/handler"
	"github.com/darkkaiser/notify-relay/internal/service/api/handler/system"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 알림 릴레이 HTTP 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하고, 전달한 context가 취소되면 Graceful Shutdown을 수행한 뒤
// WaitGroup의 Done()을 호출합니다.
type Service struct {
	appConfig *config.AppConfig

	notifier handler.Notifier
	backends system.BackendSelector
	contacts system.DirectoryProvider

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, notifier handler.Notifier, backends system.BackendSelector, contacts system.DirectoryProvider) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if notifier == nil {
		panic(constants.PanicMsgNotifierRequired)
	}
	if backends == nil {
		panic(constants.PanicMsgBackendSelectorRequired)
	}
	if contacts == nil {
		panic(constants.PanicMsgDirectoryProviderRequired)
	}

	return &Service{
		appConfig: appConfig,

		notifier: notifier,
		backends: backends,
		contacts: contacts,
	}
}

// Start API 서비스를 시작합니다.
//
// 서버는 별도의 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn("API 서비스가 이미 시작됨")
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": s.appConfig.Server.ListenPort,
		"tls":  s.appConfig.Server.TLSServer,
	}).Info("API 서비스 시작됨")

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 인증 게이트, 핸들러, 미들웨어 체인, 라우트를 구성한 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	gate := auth.NewGate(s.appConfig.Auth)

	systemHandler := system.NewHandler(s.backends, s.contacts, gate.Enabled())
	notificationHandler := handler.NewNotificationHandler(s.notifier)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:      s.appConfig.Debug,
		BodyLimit:  s.appConfig.Server.BodyLimit,
		EnableHSTS: s.appConfig.Server.TLSServer,
	})

	RegisterRoutes(e, systemHandler)
	RegisterNotificationRoutes(e, notificationHandler, gate)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다. 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	address := fmt.Sprintf(":%d", s.appConfig.Server.ListenPort)

	var err error
	if s.appConfig.Server.TLSServer {
		err = e.StartTLS(address, s.appConfig.Server.TLSCertFile, s.appConfig.Server.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 사유를 기록합니다. Graceful Shutdown에 의한 종료는 Info로 남깁니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info("HTTP 서버 종료됨")
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.Server.ListenPort,
		"error": err,
	}).Error("HTTP 서버를 구성하는 중에 치명적인 오류가 발생하였습니다")
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
// HTTP 서버가 먼저 종료된 경우(포트 바인딩 실패 등)에는 Shutdown 없이 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info("API 서비스 중지중...")

	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error("HTTP 서버가 예기치 않게 종료되었습니다")
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error("HTTP 서버 Graceful Shutdown 중 오류가 발생하였습니다")
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 중지됨")
}
