// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darkkaiser/notify-relay/internal/pkg/version"
	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/darkkaiser/notify-relay/internal/service/api/model/system"
	"github.com/darkkaiser/notify-relay/internal/service/contact"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/labstack/echo/v4"
)

// BackendSelector 현재 설정에서 선택되는 메일 백엔드의 이름을 반환합니다. email.Dispatcher가 구현합니다.
type BackendSelector interface {
	BackendName() string
}

// DirectoryProvider 현재 설정으로 구성되는 연락처 디렉토리를 반환합니다. contact.Resolver가 구현합니다.
type DirectoryProvider interface {
	Directory() *contact.Directory
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	backends BackendSelector
	contacts DirectoryProvider

	authEnabled bool

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(backends BackendSelector, contacts DirectoryProvider, authEnabled bool) *Handler {
	if backends == nil {
		panic(constants.PanicMsgBackendSelectorRequired)
	}
	if contacts == nil {
		panic(constants.PanicMsgDirectoryProviderRequired)
	}

	return &Handler{
		backends: backends,
		contacts: contacts,

		authEnabled: authEnabled,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 가동 시간과 현재 설정에서 선택되는 메일 백엔드, 연락처 디렉토리의 출처를 반환합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug("헬스체크 요청")

	deps := map[string]system.DependencyStatus{
		constants.DependencyEmailBackend: {
			Status:  constants.HealthStatusHealthy,
			Message: h.backends.BackendName(),
		},
	}

	dir := h.contacts.Directory()
	if dir == nil || dir.Deliverable() == 0 {
		deps[constants.DependencyContactDirectory] = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepNoContacts,
		}
	} else {
		deps[constants.DependencyContactDirectory] = system.DependencyStatus{
			Status:  constants.HealthStatusHealthy,
			Message: fmt.Sprintf("%s (%d contacts)", dir.Source, dir.Deliverable()),
		}
	}

	status := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			status = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		AuthEnabled:  h.authEnabled,
		Dependencies: deps,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 애플리케이션 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	bi := version.Get()

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     bi.Version,
		Commit:      bi.Commit,
		BuildDate:   bi.BuildDate,
		BuildNumber: bi.BuildNumber,
		GoVersion:   bi.GoVersion,
	})
}
