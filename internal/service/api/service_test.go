package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/darkkaiser/notify-relay/internal/service/api/auth"
	"github.com/darkkaiser/notify-relay/internal/service/api/constants"
	"github.com/darkkaiser/notify-relay/internal/service/contact"
	"github.com/darkkaiser/notify-relay/internal/service/notification"
	"github.com/darkkaiser/notify-relay/internal/service/notification/email"
	"github.com/darkkaiser/notify-relay/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestService(t *testing.T, cfg *config.AppConfig) *Service {
	t.Helper()

	logger, _ := test.NewNullLogger()
	resolver := contact.NewResolver(cfg, logger)
	dispatcher := email.NewDispatcher(cfg, nil, logger)

	return NewService(cfg, notification.NewService(resolver, dispatcher, logger), dispatcher, resolver)
}

func withAuth(token string) func(c *config.AppConfig) {
	return func(c *config.AppConfig) {
		c.Auth = config.AuthConfig{Enabled: "true", Token: token}
	}
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func assertCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, constants.CORSAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, constants.CORSAllowMethods, rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, constants.CORSAllowHeaders, rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}

func TestNotificationEndpoint(t *testing.T) {
	const validBody = `{"subject":"Build","message":"done","recipients":["work"]}`
	bearer := map[string]string{echo.HeaderAuthorization: "Bearer s3cret", echo.HeaderContentType: echo.MIMEApplicationJSON}

	tests := []struct {
		name          string
		auth          bool
		method        string
		path          string
		body          string
		headers       map[string]string
		expectedCode  int
		expectedType  string
		expectedBody  string
		expectedJSON  string
		expectedEmpty bool
	}{
		{
			name:          "OPTIONS는 인증 없이 204",
			auth:          true,
			method:        http.MethodOptions,
			path:          "/",
			expectedCode:  http.StatusNoContent,
			expectedEmpty: true,
		},
		{
			name:          "임의 경로의 OPTIONS",
			auth:          true,
			method:        http.MethodOptions,
			path:          "/api/notify",
			expectedCode:  http.StatusNoContent,
			expectedEmpty: true,
		},
		{
			name:         "GET은 405",
			auth:         true,
			method:       http.MethodGet,
			path:         "/",
			expectedCode: http.StatusMethodNotAllowed,
			expectedType: echo.MIMETextPlain,
			expectedBody: constants.MsgMethodNotAllowed,
		},
		{
			name:         "PUT은 405",
			method:       http.MethodPut,
			path:         "/notify",
			body:         validBody,
			expectedCode: http.StatusMethodNotAllowed,
			expectedType: echo.MIMETextPlain,
			expectedBody: constants.MsgMethodNotAllowed,
		},
		{
			name:         "Authorization 헤더 누락은 401",
			auth:         true,
			method:       http.MethodPost,
			path:         "/",
			body:         validBody,
			expectedCode: http.StatusUnauthorized,
			expectedType: echo.MIMETextPlain,
			expectedBody: auth.MsgMissingHeader,
		},
		{
			name:         "토큰 불일치는 401",
			auth:         true,
			method:       http.MethodPost,
			path:         "/",
			body:         validBody,
			headers:      map[string]string{echo.HeaderAuthorization: "Bearer wrong"},
			expectedCode: http.StatusUnauthorized,
			expectedType: echo.MIMETextPlain,
			expectedBody: auth.MsgInvalidToken,
		},
		{
			name:         "인증 성공",
			auth:         true,
			method:       http.MethodPost,
			path:         "/",
			body:         validBody,
			headers:      bearer,
			expectedCode: http.StatusOK,
			expectedType: echo.MIMEApplicationJSON,
			expectedJSON: `{"success":true,"sent":{"email":["me@work.io"],"sms":[]},"errors":[],"message":"All notifications sent successfully"}`,
		},
		{
			name:         "인증 비활성 시 기본 수신자",
			method:       http.MethodPost,
			path:         "/",
			body:         `{"subject":"s","message":"m"}`,
			expectedCode: http.StatusOK,
			expectedType: echo.MIMEApplicationJSON,
			expectedJSON: `{"success":true,"sent":{"email":["me@fastmail.com"],"sms":[]},"errors":[],"message":"All notifications sent successfully"}`,
		},
		{
			name:         "그룹 수신자",
			method:       http.MethodPost,
			path:         "/",
			body:         `{"subject":"s","message":"m","recipients":["important"]}`,
			expectedCode: http.StatusOK,
			expectedType: echo.MIMEApplicationJSON,
			expectedJSON: `{"success":true,"sent":{"email":["me@work.io","pager@work.io"],"sms":[]},"errors":[],"message":"All notifications sent successfully"}`,
		},
		{
			name:         "검증 실패는 400",
			auth:         true,
			method:       http.MethodPost,
			path:         "/",
			body:         `{"subject":"s","message":"m","recipients":[]}`,
			headers:      bearer,
			expectedCode: http.StatusBadRequest,
			expectedType: echo.MIMEApplicationJSON,
			expectedJSON: `{"error":"Bad request","message":"Recipients array cannot be empty"}`,
		},
		{
			name:         "잘못된 JSON은 400",
			method:       http.MethodPost,
			path:         "/",
			body:         `{"subject":`,
			expectedCode: http.StatusBadRequest,
			expectedType: echo.MIMEApplicationJSON,
			expectedJSON: `{"error":"Bad request","message":"Request body must be a JSON object"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testutil.NewAppConfig(t)
			if tt.auth {
				withAuth("s3cret")(cfg)
			}

			rec := serve(newTestService(t, cfg).setupServer(), tt.method, tt.path, tt.body, tt.headers)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assertCORS(t, rec)

			if tt.expectedType != "" {
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.expectedType)
			}
			switch {
			case tt.expectedEmpty:
				assert.Empty(t, rec.Body.String())
			case tt.expectedJSON != "":
				assert.JSONEq(t, tt.expectedJSON, rec.Body.String())
			default:
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestNotificationEndpoint_BodyLimit(t *testing.T) {
	cfg := testutil.NewAppConfig(t, func(c *config.AppConfig) { c.Server.BodyLimit = "1K" })
	body := `{"subject":"s","message":"` + strings.Repeat("m", 2048) + `"}`

	rec := serve(newTestService(t, cfg).setupServer(), http.MethodPost, "/", body, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assertCORS(t, rec)
}

func TestSystemEndpoints(t *testing.T) {
	e := newTestService(t, testutil.NewAppConfig(t, withAuth("s3cret"))).setupServer()

	t.Run("health는 인증 불필요", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/health", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
		assert.Contains(t, rec.Body.String(), `"auth_enabled":true`)
		assert.Contains(t, rec.Body.String(), `"message":"dev"`)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
	})

	t.Run("version", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/version", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"go_version"`)
	})

	t.Run("metrics", func(t *testing.T) {
		serve(e, http.MethodPost, "/", `{"subject":"s","message":"m"}`, map[string]string{echo.HeaderAuthorization: "s3cret"})

		rec := serve(e, http.MethodGet, "/metrics", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "notify_relay_email_dispatch_total")
		assert.Contains(t, rec.Body.String(), "notify_relay_notifications_total")
	})

	t.Run("swagger 문서", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/swagger/doc.json", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "notify-relay")
	})
}

func TestService_StartAndShutdown(t *testing.T) {
	port := testutil.FreePort(t)
	cfg := testutil.NewAppConfig(t, func(c *config.AppConfig) { c.Server.ListenPort = port })
	service := newTestService(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 5*time.Second))

	t.Run("중복 시작은 무시", func(t *testing.T) {
		wg.Add(1)
		require.NoError(t, service.Start(ctx, wg))
	})

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	resp, err := client.Post(fmt.Sprintf("http://127.0.0.1:%d/", port), echo.MIMEApplicationJSON, strings.NewReader(`{"subject":"s","message":"m"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	wg.Wait()

	service.runningMu.Lock()
	assert.False(t, service.running)
	service.runningMu.Unlock()
}

func TestService_StartTLS(t *testing.T) {
	certFile, keyFile := testutil.GenerateSelfSignedCert(t)
	port := testutil.FreePort(t)
	cfg := testutil.NewAppConfig(t, func(c *config.AppConfig) {
		c.Server.ListenPort = port
		c.Server.TLSServer = true
		c.Server.TLSCertFile = certFile
		c.Server.TLSKeyFile = keyFile
	})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, newTestService(t, cfg).Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(port, 5*time.Second))

	client := &http.Client{
		Transport: &http.Transport{
			DisableKeepAlives: true,
			TLSClientConfig:   &tls.Config{InsecureSkipVerify: true},
		},
		Timeout: 5 * time.Second,
	}
	resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/health", port))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Strict-Transport-Security"))

	cancel()
	wg.Wait()
}

func TestNewService_PanicsOnNil(t *testing.T) {
	cfg := testutil.NewAppConfig(t)
	logger, _ := test.NewNullLogger()
	resolver := contact.NewResolver(cfg, logger)
	dispatcher := email.NewDispatcher(cfg, nil, logger)
	notifier := notification.NewService(resolver, dispatcher, logger)

	assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() { NewService(nil, notifier, dispatcher, resolver) })
	assert.PanicsWithValue(t, constants.PanicMsgNotifierRequired, func() { NewService(cfg, nil, dispatcher, resolver) })
	assert.PanicsWithValue(t, constants.PanicMsgBackendSelectorRequired, func() { NewService(cfg, notifier, nil, resolver) })
	assert.PanicsWithValue(t, constants.PanicMsgDirectoryProviderRequired, func() { NewService(cfg, notifier, dispatcher, nil) })
}
