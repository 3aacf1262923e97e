// Package metrics 알림 발송 결과를 Prometheus 지표로 노출합니다.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 발송 결과 라벨 값
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	OutcomePartial = "partial"
	OutcomeFailed  = "failed"
)

var (
	EmailDispatchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_relay_email_dispatch_total",
		Help: "Total number of email dispatch attempts by backend and outcome",
	}, []string{"backend", "outcome"})

	EmailDispatchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notify_relay_email_dispatch_duration_seconds",
		Help:    "Duration of email dispatch attempts by backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})

	NotificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_relay_notifications_total",
		Help: "Total number of notification requests by aggregated outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(EmailDispatchTotal)
	prometheus.MustRegister(EmailDispatchDuration)
	prometheus.MustRegister(NotificationsTotal)
}

// ObserveDispatch 백엔드 한 번의 발송 시도 결과를 기록합니다.
func ObserveDispatch(backend string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}

	EmailDispatchTotal.WithLabelValues(backend, outcome).Inc()
	EmailDispatchDuration.WithLabelValues(backend).Observe(time.Since(started).Seconds())
}

// Handler /metrics 엔드포인트 핸들러를 반환합니다.
func Handler() http.Handler {
	return promhttp.Handler()
}
