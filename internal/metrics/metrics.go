// metrics — прикладные prometheus-метрики newsroom-сервиса.
// Экспонируются через /metrics (promhttp) в main.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Approvals — счётчик успешных переходов pending -> approved.
	Approvals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_approvals_total",
		Help: "Successful pending->approved transitions.",
	}, []string{"kind"})

	// Rejections — счётчик переходов pending -> rejected.
	Rejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_rejections_total",
		Help: "Successful pending->rejected transitions.",
	}, []string{"kind"})

	// NotificationsSent — счётчик доставленных уведомлений.
	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_notifications_sent_total",
		Help: "Notifications delivered to subscribers.",
	})

	// NotificationFailures — счётчик ошибок доставки (не фатальных).
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsroom_notification_failures_total",
		Help: "Per-recipient delivery failures (non-fatal).",
	})

	// HTTPRequests — счётчик HTTP-запросов по методу/маршруту/статусу.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})
)
