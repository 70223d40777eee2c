package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RegistrationsTotal prometheus.Counter
	LoginAttemptsTotal *prometheus.CounterVec
	NotificationsTotal *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		RegistrationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "acceso_portal_registrations_total",
			Help: "Total number of successful registrations",
		}),
		LoginAttemptsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "acceso_portal_login_attempts_total",
			Help: "Total number of validated login attempts by result",
		}, []string{"result"}),
		NotificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "acceso_portal_notifications_total",
			Help: "Total number of outbound Telegram alerts by outcome",
		}, []string{"purpose", "outcome"}),
	}
}

// All increment helpers tolerate a nil receiver so tests can run without a
// registry.

func (m *Metrics) IncRegistrations() {
	if m == nil {
		return
	}
	m.RegistrationsTotal.Inc()
}

func (m *Metrics) IncLoginAttempt(matched bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if matched {
		result = "granted"
	}
	m.LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncNotification(purpose string, err error) {
	if m == nil {
		return
	}
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	m.NotificationsTotal.WithLabelValues(purpose, outcome).Inc()
}
