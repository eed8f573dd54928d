package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
// All helper methods are safe to call on a nil *Metrics.
type Metrics struct {
	EmailAttempts    *prometheus.CounterVec
	EmailDeliveries  *prometheus.CounterVec
	QuotesCreated    prometheus.Counter
	QuotesExpired    prometheus.Counter
	RemindersSent    *prometheus.CounterVec
	SweepDuration    prometheus.Histogram
	SweepRuns        *prometheus.CounterVec
	OffersRecomputed prometheus.Counter
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			EmailAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "email_attempts_total",
				Help:      "Email delivery attempts by outcome.",
			}, []string{"status"}),
			EmailDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "email_deliveries_total",
				Help:      "Final email delivery results by email type and status.",
			}, []string{"type", "status"}),
			QuotesCreated: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_created_total",
				Help:      "Total quotes issued.",
			}),
			QuotesExpired: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_expired_total",
				Help:      "Total quotes moved to EXPIRED by the reminder sweep.",
			}),
			RemindersSent: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reminders_sent_total",
				Help:      "Reminder emails sent by reminder type.",
			}, []string{"type"}),
			SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "reminder_sweep_duration_seconds",
				Help:      "Duration of reminder sweeps.",
				Buckets:   prometheus.DefBuckets,
			}),
			SweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reminder_sweeps_total",
				Help:      "Reminder sweeps by result.",
			}, []string{"result"}),
			OffersRecomputed: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "offers_recomputed_total",
				Help:      "Pricing records whose cached offers were recomputed.",
			}),
		}

		prometheus.MustRegister(
			metricsInstance.EmailAttempts,
			metricsInstance.EmailDeliveries,
			metricsInstance.QuotesCreated,
			metricsInstance.QuotesExpired,
			metricsInstance.RemindersSent,
			metricsInstance.SweepDuration,
			metricsInstance.SweepRuns,
			metricsInstance.OffersRecomputed,
		)
	})
	return metricsInstance
}

func (m *Metrics) IncEmailAttempt(status string) {
	if m == nil {
		return
	}
	m.EmailAttempts.WithLabelValues(status).Inc()
}

func (m *Metrics) IncEmailDelivery(emailType, status string) {
	if m == nil {
		return
	}
	m.EmailDeliveries.WithLabelValues(emailType, status).Inc()
}

func (m *Metrics) IncQuotesCreated() {
	if m == nil {
		return
	}
	m.QuotesCreated.Inc()
}

func (m *Metrics) AddQuotesExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.QuotesExpired.Add(float64(n))
}

func (m *Metrics) IncReminderSent(reminderType string) {
	if m == nil {
		return
	}
	m.RemindersSent.WithLabelValues(reminderType).Inc()
}

func (m *Metrics) ObserveSweep(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.SweepRuns.WithLabelValues(result).Inc()
	m.SweepDuration.Observe(d.Seconds())
}

func (m *Metrics) AddOffersRecomputed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.OffersRecomputed.Add(float64(n))
}
