package notify

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	sendLatency prometheus.Histogram
	errorCount  *prometheus.CounterVec
	sentCount   *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stickerlab_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stickerlab_email_errors_total",
			Help: "Total number of email sending errors",
		}, []string{"audience"}),
		sentCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stickerlab_emails_sent_total",
			Help: "Total number of emails sent",
		}, []string{"audience"}),
	}

	reg.MustRegister(m.sendLatency)
	reg.MustRegister(m.errorCount)
	reg.MustRegister(m.sentCount)

	return m
}
