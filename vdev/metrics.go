package vdev

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the reports a Hub produces.
type Metrics struct {
	Reports     *prometheus.CounterVec
	WriteErrors prometheus.Counter
}

// NewMetrics creates the hub collectors and registers them with reg when reg
// is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Reports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keycycle_device_reports_total",
				Help: "Input reports written to virtual devices",
			},
			[]string{"kind", "action"},
		),
		WriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keycycle_device_write_errors_total",
			Help: "Input reports the sink failed to accept",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Reports, m.WriteErrors)
	}
	return m
}

func (m *Metrics) report(kind Kind, pressed bool) {
	if m == nil {
		return
	}
	action := "release"
	if pressed {
		action = "press"
	}
	m.Reports.WithLabelValues(kind.String(), action).Inc()
}

func (m *Metrics) writeError() {
	if m == nil {
		return
	}
	m.WriteErrors.Inc()
}
