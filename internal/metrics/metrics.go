package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "corp_summary"

type Metrics struct {
	Registry      *prometheus.Registry
	RecordsLoaded prometheus.Gauge
	ReportsBuilt  prometheus.Counter
	ReportExports *prometheus.CounterVec
	HTTPRequests  *prometheus.CounterVec
}

// New registers all collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_loaded",
			Help:      "Number of employee records in the loaded dataset",
		}),
		ReportsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_built_total",
			Help:      "Total number of department reports built",
		}),
		ReportExports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_exports_total",
				Help:      "Total number of report exports by result",
			},
			[]string{"result"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		m.RecordsLoaded,
		m.ReportsBuilt,
		m.ReportExports,
		m.HTTPRequests,
	)

	return m
}
