package metrics

import (
	"net/http"

	domain "cibil-mock-backend/internal/domain/cibil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can build as many as they like.
type Collector struct {
	reg        *prometheus.Registry
	reports    *prometheus.CounterVec
	reportSets *prometheus.CounterVec
	logins     *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cibil_reports_generated_total",
			Help: "Synthetic CIBIL report records generated, by status.",
		}, []string{"status"}),
		reportSets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cibil_report_sets_total",
			Help: "Synthetic report sets generated, by entry point.",
		}, []string{"kind"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Demo login attempts, by outcome.",
		}, []string{"outcome"}),
	}
	c.reg.MustRegister(
		c.reports,
		c.reportSets,
		c.logins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveReportSet implements the CIBIL usecase recorder.
func (c *Collector) ObserveReportSet(kind string, reports []domain.Report) {
	c.reportSets.WithLabelValues(kind).Inc()
	for _, r := range reports {
		c.reports.WithLabelValues(string(r.Status)).Inc()
	}
}

// ObserveLogin implements the auth usecase recorder.
func (c *Collector) ObserveLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

func (c *Collector) Registry() *prometheus.Registry { return c.reg }
