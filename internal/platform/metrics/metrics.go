// Package metrics holds the prometheus collectors for the ledger service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups ledger and HTTP collectors registered on one registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	EntriesPosted   *prometheus.CounterVec
	PostsRejected   *prometheus.CounterVec
	AccountsCreated prometheus.Counter
	EventsFailed    prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge
}

// New creates the collectors and registers them together with the Go and
// process collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		EntriesPosted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "garage_books_journal_entries_posted_total",
			Help: "Journal entries posted, by source kind.",
		}, []string{"source"}),
		PostsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "garage_books_journal_posts_rejected_total",
			Help: "Journal postings rejected, by reason.",
		}, []string{"reason"}),
		AccountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "garage_books_accounts_created_total",
			Help: "Accounts opened.",
		}),
		EventsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "garage_books_entry_events_failed_total",
			Help: "Posted-entry events that could not be published.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "garage_books_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "garage_books_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "garage_books_http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.EntriesPosted, m.PostsRejected, m.AccountsCreated, m.EventsFailed,
		m.HTTPRequests, m.HTTPDuration, m.HTTPInFlight,
	)
	return m
}

// RegisterLedgerGauges exposes account and entry counts read on scrape.
func (m *Metrics) RegisterLedgerGauges(counts func() (accounts, entries int)) {
	if m == nil {
		return
	}
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "garage_books_accounts",
			Help: "Accounts in the chart of accounts.",
		}, func() float64 { a, _ := counts(); return float64(a) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "garage_books_journal_entries",
			Help: "Journal entries in the ledger.",
		}, func() float64 { _, e := counts(); return float64(e) }),
	)
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// EntryPosted counts a posted entry under its source kind.
func (m *Metrics) EntryPosted(source string) {
	if m == nil {
		return
	}
	if source == "" {
		source = "unknown"
	}
	m.EntriesPosted.WithLabelValues(source).Inc()
}

// PostRejected counts a rejected posting under reason.
func (m *Metrics) PostRejected(reason string) {
	if m == nil {
		return
	}
	m.PostsRejected.WithLabelValues(reason).Inc()
}

// AccountCreated counts an opened account.
func (m *Metrics) AccountCreated() {
	if m == nil {
		return
	}
	m.AccountsCreated.Inc()
}

// EventFailed counts a failed event publication.
func (m *Metrics) EventFailed() {
	if m == nil {
		return
	}
	m.EventsFailed.Inc()
}
