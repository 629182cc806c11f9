package metrics

import (
	"database/sql"

	"github.com/dlmiddlecote/sqlstats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service owns the prometheus registry and all counters of the gateway.
// It uses its own registry so multiple instances (e.g. parallel test
// servers) never collide on registration.
type Service struct {
	registry *prometheus.Registry

	sessionsCreated  prometheus.Counter
	pairingsRejected prometheus.Counter
	requestsCreated  *prometheus.CounterVec
	requestsFinished *prometheus.CounterVec
}

func New(db *sql.DB) *Service {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(sqlstats.NewStatsCollector("connect", db))

	s := &Service{
		registry: registry,
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "connect_sessions_created_total",
			Help: "Number of sessions created from pairing URIs.",
		}),
		pairingsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "connect_pairings_rejected_total",
			Help: "Number of pairing URIs rejected as malformed.",
		}),
		requestsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "connect_session_requests_created_total",
			Help: "Number of session requests dispatched, by method.",
		}, []string{"method"}),
		requestsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "connect_session_requests_finished_total",
			Help: "Number of session requests finished, by terminal status.",
		}, []string{"status"}),
	}

	registry.MustRegister(s.sessionsCreated, s.pairingsRejected, s.requestsCreated, s.requestsFinished)

	return s
}

// Registry exposes the underlying registry for the management /metrics
// endpoint.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Service) IncSessionCreated() {
	s.sessionsCreated.Inc()
}

func (s *Service) IncPairingRejected() {
	s.pairingsRejected.Inc()
}

func (s *Service) IncRequestCreated(method string) {
	s.requestsCreated.WithLabelValues(method).Inc()
}

func (s *Service) IncRequestFinished(status string) {
	s.requestsFinished.WithLabelValues(status).Inc()
}
