// Package metrics holds the prometheus collector set for the ingestion
// pipeline. Collectors register on a caller-supplied Registerer;
// double registration is tolerated so shared registries stay usable.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Ingest counts pipeline activity: documents by detected format, rows
// seen, contacts produced, validation failures by unmet requirement.
type Ingest struct {
	Documents          *prometheus.CounterVec
	Rows               prometheus.Counter
	Contacts           prometheus.Counter
	ValidationFailures *prometheus.CounterVec
}

// NewIngest builds the collector set and registers it on reg.
// A nil reg skips registration (collectors still work standalone).
func NewIngest(reg prometheus.Registerer) *Ingest {
	m := &Ingest{
		Documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ingest",
			Name:      "documents_total",
			Help:      "Documents processed, by detected format.",
		}, []string{"format"}),
		Rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ingest",
			Name:      "rows_total",
			Help:      "Rows and items extracted from documents.",
		}),
		Contacts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ingest",
			Name:      "contacts_total",
			Help:      "Contacts that passed validation.",
		}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ingest",
			Name:      "validation_failures_total",
			Help:      "Rows rejected by validation, by unmet requirement.",
		}, []string{"requirement"}),
	}

	if reg != nil {
		m.Documents = registerCounterVec(reg, m.Documents)
		m.Rows = registerCounter(reg, m.Rows)
		m.Contacts = registerCounter(reg, m.Contacts)
		m.ValidationFailures = registerCounterVec(reg, m.ValidationFailures)
	}
	return m
}

// registerCounterVec registers c, reusing an already-registered collector
// of the same name instead of failing.
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter) prometheus.Counter {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}
