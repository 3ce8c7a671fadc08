// Package metrics provides observability for the student module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks student operation counts and duplicate rejections.
type Metrics struct {
	StudentsCreated      prometheus.Counter
	StudentsUpdated      prometheus.Counter
	DuplicatesRejected   prometheus.Counter
	LookupsNotFound      prometheus.Counter
	RequestsUnauthorized prometheus.Counter
}

// New creates a Metrics instance with all student module metrics registered
// on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StudentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "students_created_total",
			Help: "Total number of students created",
		}),
		StudentsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "students_updated_total",
			Help: "Total number of student partial updates applied",
		}),
		DuplicatesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "students_duplicates_rejected_total",
			Help: "Total number of creations rejected for a duplicate document number",
		}),
		LookupsNotFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "students_lookups_not_found_total",
			Help: "Total number of lookups that found no student",
		}),
		RequestsUnauthorized: factory.NewCounter(prometheus.CounterOpts{
			Name: "students_requests_unauthorized_total",
			Help: "Total number of requests rejected by the header gate",
		}),
	}
}
