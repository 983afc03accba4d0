// Package telemetry holds the Prometheus metrics of the service.
//
// HTTP metrics are labelled by the gin route template (c.FullPath()), not the
// raw URL, so ids in paths do not inflate label cardinality.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"policywizard/internal/domain/catalogs/organization"
	"policywizard/internal/domain/documents/generatedpolicy"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "path"},
	)

	OrganizationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "policywizard_organizations_created_total",
			Help: "Organizations registered, by accounting type.",
		},
		[]string{"accounting_type"},
	)

	PoliciesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "policywizard_policies_generated_total",
			Help: "Generated policies stored, by status.",
		},
		[]string{"status"},
	)

	PolicyValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "policywizard_policy_validation_failures_total",
			Help: "Rejected policy generation requests, by reason.",
		},
		[]string{"reason"},
	)
)

// RecordOrganizationCreated is an organization.Service create hook.
func RecordOrganizationCreated(org *organization.Organization) {
	OrganizationsCreatedTotal.WithLabelValues(string(org.AccountingType)).Inc()
}

// PolicyObserver reports generated policy outcomes to Prometheus.
type PolicyObserver struct{}

var _ generatedpolicy.Observer = PolicyObserver{}

// PolicyCreated implements generatedpolicy.Observer.
func (PolicyObserver) PolicyCreated(status generatedpolicy.Status) {
	PoliciesGeneratedTotal.WithLabelValues(string(status)).Inc()
}

// ValidationFailed implements generatedpolicy.Observer.
func (PolicyObserver) ValidationFailed(reason string) {
	PolicyValidationFailuresTotal.WithLabelValues(reason).Inc()
}
