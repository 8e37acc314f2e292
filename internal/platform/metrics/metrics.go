// Package metrics exposes Prometheus counters for form submissions and
// snapshot refreshes.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for recorded operations.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Recorder counts dashboard operations.
type Recorder struct {
	submissions *prometheus.CounterVec
	refreshes   *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bankingui",
			Name:      "form_submissions_total",
			Help:      "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bankingui",
			Name:      "snapshot_refreshes_total",
			Help:      "Snapshot refreshes by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.submissions, r.refreshes)
	return r
}

// RecordSubmission counts one submission attempt.
func (r *Recorder) RecordSubmission(form, outcome string) {
	r.submissions.WithLabelValues(form, outcome).Inc()
}

// RecordRefresh counts one snapshot refresh.
func (r *Recorder) RecordRefresh(outcome string) {
	r.refreshes.WithLabelValues(outcome).Inc()
}
