package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics with bounded cardinality: variant and status are both small,
// fixed vocabularies (compressed/per_subject, optimal/feasible/infeasible/
// error), never per-instance identifiers.
var (
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arrangex_solve_duration_seconds",
		Help:    "Time spent in one arrangement solve (model build plus solver, or a whole cascade run)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
	}, []string{"variant"})

	lastObjective = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "arrangex_last_objective",
		Help: "Objective value of the most recently completed solve",
	}, []string{"variant"})

	cascadeSteps = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arrangex_cascade_steps",
		Help: "Number of sub-grid attempts the most recent GFred cascade run made",
	})

	cascadeFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arrangex_cascade_fallback_total",
		Help: "Number of GFred cascade runs that fell back to a full-grid solve",
	})

	infeasibleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arrangex_infeasible_total",
		Help: "Number of solve attempts that proved integer infeasible",
	}, []string{"variant"})

	modelVars = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "arrangex_model_variables",
		Help: "Variable count of the most recently built model",
	}, []string{"variant"})
)

// RecordSolve records the wall-clock duration and terminal status of one
// arrangement solve for the given model variant ("compressed" or
// "per_subject"); engine.Arrange times model building and solving together,
// and a whole GFred cascade counts as one solve. On "infeasible" it
// increments the infeasible counter. It does not touch the last-objective
// gauge; RecordObjective does that.
func RecordSolve(variant string, duration time.Duration, status string) {
	solveDuration.WithLabelValues(variant).Observe(duration.Seconds())
	if status == "infeasible" {
		infeasibleTotal.WithLabelValues(variant).Inc()
	}
}

// RecordObjective updates the last-objective gauge after a successful solve.
func RecordObjective(variant string, objective float64) {
	lastObjective.WithLabelValues(variant).Set(objective)
}

// RecordCascade records how many sub-grid attempts a GFred run made before
// stabilizing, and whether it had to fall back to a full-grid solve.
func RecordCascade(steps int, fellBack bool) {
	cascadeSteps.Set(float64(steps))
	if fellBack {
		cascadeFallbackTotal.Inc()
	}
}

// RecordModelSize records the variable count of a freshly built model.
func RecordModelSize(variant string, numVars int) {
	modelVars.WithLabelValues(variant).Set(float64(numVars))
}
