package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordSolveIncrementsInfeasibleOnly(t *testing.T) {
	before := testutil.ToFloat64(infeasibleTotal.WithLabelValues("compressed"))

	RecordSolve("compressed", 25*time.Millisecond, "infeasible")

	after := testutil.ToFloat64(infeasibleTotal.WithLabelValues("compressed"))
	require.Equal(t, before+1, after)
}

func TestRecordSolveOptimalLeavesInfeasibleCounterUnchanged(t *testing.T) {
	before := testutil.ToFloat64(infeasibleTotal.WithLabelValues("per_subject"))

	RecordSolve("per_subject", 25*time.Millisecond, "optimal")

	after := testutil.ToFloat64(infeasibleTotal.WithLabelValues("per_subject"))
	require.Equal(t, before, after)
}

func TestRecordObjectiveSetsGauge(t *testing.T) {
	RecordObjective("compressed", 42.5)

	require.Equal(t, 42.5, testutil.ToFloat64(lastObjective.WithLabelValues("compressed")))
}

func TestRecordCascadeTracksFallback(t *testing.T) {
	before := testutil.ToFloat64(cascadeFallbackTotal)

	RecordCascade(4, true)

	after := testutil.ToFloat64(cascadeFallbackTotal)
	require.Equal(t, before+1, after)
	require.Equal(t, 4.0, testutil.ToFloat64(cascadeSteps))
}

func TestRecordCascadeNoFallbackLeavesCounterUnchanged(t *testing.T) {
	before := testutil.ToFloat64(cascadeFallbackTotal)

	RecordCascade(2, false)

	after := testutil.ToFloat64(cascadeFallbackTotal)
	require.Equal(t, before, after)
}

func TestRecordModelSizeSetsGauge(t *testing.T) {
	RecordModelSize("per_subject", 128)

	require.Equal(t, float64(128), testutil.ToFloat64(modelVars.WithLabelValues("per_subject")))
}
