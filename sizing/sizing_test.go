package sizing_test

import (
	"testing"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/sizing"
	"github.com/stretchr/testify/require"
)

func groupSet(t *testing.T, groups ...core.SubjectGroup) *core.GroupSet {
	t.Helper()
	gs := core.NewGroupSet()
	for _, g := range groups {
		require.NoError(t, gs.AddGroup(g))
	}

	return gs
}

// S1: two groups, out_cap=10/in_cap=10, T[A,B]=5 -> N_A=N_B=1.
func TestComputeS1(t *testing.T) {
	gs := groupSet(t,
		core.SubjectGroup{Name: "A", InputCapacity: 10, OutputCapacity: 10, Area: 1},
		core.SubjectGroup{Name: "B", InputCapacity: 10, OutputCapacity: 10, Area: 1},
	)
	fl := core.NewFlows()
	require.NoError(t, fl.Set("A", "B", 5))

	result, err := sizing.Compute(gs, fl)
	require.NoError(t, err)
	require.Equal(t, 1, result["A"].N)
	require.Equal(t, 1, result["B"].N)
	require.Equal(t, 5, result["A"].G)  // out(A)=5, in(A)=0
	require.Equal(t, -5, result["B"].G) // out(B)=0, in(B)=5
}

func TestComputeZeroDemandIsZeroSized(t *testing.T) {
	gs := groupSet(t, core.SubjectGroup{Name: "A", InputCapacity: 10, OutputCapacity: 10, Area: 1})
	fl := core.NewFlows()

	result, err := sizing.Compute(gs, fl)
	require.NoError(t, err)
	require.Equal(t, sizing.Sizing{N: 0, G: 0}, result["A"])
}

func TestComputeZeroCapacityWithDemandFails(t *testing.T) {
	gs := groupSet(t, core.SubjectGroup{Name: "A", InputCapacity: 0, OutputCapacity: 10, Area: 1})
	fl := core.NewFlows()
	require.NoError(t, fl.Set("A", "A", 5)) // self-loop gives A both in and out demand

	_, err := sizing.Compute(gs, fl)
	require.ErrorIs(t, err, sizing.ConfigurationError)
}

func TestComputeBalance(t *testing.T) {
	// P7 / invariant 2: Σ_i G_i = 0.
	gs := groupSet(t,
		core.SubjectGroup{Name: "A", InputCapacity: 10, OutputCapacity: 10, Area: 1},
		core.SubjectGroup{Name: "B", InputCapacity: 10, OutputCapacity: 10, Area: 1},
	)
	fl := core.NewFlows()
	require.NoError(t, fl.Set("A", "B", 7))

	result, err := sizing.Compute(gs, fl)
	require.NoError(t, err)

	sum := 0
	for _, s := range result {
		sum += s.G
	}
	require.Equal(t, 0, sum)
}
