package refsolver

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/arrangex/ilp"
)

// writeSolutionFile serializes a variable-name-to-value map as indented
// JSON, following the corpus's MarshalIndent-then-WriteFile convention.
// Using the §6.4 variable names as keys means a solution file parses back
// without any separate index table.
func writeSolutionFile(path string, model *ilp.Model, assign []float64) error {
	out := make(map[string]float64, len(model.Vars))
	for i, v := range model.Vars {
		out[v.Name] = assign[i]
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
