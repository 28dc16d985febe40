package emit

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/katalvlaran/arrangex/ilp"
)

// backupSolutionPath is the fixed fallback destination used when the
// requested path cannot be opened (§7 SinkError recovery), named after
// the reference implementation's own backup filename convention.
const backupSolutionPath = "bad_output_file_name_backup_save.sol"

// Solution reads every variable's value from solver and writes a
// name-to-value JSON object to path. If status is ilp.StatusInfeasible,
// Solution returns ilp.InfeasibleError without writing a file. If path cannot be opened,
// Solution retries against backupSolutionPath and logs a warning instead
// of failing the caller.
func Solution(model *ilp.Model, solver ilp.Solver, status ilp.Status, path string) error {
	if status == ilp.StatusInfeasible {
		return ilp.InfeasibleError
	}
	if model.NumVars() == 0 {
		return ErrNothingToWrite
	}

	out := make(map[string]float64, model.NumVars())
	for i, v := range model.Vars {
		val, err := solver.Value(i)
		if err != nil {
			return err
		}
		out[v.Name] = val
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if writeErr := os.WriteFile(path, data, 0644); writeErr != nil {
		log.Printf("emit: could not write solution to %q (%v); falling back to %q", path, writeErr, backupSolutionPath)
		if backupErr := os.WriteFile(backupSolutionPath, data, 0644); backupErr != nil {
			return &SinkError{Path: path, Message: backupErr.Error()}
		}
	}

	return nil
}

// IsInfeasible reports whether err is the sentinel Solution returns for an
// infeasible status, mirroring errors.Is(err, ilp.InfeasibleError) for
// callers that prefer a predicate.
func IsInfeasible(err error) bool {
	return errors.Is(err, ilp.InfeasibleError)
}
