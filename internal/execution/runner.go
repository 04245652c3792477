package execution

import (
	"time"

	"stp/internal/domain"
)

// Runner invokes a single generated test unit.
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes one unit's bound procedure and times it. Failures raised by
// the procedure surface as the result's error; the runner never reinterprets
// them.
func (r *Runner) Run(unit domain.TestUnit) domain.RunResult {
	start := time.Now()
	err := unit.Run()
	return domain.RunResult{
		ClassName: unit.ClassName,
		Path:      unit.Input.Path,
		Success:   err == nil,
		Err:       err,
		Duration:  time.Since(start),
	}
}
