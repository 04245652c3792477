package execution

import (
	"sort"
	"time"

	"stp/internal/domain"
	"stp/internal/ui"
)

// Executor runs generated units sequentially, one at a time. Class names
// carry a zero-padded sequence number, so class-name order is the corpus
// encounter order. Units sharing one observer record must not run
// concurrently.
type Executor struct {
	runner   *Runner
	progress *ui.ProgressBar
}

// NewExecutor creates a new Executor
func NewExecutor(runner *Runner) *Executor {
	return &Executor{runner: runner}
}

// SetProgress sets the progress bar for the executor
func (e *Executor) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// Execute runs every unit in encounter order. With failFast it stops after
// the first failing unit.
func (e *Executor) Execute(units map[string]domain.TestUnit, failFast bool) ([]domain.RunResult, time.Duration, error) {
	if len(units) == 0 {
		return nil, 0, nil
	}

	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	start := time.Now()
	results := make([]domain.RunResult, 0, len(names))
	passed, failed := 0, 0
	for i, name := range names {
		result := e.runner.Run(units[name])
		results = append(results, result)
		if result.Success {
			passed++
		} else {
			failed++
		}
		if e.progress != nil {
			e.progress.Update(i+1, passed, failed)
		}
		if failFast && !result.Success {
			break
		}
	}
	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(start), nil
}
