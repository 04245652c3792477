package domain

import "time"

// RunResult is the outcome of executing one generated test unit.
type RunResult struct {
	ClassName string        // Unit that was executed
	Path      string        // Test input file
	Success   bool          // Whether the unit passed
	Err       error         // Failure returned by the bound procedure
	Duration  time.Duration // Time taken to execute
}

// RunMeta contains metadata about one corpus run.
type RunMeta struct {
	TotalUnits        int     `json:"total_units"`
	PassedUnits       int     `json:"passed_units"`
	FailedUnits       int     `json:"failed_units"`
	Directives        int     `json:"directives"`
	SkippedDirectives int     `json:"skipped_directives"`
	Label             string  `json:"label"`
	Duration          string  `json:"duration"`
	DurationSeconds   float64 `json:"duration_seconds"`
	Timestamp         string  `json:"timestamp"`
}

// RunOutput is the complete persisted output of a corpus run.
type RunOutput struct {
	Meta    RunMeta            `json:"meta"`
	Details []UnitFailure      `json:"details"`
	Skipped []SkippedDirective `json:"skipped,omitempty"`
}
