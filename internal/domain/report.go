package domain

// SkipReason says why the resolver excluded a directive.
type SkipReason string

const (
	// SkipMissing means the resolved path is not an existing regular file.
	SkipMissing SkipReason = "missing"
	// SkipSuffix means the file exists but has the wrong extension.
	SkipSuffix SkipReason = "suffix"
)

// SkippedDirective records one directive the resolver excluded. Skips are not
// errors, but a mistyped filename vanishes silently without this record.
type SkippedDirective struct {
	Manifest string     `json:"manifest"`
	Line     int        `json:"line"`
	Filename string     `json:"filename"`
	Path     string     `json:"path"`
	Reason   SkipReason `json:"reason"`
}

// ScanReport summarizes one corpus resolution pass.
type ScanReport struct {
	Manifests  int                // Manifest files read
	Directives int                // Directives parsed (blank/comment lines excluded)
	Resolved   int                // Directives that survived the filesystem checks
	Skipped    []SkippedDirective // Directives excluded by the checks
}

// SkippedMissing counts directives skipped because the file does not exist.
func (r *ScanReport) SkippedMissing() int {
	return r.countSkips(SkipMissing)
}

// SkippedSuffix counts directives skipped because of a non-matching suffix.
func (r *ScanReport) SkippedSuffix() int {
	return r.countSkips(SkipSuffix)
}

func (r *ScanReport) countSkips(reason SkipReason) int {
	n := 0
	for _, s := range r.Skipped {
		if s.Reason == reason {
			n++
		}
	}
	return n
}
