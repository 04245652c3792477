package domain

// UnitFailure represents a failed generated test unit.
type UnitFailure struct {
	UnitName     string `json:"unit_name"`
	MethodName   string `json:"method_name"`
	FilePath     string `json:"file_path"`
	ExpectErrors int    `json:"expected_errors"`
	Manifest     string `json:"manifest"`
	Line         int    `json:"line"`
	Message      string `json:"message"`
	Resolved     bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
