package manifest

import (
	"errors"
	"fmt"
)

// ErrNotDirective reports a blank or full-line-comment manifest line. It is
// distinct from a malformed directive: callers skip these lines, they never
// abort a manifest.
var ErrNotDirective = errors.New("not a directive")

// ConfigError reports a malformed directive. The resolver aborts the
// enclosing manifest on it rather than skipping the line.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "bad directive: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
