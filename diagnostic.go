package selkocards

import "fmt"

// DiagnosticLevel is the severity of a diagnostic.
type DiagnosticLevel int

// Diagnostic levels.
const (
	LevelInfo DiagnosticLevel = iota
	LevelWarn
)

// String returns the level name.
func (l DiagnosticLevel) String() string {
	if l == LevelWarn {
		return "warn"
	}
	return "info"
}

// Diagnostic is a message about how an export went, typically an alignment
// anomaly. Diagnostics never abort an export.
type Diagnostic struct {
	Level   DiagnosticLevel
	Message string
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []Diagnostic

// Infof appends an informational message.
func (d *Diagnostics) Infof(format string, args ...interface{}) {
	*d = append(*d, Diagnostic{Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

// Warnf appends a warning.
func (d *Diagnostics) Warnf(format string, args ...interface{}) {
	*d = append(*d, Diagnostic{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns only the warnings, in order.
func (d Diagnostics) Warnings() Diagnostics {
	var warnings Diagnostics
	for _, diag := range d {
		if diag.Level == LevelWarn {
			warnings = append(warnings, diag)
		}
	}
	return warnings
}
