// Package reporter implements the diagnostic model: typed messages with
// stable numeric IDs and templated text, an append-only thread-safe sink,
// and excerpt rendering. Diagnostic rendering here produces the structured
// and textual forms; how those strings reach a terminal or a file is the
// caller's concern.
package reporter

import "fmt"

// Severity is one of the three diagnostic levels.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the lowercase severity name, as used in a rendered
// diagnostic's header line.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Letter returns the single-character severity code used in a full
// diagnostic ID, e.g. "E" in "DE1001".
func (s Severity) Letter() string {
	switch s {
	case Info:
		return "I"
	case Warning:
		return "W"
	default:
		return "E"
	}
}

// Diagnostic is a single structured message produced by any pipeline stage.
type Diagnostic struct {
	Severity Severity
	ID       int // numeric ID, e.g. 1001

	// Text is the rendered short message, already substituted from the
	// catalogue template.
	Text string

	// Where is the optional "<path>:<line>:<col>" location string. Produced
	// eagerly so the Diagnostic does not borrow from a Source.
	Where string

	// Excerpt is the optional multi-line source excerpt with a caret span,
	// already rendered to a string for the same reason.
	Excerpt string
}

// FullID returns the diagnostic's stable identifier, e.g. "DE1001".
func (d Diagnostic) FullID() string {
	return fmt.Sprintf("D%s%04d", d.Severity.Letter(), d.ID)
}

// Render produces the full textual form of d:
//
//	<severity>[<FullId>]: <text>
//	 --> <where>
//	<excerpt>
func (d Diagnostic) Render() string {
	s := fmt.Sprintf("%s[%s]: %s", d.Severity, d.FullID(), d.Text)
	if d.Where != "" {
		s += fmt.Sprintf("\n --> %s", d.Where)
	}
	if d.Excerpt != "" {
		s += "\n" + d.Excerpt
	}
	return s
}
