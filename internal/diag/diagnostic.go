package diag

import "strings"

// Diagnostic is one finding about a linked program model. Subject is the
// dotted path of the node it concerns ("animals.Dog.energy"); there are no
// source positions because the linker never sees source text.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Subject  string
	Values   []string
}

// Render formats the diagnostic as a single output line.
func (d Diagnostic) Render() string {
	out := d.Message
	if d.Subject != "" {
		out = d.Subject + ": " + out
	}
	if len(d.Values) > 0 {
		out += " (" + strings.Join(d.Values, ", ") + ")"
	}
	return out
}
