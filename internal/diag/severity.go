package diag

// Severity ranks a diagnostic. Severities are ordered: a Bag sorts
// error before warning before info, so the numeric values matter.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevInfo:
		return "info"
	default:
		return "unknown"
	}
}
