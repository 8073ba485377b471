package diag

// Severity ranks how serious a finding is. Anything at SevError makes
// the document malformed; lower severities never fail a load.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError marks a grammar violation.
	SevError
)

// String returns the uppercase name the pretty printer shows.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
