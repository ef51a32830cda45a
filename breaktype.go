package linebreak

import "strconv"

// BreakType is the verdict the matcher returns for a candidate break
// position. The values are powers of two so callers can test a set of
// verdicts with a single bitmask, e.g. `bt&(MANDATORY|ALLOWED) != 0` to
// ask "is this a position the [Segment] iterator would stop at".
type BreakType int

// The four UAX #14 verdicts a position between two code units can carry.
const (
	// UNKNOWN means no rule decided a verdict for this position. Callers
	// that need a binary answer should treat UNKNOWN as "do not break".
	UNKNOWN BreakType = 0

	// FORBIDDEN means breaking the line at this position is never
	// permitted.
	FORBIDDEN BreakType = 1

	// MANDATORY means the line must break at this position (LB3/LB4/LB5).
	MANDATORY BreakType = 2

	// ALLOWED means the line may break at this position, at the caller's
	// discretion (e.g. once the available width is exceeded).
	ALLOWED BreakType = 4
)

// String returns the name of bt, or its numeric value in the form
// "BreakType(n)" if bt is not one of the four canonical values.
func (bt BreakType) String() string {
	switch bt {
	case UNKNOWN:
		return "UNKNOWN"
	case FORBIDDEN:
		return "FORBIDDEN"
	case MANDATORY:
		return "MANDATORY"
	case ALLOWED:
		return "ALLOWED"
	default:
		return "BreakType(" + strconv.Itoa(int(bt)) + ")"
	}
}
