package sorting

import (
	"fmt"
	"strings"
)

// Policy selects how two lines compare. The set is closed; Before dispatches
// exhaustively so an out-of-range value is detectable by IsValid rather than
// silently misbehaving.
type Policy int

const (
	// AlphaAscending orders lines byte-ascending from the front; a strict
	// prefix sorts before its extension.
	AlphaAscending Policy = iota

	// AlphaDescending is the mirror of AlphaAscending; on a prefix
	// relationship the longer line sorts first.
	AlphaDescending

	// LastLetterAscending compares from the ends of both lines backward;
	// the first differing byte decides, ascending. The side exhausted first
	// sorts first.
	LastLetterAscending
)

// policyNames are the canonical spellings accepted by ParsePolicy and
// produced by String. They are part of the config surface; do not rename.
var policyNames = map[Policy]string{
	AlphaAscending:      "alpha-asc",
	AlphaDescending:     "alpha-desc",
	LastLetterAscending: "last-letter-asc",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// IsValid reports whether p is a member of the closed policy set.
func (p Policy) IsValid() bool {
	_, ok := policyNames[p]
	return ok
}

// ParsePolicy maps a canonical policy name to its Policy value.
func ParsePolicy(raw string) (Policy, error) {
	n := strings.ToLower(strings.TrimSpace(raw))
	for p, s := range policyNames {
		if s == n {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown ordering policy %q (expected alpha-asc|alpha-desc|last-letter-asc)", raw)
}

// Before reports whether a sorts strictly before b under p.
//
// Each variant is a strict weak ordering: asymmetric, transitive, and
// consistent with byte equality. An invalid policy falls back to
// AlphaAscending; callers that care (the sort engine) check IsValid first
// and report the anomaly.
func (p Policy) Before(a, b string) bool {
	switch p {
	case AlphaDescending:
		return alphaDescBefore(a, b)
	case LastLetterAscending:
		return lastLetterBefore(a, b)
	default:
		return alphaAscBefore(a, b)
	}
}

func alphaAscBefore(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func alphaDescBefore(a, b string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(b) < len(a)
}

func lastLetterBefore(a, b string) bool {
	i, j := len(a)-1, len(b)-1
	for {
		// Whichever side is consumed first sorts first; if both are consumed
		// the lines are equal-ranked and neither is strictly before.
		if i < 0 {
			return j >= 0
		}
		if j < 0 {
			return false
		}
		if a[i] != b[j] {
			return a[i] < b[j]
		}
		i--
		j--
	}
}
