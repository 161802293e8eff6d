// internal/payable/date.go
//
// Calendrical date validation.
//
// A value passes only when it has the ISO shape YYYY-MM-DD *and* denotes a
// real calendar day.  The shape test alone would accept 2024-02-30, so after
// parsing we require the reconstructed date to round-trip to the identical
// string.

package payable

import (
	"regexp"
	"time"
)

const isoDateLayout = "2006-01-02"

var isoDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s is a syntactically and calendrically valid
// ISO date.  The empty string is NOT valid; callers decide whether a field
// may be empty.
func ValidDate(s string) bool {
	if !isoDateRE.MatchString(s) {
		return false
	}
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(isoDateLayout) == s
}
