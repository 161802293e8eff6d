// internal/payable/filter.go
//
// Per-keystroke character filters.
//
// Context
//   Some fields constrain which characters may ever appear, not just what
//   the finished value must look like.  Vendor Name and Created By accept
//   letters and whitespace; Vendor Number and Invoice ID accept digits;
//   Amount accepts digits and one decimal point (the "one" part is enforced
//   later by numeric parsing, not here).  The controller calls Accepts
//   before applying an edit and silently drops the edit when it fails, so
//   an illegal keystroke never mutates the draft.
//
//   These are pure predicates on the whole candidate value, decoupled from
//   any UI event.  An empty string always passes; emptiness is a submit-time
//   concern, not a typing one.
//
//------------------------------------------------------------------------------

package payable

import "regexp"

var (
	alphaSpaceRE = regexp.MustCompile(`^[A-Za-z\s]*$`)
	digitsRE     = regexp.MustCompile(`^[0-9]*$`)
	amountRE     = regexp.MustCompile(`^[0-9.]*$`)
)

// Accepts reports whether raw is a legal in-progress value for f.  Fields
// without a character-class restriction always accept.
func Accepts(f Field, raw string) bool {
	switch f {
	case FieldVendorName, FieldCreatedBy:
		return alphaSpaceRE.MatchString(raw)
	case FieldVendorNumber, FieldInvoiceID:
		return digitsRE.MatchString(raw)
	case FieldAmount:
		return amountRE.MatchString(raw)
	default:
		return true
	}
}
