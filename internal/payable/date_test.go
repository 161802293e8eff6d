// internal/payable/date_test.go
//
// Unit-tests for calendrical validation.  The regex shape alone is not
// enough; the parsed date must denote a real calendar day.

package payable

import "testing"

func TestValidDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-02-29", true},  // leap year
		{"2023-02-29", false}, // not a leap year
		{"2024-02-30", false}, // matches shape, not a real day
		{"2024-13-01", false}, // month out of range
		{"2024-05-01", true},
		{"2024-00-10", false},
		{"2024-01-00", false},
		{"2024-5-1", false}, // shape requires zero padding
		{"24-05-01", false},
		{"2024/05/01", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, c := range cases {
		if got := ValidDate(c.in); got != c.want {
			t.Errorf("ValidDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
