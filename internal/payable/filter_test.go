// internal/payable/filter_test.go
//
// Unit-tests for the per-keystroke character filters.
//
// Run: go test ./internal/payable -v

package payable

import "testing"

func TestAccepts_AlphaSpaceFields(t *testing.T) {
	for _, f := range []Field{FieldVendorName, FieldCreatedBy} {
		good := []string{"", "Acme", "Acme Corp", "Jane  Doe", "  "}
		for _, v := range good {
			if !Accepts(f, v) {
				t.Errorf("Accepts(%s, %q) = false, want true", f, v)
			}
		}
		bad := []string{"Acme1", "Acme-Corp", "J@ne", "O'Brien", "Acme.", "42"}
		for _, v := range bad {
			if Accepts(f, v) {
				t.Errorf("Accepts(%s, %q) = true, want false", f, v)
			}
		}
	}
}

func TestAccepts_DigitFields(t *testing.T) {
	for _, f := range []Field{FieldVendorNumber, FieldInvoiceID} {
		good := []string{"", "0", "1234567890"}
		for _, v := range good {
			if !Accepts(f, v) {
				t.Errorf("Accepts(%s, %q) = false, want true", f, v)
			}
		}
		bad := []string{"12a", "12 34", "12.3", "-1", "+1"}
		for _, v := range bad {
			if Accepts(f, v) {
				t.Errorf("Accepts(%s, %q) = true, want false", f, v)
			}
		}
	}
}

func TestAccepts_Amount(t *testing.T) {
	good := []string{"", "0", "150.50", "1.", ".5", "1.2.3"} // parse handles malformed numbers
	for _, v := range good {
		if !Accepts(FieldAmount, v) {
			t.Errorf("Accepts(amount, %q) = false, want true", v)
		}
	}
	bad := []string{"1,50", "1e3", "-1", "$5", "1 0"}
	for _, v := range bad {
		if Accepts(FieldAmount, v) {
			t.Errorf("Accepts(amount, %q) = true, want false", v)
		}
	}
}

func TestAccepts_UnrestrictedFields(t *testing.T) {
	// Email, dates, and selects carry no character-class rule.
	for _, f := range []Field{FieldVendorEmail, FieldInvoiceDate, FieldDueDate, FieldPaymentMethod, FieldPaymentStatus} {
		if !Accepts(f, "anything at all! 123 <>") {
			t.Errorf("Accepts(%s) rejected an unrestricted field", f)
		}
	}
}

func TestValidPaymentOptions(t *testing.T) {
	if !ValidPaymentMethod("") {
		t.Error("empty payment method should be legal (optional field)")
	}
	if !ValidPaymentMethod("Bank Transfer") || ValidPaymentMethod("Barter") {
		t.Error("payment method option set check failed")
	}
	if ValidPaymentStatus("") {
		t.Error("empty payment status must not be legal")
	}
	if !ValidPaymentStatus("Overdue") || ValidPaymentStatus("Late") {
		t.Error("payment status option set check failed")
	}
}
