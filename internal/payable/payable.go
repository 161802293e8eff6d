// internal/payable/payable.go
//
// Payable – domain model for the payable-invoice capture workflow.
//
// Context
//   An operations employee enters one accounts-payable record at a time.
//   While the record is being typed it is a Draft, owned exclusively by the
//   form controller.  Once every check passes, the Draft is finalized into a
//   Record and handed to the submission gateway, which either assigns an
//   identifier or rejects the whole thing.  Nothing here touches a database
//   or the network; this package is pure data plus the predicates the
//   controller applies to it.
//
// Workflow
//   •  Draft      – mutable record under edit.  Zero value is the empty form.
//   •  Record     – finalized, JSON-tagged payload for the gateway boundary.
//   •  Field      – identifiers plus human-readable labels for messages.
//   •  Enums      – closed option sets for payment method and status.
//
//------------------------------------------------------------------------------

package payable

// Field identifies one input on the payable form.  Values match the wire
// names used by hosting pages, so a Field can double as a JSON key.
type Field string

const (
	FieldVendorName    Field = "vendorName"
	FieldVendorEmail   Field = "vendorEmail"
	FieldVendorNumber  Field = "vendorNumber"
	FieldInvoiceID     Field = "invoiceId"
	FieldInvoiceDate   Field = "invoiceDate"
	FieldDueDate       Field = "dueDate"
	FieldPaymentMethod Field = "paymentMethod"
	FieldPaymentStatus Field = "paymentStatus"
	FieldCreatedBy     Field = "createdBy"
	FieldAmount        Field = "amount"
)

// labels maps a Field to the label shown to the user.  Blur-time date errors
// embed these, so the text must match what the hosting page renders.
var labels = map[Field]string{
	FieldVendorName:    "Vendor Name",
	FieldVendorEmail:   "Vendor Email",
	FieldVendorNumber:  "Vendor Number",
	FieldInvoiceID:     "Invoice ID",
	FieldInvoiceDate:   "Invoice Date",
	FieldDueDate:       "Due Date",
	FieldPaymentMethod: "Payment Method",
	FieldPaymentStatus: "Payment Status",
	FieldCreatedBy:     "Created By",
	FieldAmount:        "Amount",
}

// Label returns the human-readable label for f, or the raw field name when
// the field is unknown.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Draft is the mutable payable record under edit.  The form controller is
// the only writer; hosts read it back to re-render the form.  All fields are
// raw text except Amount, which stores the parsed numeric value.
type Draft struct {
	VendorName    string
	VendorEmail   string
	VendorNumber  string
	InvoiceID     string
	InvoiceDate   string
	DueDate       string
	PaymentMethod string
	PaymentStatus string
	CreatedBy     string
	Amount        float64
}

// Reset restores the draft to its empty default state.  Called after a
// successful submission; never on failure, so the user keeps their input.
func (d *Draft) Reset() { *d = Draft{} }

// Record returns the finalized submission payload for the gateway boundary.
func (d *Draft) Record() Record {
	return Record{
		VendorName:    d.VendorName,
		VendorEmail:   d.VendorEmail,
		VendorNumber:  d.VendorNumber,
		InvoiceID:     d.InvoiceID,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		PaymentMethod: d.PaymentMethod,
		PaymentStatus: d.PaymentStatus,
		CreatedBy:     d.CreatedBy,
		Amount:        d.Amount,
	}
}

// Record is the finalized payable invoice handed to the submission gateway.
// At this boundary every field except VendorName is optional; the gateway
// enforces that single requirement itself.
type Record struct {
	VendorName    string  `json:"vendorName"`
	VendorEmail   string  `json:"vendorEmail,omitempty"`
	VendorNumber  string  `json:"vendorNumber,omitempty"`
	InvoiceID     string  `json:"invoiceId,omitempty"`
	InvoiceDate   string  `json:"invoiceDate,omitempty"`
	DueDate       string  `json:"dueDate,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	PaymentStatus string  `json:"paymentStatus,omitempty"`
	CreatedBy     string  `json:"createdBy,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
}

// Draft converts an inbound Record (e.g., a decoded API payload) back into a
// Draft so the controller can validate and submit it.
func (r Record) Draft() Draft {
	return Draft{
		VendorName:    r.VendorName,
		VendorEmail:   r.VendorEmail,
		VendorNumber:  r.VendorNumber,
		InvoiceID:     r.InvoiceID,
		InvoiceDate:   r.InvoiceDate,
		DueDate:       r.DueDate,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: r.PaymentStatus,
		CreatedBy:     r.CreatedBy,
		Amount:        r.Amount,
	}
}

//
// Closed option sets.  Hosting pages render these verbatim; the controller
// never invents values outside them.
//

// PaymentMethods lists every selectable payment method.  The field itself is
// optional, so "" (unset) is also legal on a draft.
func PaymentMethods() []string {
	return []string{
		"Bank Transfer",
		"Cash",
		"Cheque",
		"UPI",
		"Net Banking",
		"Credit/Debit Card",
		"Other",
	}
}

// PaymentStatuses lists every selectable payment status.  Required on
// submit.
func PaymentStatuses() []string {
	return []string{"Pending", "Paid", "Overdue"}
}

// ValidPaymentMethod reports whether v is one of the closed method options.
// The empty string is accepted because the field is optional.
func ValidPaymentMethod(v string) bool {
	if v == "" {
		return true
	}
	for _, m := range PaymentMethods() {
		if m == v {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether v is one of the closed status options.
func ValidPaymentStatus(v string) bool {
	for _, s := range PaymentStatuses() {
		if s == v {
			return true
		}
	}
	return false
}
