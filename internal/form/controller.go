// internal/form/controller.go
//
// Payable – Forms subsystem: the form controller.
//
// Context
//   The controller owns one payable.Draft for its lifetime.  Edits flow
//   through per-keystroke character filters, date fields get calendrical
//   checks on blur, and Submit runs the full fail-fast validation chain
//   before delegating to the host-supplied Submitter.  While a submission
//   is in flight the controller refuses to start another; field editing is
//   deliberately left open.
//
// Workflow
//   •  EditField      – apply the character filter, then store the value.
//   •  BlurDateField  – calendrical check, transient error, field cleared.
//   •  Submit         – validate in order, call the Submitter, resolve the
//                       status either way, reset the draft only on success.
//   •  Status         – read the current status; expired transients
//                       collapse back to Idle on read.
//
// Failure semantics
//   Every failure is local and recoverable.  Validation errors keep the
//   draft intact, remote failures keep the draft intact, and only success
//   resets it.  The gateway's specific rejection reason is logged but never
//   surfaced to the user; they see the generic retry message.
//
//------------------------------------------------------------------------------

package form

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/payable/internal/payable"
)

// User-facing messages.  Hosting pages render these verbatim, so the text is
// part of the contract and must not drift.
const (
	MsgRequiredFields  = "Please fill in all required fields."
	MsgVendorNumber    = "Vendor Number must be a valid 10-digit number."
	MsgInvoiceIDDigits = "Invoice ID must contain only digits."
	MsgInvoiceDate     = "Invalid Invoice Date. Please correct and try again."
	MsgDueDate         = "Invalid Due Date. Please correct and try again."
	MsgSubmitFailed    = "Failed to create payable. Please try again."
	MsgSubmitSucceeded = "Payable created successfully!"
)

// Auto-clear windows for transient statuses.
const (
	blurErrorTTL = 4 * time.Second
	resolveTTL   = 3 * time.Second
)

var (
	vendorNumberRE = regexp.MustCompile(`^\d{10}$`)
	invoiceIDRE    = regexp.MustCompile(`^\d+$`)
)

// ErrSubmitting is returned by Submit when a submission is already in
// flight.  The attempt is a no-op; the pending call is unaffected.
var ErrSubmitting = errors.New("form: submission already in flight")

// ValidationError reports a submit-time validation failure.  Message is the
// exact user-facing text.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// Submitter is the host's onSubmit boundary.  Implementations receive a
// finalized Record after local validation passes and return nil on
// acceptance.  The controller treats any error as a generic remote failure.
type Submitter interface {
	SubmitPayable(ctx context.Context, rec payable.Record) error
}

// SubmitterFunc adapts a plain function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, rec payable.Record) error

// SubmitPayable calls f.
func (f SubmitterFunc) SubmitPayable(ctx context.Context, rec payable.Record) error {
	return f(ctx, rec)
}

// Controller drives the validation-and-submission workflow for one draft.
// Safe for concurrent use, though the intended model is one active event at
// a time.
type Controller struct {
	mu     sync.Mutex
	draft  payable.Draft
	status Status

	submit Submitter
	now    func() time.Time
	log    *zap.SugaredLogger
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock injects a time source.  Tests use this to step through the
// auto-clear windows without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger attaches a logger; defaults to the process-wide sugared zap.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Controller) { c.log = log }
}

// WithDraft seeds the controller with an already-populated draft, e.g. a
// decoded API payload.  The controller still owns the copy it keeps.
func WithDraft(d payable.Draft) Option {
	return func(c *Controller) { c.draft = d }
}

// New returns an idle Controller bound to the given Submitter.
func New(sub Submitter, opts ...Option) *Controller {
	c := &Controller{
		submit: sub,
		now:    time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = zap.S()
	}
	return c
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() payable.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Status returns the current status.  A transient status whose expiry
// instant has passed collapses to Idle; this is how banners auto-dismiss
// without any scheduled callbacks.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.expired(c.now()) {
		c.status = Status{}
	}
	return c.status
}

// EditField applies one edit to the draft.  When the value violates the
// field's character filter the edit is rejected silently: the stored value
// is left unchanged and false is returned.  Amount is parsed and stored
// numerically, defaulting to 0 when unparseable; date fields store the raw
// text verbatim, deferring validation to blur time.
func (c *Controller) EditField(f payable.Field, raw string) bool {
	if !payable.Accepts(f, raw) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch f {
	case payable.FieldVendorName:
		c.draft.VendorName = raw
	case payable.FieldVendorEmail:
		c.draft.VendorEmail = raw
	case payable.FieldVendorNumber:
		c.draft.VendorNumber = raw
	case payable.FieldInvoiceID:
		c.draft.InvoiceID = raw
	case payable.FieldInvoiceDate:
		c.draft.InvoiceDate = raw
	case payable.FieldDueDate:
		c.draft.DueDate = raw
	case payable.FieldPaymentMethod:
		c.draft.PaymentMethod = raw
	case payable.FieldPaymentStatus:
		c.draft.PaymentStatus = raw
	case payable.FieldCreatedBy:
		c.draft.CreatedBy = raw
	case payable.FieldAmount:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			n = 0
		}
		c.draft.Amount = n
	default:
		return false
	}
	return true
}

// BlurDateField runs the calendrical check on a date field once the user
// leaves it.  An empty value is a no-op.  An invalid value raises a
// transient error naming the field label, clears the field so the user must
// re-enter it, and auto-clears after four seconds.  This is the only
// validation that fires before Submit.
func (c *Controller) BlurDateField(f payable.Field) {
	if f != payable.FieldInvoiceDate && f != payable.FieldDueDate {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	val := c.draft.InvoiceDate
	if f == payable.FieldDueDate {
		val = c.draft.DueDate
	}
	if val == "" {
		return
	}
	if payable.ValidDate(val) {
		return
	}

	if f == payable.FieldInvoiceDate {
		c.draft.InvoiceDate = ""
	} else {
		c.draft.DueDate = ""
	}
	c.status = Status{
		Phase:     PhaseFailed,
		Message:   fmt.Sprintf("Invalid date entered for %s. Please enter a valid date.", f.Label()),
		ExpiresAt: c.now().Add(blurErrorTTL),
	}
}

// Submit validates the draft and, on success, delegates to the Submitter.
//
// Validation is fail-fast: the first violation sets the status message and
// returns a *ValidationError without ever entering Submitting.  When every
// check passes the controller transitions to Submitting, which blocks
// further Submit calls (they return ErrSubmitting) until the gateway call
// resolves.  Success resets the draft and shows a confirmation; failure
// keeps the draft for retry and shows the generic message.  Both outcomes
// auto-clear after three seconds.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status.Phase == PhaseSubmitting {
		c.mu.Unlock()
		return ErrSubmitting
	}

	d := c.draft
	if msg := validate(d); msg != "" {
		c.status = Status{Phase: PhaseFailed, Message: msg}
		c.mu.Unlock()
		return &ValidationError{Message: msg}
	}

	c.status = Status{Phase: PhaseSubmitting}
	c.mu.Unlock()

	// The only suspension point.  No timeout of our own; the gateway call
	// resolves on its own schedule and the status always leaves Submitting.
	err := c.submit.SubmitPayable(ctx, d.Record())

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// The specific reason stays in the log; the user sees the generic
		// retry message and keeps their input.
		c.log.Warnw("payable submission rejected", "vendor", d.VendorName, "error", err)
		c.status = Status{
			Phase:     PhaseFailed,
			Message:   MsgSubmitFailed,
			ExpiresAt: c.now().Add(resolveTTL),
		}
		return fmt.Errorf("submit payable: %w", err)
	}

	c.draft.Reset()
	c.status = Status{
		Phase:     PhaseSucceeded,
		Message:   MsgSubmitSucceeded,
		ExpiresAt: c.now().Add(resolveTTL),
	}
	return nil
}

// validate runs the submit-time checks in contract order and returns the
// first violation's message, or "" when the draft is clean.
func validate(d payable.Draft) string {
	required := []string{
		d.VendorName,
		d.VendorEmail,
		d.VendorNumber,
		d.InvoiceID,
		d.InvoiceDate,
		d.PaymentStatus,
		d.CreatedBy,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return MsgRequiredFields
		}
	}
	if d.Amount == 0 {
		return MsgRequiredFields
	}

	if !vendorNumberRE.MatchString(d.VendorNumber) {
		return MsgVendorNumber
	}
	if !invoiceIDRE.MatchString(d.InvoiceID) {
		return MsgInvoiceIDDigits
	}
	if !payable.ValidDate(d.InvoiceDate) {
		return MsgInvoiceDate
	}
	if strings.TrimSpace(d.DueDate) != "" && !payable.ValidDate(d.DueDate) {
		return MsgDueDate
	}
	return ""
}
