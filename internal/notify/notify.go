// internal/notify/notify.go
//
// Payable – accepted-payable event publisher.
//
// Context
//   Downstream systems (reporting, reconciliation) want to hear about
//   accepted payables without polling the table.  When a NATS URL is
//   configured, the service publishes one JSON event per acceptance on
//   `payables.invoice.accepted`.  Publishing is fire-and-forget: errors are
//   logged and swallowed so a broker outage never interrupts a submission,
//   and a nil Publisher is a safe no-op for deployments without NATS.
//
//------------------------------------------------------------------------------

package notify

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/yanizio/payable/internal/payable"
)

// SubjectAccepted is the subject accepted-payable events publish on.
const SubjectAccepted = "payables.invoice.accepted"

// AcceptedEvent is the JSON schema published per accepted payable.
type AcceptedEvent struct {
	PayableID     int64     `json:"payable_id"`
	VendorName    string    `json:"vendor_name"`
	VendorNumber  string    `json:"vendor_number,omitempty"`
	InvoiceID     string    `json:"invoice_id,omitempty"`
	InvoiceDate   string    `json:"invoice_date,omitempty"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	Amount        float64   `json:"amount"`
	CreatedBy     string    `json:"created_by,omitempty"`
	AcceptedAt    time.Time `json:"accepted_at"`
}

// Publisher emits accepted-payable events on a NATS connection.
type Publisher struct {
	conn *nats.Conn
	log  *zap.SugaredLogger
}

// New wraps an open NATS connection.  conn may be nil; the resulting
// publisher silently does nothing.
func New(conn *nats.Conn, log *zap.SugaredLogger) *Publisher {
	if log == nil {
		log = zap.S()
	}
	return &Publisher{conn: conn, log: log}
}

// PayableAccepted publishes one event for the accepted record.  Never
// returns an error: failures are logged only.
func (p *Publisher) PayableAccepted(id int64, rec payable.Record) {
	if p == nil || p.conn == nil {
		return
	}

	ev := AcceptedEvent{
		PayableID:     id,
		VendorName:    rec.VendorName,
		VendorNumber:  rec.VendorNumber,
		InvoiceID:     rec.InvoiceID,
		InvoiceDate:   rec.InvoiceDate,
		PaymentStatus: rec.PaymentStatus,
		Amount:        rec.Amount,
		CreatedBy:     rec.CreatedBy,
		AcceptedAt:    time.Now().UTC(),
	}
	b, err := json.Marshal(ev)
	if err != nil {
		p.log.Errorw("accepted event marshal failed", "id", id, "err", err)
		return
	}
	if err := p.conn.Publish(SubjectAccepted, b); err != nil {
		p.log.Warnw("accepted event publish failed", "id", id, "err", err)
	}
}
