// internal/gateway/store.go
//
// Payable – Submission gateway: MySQL-backed store.
//
// Context
//   Production deployments persist accepted payables in the `payable`
//   table; the AUTO_INCREMENT row id doubles as the identifier the gateway
//   contract promises.  Optional fields (due date, payment method, vendor
//   email) are stored as NULL when empty so reporting queries can tell
//   "absent" from "blank".
//
// Schema
//   CREATE TABLE payable (
//       id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
//       vendor_name    VARCHAR(255)  NOT NULL,
//       vendor_email   VARCHAR(255)  NULL,
//       vendor_number  CHAR(10)      NULL,
//       invoice_id     VARCHAR(64)   NULL,
//       invoice_date   DATE          NULL,
//       due_date       DATE          NULL,
//       payment_method VARCHAR(32)   NULL,
//       payment_status VARCHAR(16)   NULL,
//       created_by     VARCHAR(255)  NULL,
//       amount         DECIMAL(13,2) NOT NULL DEFAULT 0,
//       created_at     DATETIME      NOT NULL
//   );
//
//------------------------------------------------------------------------------

package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yanizio/payable/internal/payable"
)

// Store persists accepted payables via a shared sqlx pool.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open pool.  The caller owns the pool's lifecycle.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

const insertPayable = `
    INSERT INTO payable
        (vendor_name, vendor_email, vendor_number, invoice_id,
         invoice_date, due_date, payment_method, payment_status,
         created_by, amount, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Create implements Gateway.  One INSERT, one assigned id; any database
// error surfaces as the failure reason.
func (s *Store) Create(ctx context.Context, rec payable.Record) (int64, error) {
	if !vendorNamePresent(rec) {
		return 0, ErrVendorNameRequired
	}

	res, err := s.db.ExecContext(ctx, insertPayable,
		rec.VendorName,
		nullable(rec.VendorEmail),
		nullable(rec.VendorNumber),
		nullable(rec.InvoiceID),
		nullable(rec.InvoiceDate),
		nullable(rec.DueDate),
		nullable(rec.PaymentMethod),
		nullable(rec.PaymentStatus),
		nullable(rec.CreatedBy),
		rec.Amount,
		time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert payable: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("payable id: %w", err)
	}
	return id, nil
}

// nullable maps "" to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
