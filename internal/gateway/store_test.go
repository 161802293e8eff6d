// internal/gateway/store_test.go
//
// Unit-tests for the MySQL-backed gateway using sqlmock.
//
// Run: go test ./internal/gateway -v

package gateway

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/yanizio/payable/internal/payable"
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestStore_CreateAssignsRowID(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payable")).
		WithArgs(
			"Acme",
			"billing@acme.example",
			"1234567890",
			"998",
			"2024-05-01",
			sqlmock.AnyArg(), // NULL due date
			sqlmock.AnyArg(), // NULL payment method
			"Pending",
			"Jane",
			150.50,
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(42, 1))

	rec := payable.Record{
		VendorName:    "Acme",
		VendorEmail:   "billing@acme.example",
		VendorNumber:  "1234567890",
		InvoiceID:     "998",
		InvoiceDate:   "2024-05-01",
		PaymentStatus: "Pending",
		CreatedBy:     "Jane",
		Amount:        150.50,
	}
	id, err := s.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestStore_VendorNameRequired(t *testing.T) {
	s, mock := newStoreWithMock(t)

	// No INSERT may reach the database.
	if _, err := s.Create(context.Background(), payable.Record{VendorName: "  "}); !errors.Is(err, ErrVendorNameRequired) {
		t.Fatalf("err = %v, want ErrVendorNameRequired", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected SQL executed: %v", err)
	}
}

func TestStore_InsertFailure(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payable")).
		WillReturnError(errors.New("deadlock"))

	if _, err := s.Create(context.Background(), payable.Record{VendorName: "Acme"}); err == nil {
		t.Fatal("Create returned nil on database error")
	}
}
