// internal/gateway/gateway.go
//
// Payable – Submission gateway contract.
//
// Context
//   The form controller treats whatever persists an accepted payable as an
//   opaque asynchronous dependency: one logical operation, no partial
//   results, a positive integer identifier on success, a reason on failure.
//   Two implementations honor that contract here: Stub (randomized latency
//   and failure, for development and exercising the failure path) and
//   Store (MySQL-backed, the real thing).  Every implementation must reject
//   a record whose vendor name is empty or whitespace-only.
//
//------------------------------------------------------------------------------

package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/yanizio/payable/internal/payable"
)

// Reason strings are part of the boundary contract.  They are logged, never
// shown to the user; the controller converts any failure into its generic
// retry message.
var (
	ErrVendorNameRequired = errors.New("Vendor Name is required")
	ErrServer             = errors.New("Server error, please try again.")
)

// Gateway accepts a finalized payable record and returns the identifier
// assigned to it.  Implementations must be safe for concurrent use; the
// controller guarantees at most one in-flight call per form, but many forms
// may share one gateway.
type Gateway interface {
	Create(ctx context.Context, rec payable.Record) (int64, error)
}

// vendorNamePresent enforces the one requirement every implementation
// shares.
func vendorNamePresent(rec payable.Record) bool {
	return strings.TrimSpace(rec.VendorName) != ""
}
