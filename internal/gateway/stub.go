// internal/gateway/stub.go
//
// Payable – Submission gateway: in-memory stub.
//
// Context
//   Development and demo environments run without a database.  The stub
//   honors the gateway contract while simulating the rough edges of a real
//   backend: a fixed latency before resolution, and a configurable fraction
//   of otherwise-valid requests rejected with a server error so the
//   controller's failure path gets exercised.  Identifiers are random in
//   [1, 1000], mirroring nothing in particular.
//
//------------------------------------------------------------------------------

package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/yanizio/payable/internal/payable"
)

// Stub simulates a remote submission backend.
type Stub struct {
	latency     time.Duration
	failureRate float64

	mu  sync.Mutex // guards rng, which is not goroutine-safe
	rng *rand.Rand
}

// NewStub returns a stub resolving after latency and failing failureRate of
// valid requests (0 never fails, 1 always fails).
func NewStub(latency time.Duration, failureRate float64) *Stub {
	return &Stub{
		latency:     latency,
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create implements Gateway.  The latency wait respects ctx cancellation;
// once the wait completes the outcome is decided atomically.
func (s *Stub) Create(ctx context.Context, rec payable.Record) (int64, error) {
	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	if !vendorNamePresent(rec) {
		return 0, ErrVendorNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng.Float64() < s.failureRate {
		return 0, ErrServer
	}
	return int64(s.rng.Intn(1000)) + 1, nil
}
