// internal/gateway/stub_test.go
//
// Unit-tests for the stub gateway contract.
//
// Run: go test ./internal/gateway -v

package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yanizio/payable/internal/payable"
)

func TestStub_Success(t *testing.T) {
	s := NewStub(0, 0) // no latency, never fails

	id, err := s.Create(context.Background(), payable.Record{VendorName: "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id < 1 || id > 1000 {
		t.Errorf("id = %d, want 1..1000", id)
	}
}

func TestStub_VendorNameRequired(t *testing.T) {
	s := NewStub(0, 0)

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := s.Create(context.Background(), payable.Record{VendorName: name}); !errors.Is(err, ErrVendorNameRequired) {
			t.Errorf("vendor name %q: err = %v, want ErrVendorNameRequired", name, err)
		}
	}
}

func TestStub_ServerError(t *testing.T) {
	s := NewStub(0, 1) // always fails

	if _, err := s.Create(context.Background(), payable.Record{VendorName: "Acme"}); !errors.Is(err, ErrServer) {
		t.Fatalf("err = %v, want ErrServer", err)
	}
}

func TestStub_ContextCancelDuringLatency(t *testing.T) {
	s := NewStub(time.Minute, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.Create(ctx, payable.Record{VendorName: "Acme"})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Create did not return after cancellation")
	}
}
