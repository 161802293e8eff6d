// internal/form/status.go
//
// Payable – Forms subsystem: transient status values.
//
// Context
//   Success and error banners are transient: they dismiss themselves after
//   a fixed delay.  Rather than scheduling timer callbacks that close over
//   controller state, a Status is a plain value carrying the phase, the
//   user-facing message, and an optional expiry instant.  The host's render
//   or polling loop asks the controller for the current status and receives
//   Idle once the instant has passed.  No timers, so tearing a controller
//   down mid-wait leaks nothing.
//
//------------------------------------------------------------------------------

package form

import "time"

// Phase enumerates the controller's submission cycle:
// Idle → Submitting → (Succeeded | Failed) → Idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns the lowercase wire name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the controller's transient user-facing state.  A zero ExpiresAt
// means the status never auto-clears (submit-time validation errors stick
// until the user acts again).
type Status struct {
	Phase     Phase
	Message   string
	ExpiresAt time.Time
}

// expired reports whether the status should have auto-cleared by now.
// Submitting never expires; it only resolves when the gateway call returns.
func (s Status) expired(now time.Time) bool {
	if s.Phase == PhaseSubmitting || s.ExpiresAt.IsZero() {
		return false
	}
	return now.After(s.ExpiresAt)
}
