package order

import (
	"errors"
	"fmt"

	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The happy path is linear:
//
//	Pending -> Confirmed -> Preparing -> Ready -> Delivering -> Delivered
//
// Cancelled is reachable from any non-terminal state. Delivered and Cancelled
// are terminal. Skipping ahead is allowed (a kitchen may confirm and start
// preparing in one step); moving backward is not.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order created by checkout.
	Pending

	// Confirmed indicates the store has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is packed and waiting for handoff.
	Ready

	// Delivering indicates the order is on its way to the customer.
	Delivering

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal abort state, kept for audit.
	Cancelled
)

// ErrInvalidTransition is the unwrap target of InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change the state machine forbids.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Preparing:  "PREPARING",
		Ready:      "READY",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Preparing:  "PREPARING",
		Ready:      "READY",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses the wire representation ("PENDING", "CONFIRMED", ...)
// into a Status. Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the transition from s to target and returns the new
// status. Legal moves are any strictly-forward status (skip-ahead allowed) and
// Cancelled from any non-terminal state. Backward moves, self-transitions, and
// any move out of a terminal state return an InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() || target <= s {
		return Unknown, NewInvalidTransitionError(s, target)
	}

	return target, nil
}
