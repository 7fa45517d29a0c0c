package estimate

import (
	"fmt"

	"jewelry/internal/pkg/errs"
)

// Status represents the lifecycle state of an estimate.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Ordered
//	          ├──> Ordered
//	          └──> Cancelled
//
// Ordered is terminal once an order number has been assigned: the assignment
// freezes the estimate against any further status change through the
// coordinator. That rule lives on the Estimate aggregate, not here; Status
// only knows the set of valid states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status for staff-originated estimates.
	StatusPending

	// StatusAccepted indicates the customer has agreed to the estimate.
	StatusAccepted

	// StatusOrdered indicates the estimate has been confirmed as an order.
	StatusOrdered

	// StatusCancelled indicates the estimate was withdrawn.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusOrdered:   "Ordered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusOrdered:   "Ordered",
		StatusCancelled: "Cancelled",
	}
}

// ParseStatus converts the wire representation of a status into a Status.
// The empty string maps to StatusUnknown with no error, so callers can
// distinguish "absent" from "malformed".
func ParseStatus(raw string) (Status, error) {
	if raw == "" {
		return StatusUnknown, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"estimateStatus",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks that the Status is one of the defined business statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimateStatus",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
