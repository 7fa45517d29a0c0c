package estimate

import (
	"fmt"

	"jewelry/internal/pkg/errs"
)

// Source identifies which actor class originated an estimate. The origin is
// fixed at creation time and gates which status transitions are permitted:
// customer-originated estimates are ordered immediately and can never be
// driven through the status-update operation afterwards.
type Source int

const (
	// SourceUnknown represents an invalid or undefined origin.
	SourceUnknown Source = iota

	// SourceAdmin marks estimates created by back-office staff.
	SourceAdmin

	// SourceSalesman marks estimates created by a salesperson.
	SourceSalesman

	// SourceCustomer marks estimates submitted directly by a customer.
	// These are created as confirmed orders with a number already assigned.
	SourceCustomer
)

func getSourceStrings() map[Source]string {
	return map[Source]string{
		SourceUnknown:  "unknown",
		SourceAdmin:    "admin",
		SourceSalesman: "salesman",
		SourceCustomer: "customer",
	}
}

func getValidSourceStrings() map[Source]string {
	return map[Source]string{
		SourceAdmin:    "admin",
		SourceSalesman: "salesman",
		SourceCustomer: "customer",
	}
}

// ParseSource converts the wire representation of an origin into a Source.
// The empty string defaults to SourceAdmin: submissions without an explicit
// origin come from back-office screens.
func ParseSource(raw string) (Source, error) {
	if raw == "" {
		return SourceAdmin, nil
	}
	for source, str := range getValidSourceStrings() {
		if str == raw {
			return source, nil
		}
	}
	return SourceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"sourceBy",
		fmt.Errorf("%q is not a valid source", raw),
	)
}

// Validate checks that the Source is one of the defined origins.
func (s Source) Validate() error {
	if _, ok := getValidSourceStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"sourceBy",
			fmt.Errorf("%d is not a valid source", s),
		)
	}
	return nil
}

// String returns the wire representation of the origin.
func (s Source) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsCustomer reports whether the estimate was originated by a customer.
func (s Source) IsCustomer() bool {
	return s == SourceCustomer
}
