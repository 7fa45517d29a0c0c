package estimate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"jewelry/internal/pkg/errs"
)

const (
	orderNumberPrefix   = "ORD"
	orderNumberPadWidth = 3
)

var orderNumberPattern = regexp.MustCompile(`^ORD[0-9]+$`)

// OrderNumber is the human-readable identifier assigned once an estimate is
// confirmed as an order. The canonical form is "ORD" followed by a sequence
// zero-padded to three digits; beyond 999 the sequence prints unpadded.
//
// OrderNumber is a value object: the zero value is invalid and instances must
// be created via ParseOrderNumber, OrderNumberFromSequence or
// FallbackOrderNumber.
type OrderNumber struct {
	value    string
	sequence int
}

// ParseOrderNumber validates and parses a stored order number.
// Returns an error when the value does not match the ORD<digits> scheme or
// its numeric suffix does not fit an int.
func ParseOrderNumber(raw string) (OrderNumber, error) {
	if raw == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(raw) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q does not match the ORD numbering scheme", raw),
		)
	}

	seq, err := strconv.Atoi(raw[len(orderNumberPrefix):])
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}

	return OrderNumber{value: raw, sequence: seq}, nil
}

// OrderNumberFromSequence builds the canonical order number for a sequence.
// The sequence must be positive.
func OrderNumberFromSequence(seq int) (OrderNumber, error) {
	if seq <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("sequence %d is not positive", seq),
		)
	}
	return OrderNumber{
		value:    fmt.Sprintf("%s%0*d", orderNumberPrefix, orderNumberPadWidth, seq),
		sequence: seq,
	}, nil
}

// FallbackOrderNumber derives a best-effort unique order number from the
// given instant. It is used when the sequential allocation cannot determine
// the true next value; the result does not participate in monotonic ordering
// and must be flagged for manual reconciliation.
func FallbackOrderNumber(now time.Time) OrderNumber {
	nanos := now.UnixNano()
	return OrderNumber{
		value:    fmt.Sprintf("%s%d", orderNumberPrefix, nanos),
		sequence: int(nanos),
	}
}

// String returns the wire representation, e.g. "ORD007" or "ORD1000".
func (n OrderNumber) String() string {
	return n.value
}

// Sequence returns the numeric suffix of the order number.
func (n OrderNumber) Sequence() int {
	return n.sequence
}

// IsZero reports whether the OrderNumber is the invalid zero value.
func (n OrderNumber) IsZero() bool {
	return n.value == ""
}

// Next returns the order number with the following sequence.
func (n OrderNumber) Next() (OrderNumber, error) {
	return OrderNumberFromSequence(n.sequence + 1)
}

// Less orders two order numbers by suffix length first, then
// lexicographically, so "ORD999" sorts before "ORD1000".
func (n OrderNumber) Less(other OrderNumber) bool {
	if len(n.value) != len(other.value) {
		return len(n.value) < len(other.value)
	}
	return n.value < other.value
}

// Validate checks that the OrderNumber was created via a constructor.
func (n OrderNumber) Validate() error {
	if n.IsZero() {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	return nil
}
