package estimate

import (
	"errors"
	"time"

	"jewelry/internal/pkg/errs"
)

var (
	// ErrEstimateIsNotConstructed is returned when an Estimate instance was not
	// created through NewEstimate or RestoreEstimate.
	ErrEstimateIsNotConstructed = errors.New("Estimate must be created via NewEstimate or RestoreEstimate")

	// ErrIDAlreadyAssigned is returned when the store identity is set twice.
	ErrIDAlreadyAssigned = errors.New("estimate already has a store identity")

	// ErrOrderNumberAlreadyAssigned is returned when an order number would be
	// minted a second time for the same estimate.
	ErrOrderNumberAlreadyAssigned = errors.New("estimate already has an order number")
)

// Details carries the line-item and pricing fields of an estimate. They are
// opaque to the coordinator: persisted and echoed back unchanged, never
// validated or interpreted.
type Details struct {
	ProductID     int64
	ProductName   string
	MetalType     string
	DesignName    string
	Purity        string
	Category      string
	SubCategory   string
	GrossWeight   float64
	StoneWeight   float64
	StonePrice    float64
	MakingCharges float64
	Rate          float64
	TaxPercent    float64
	TaxAmount     float64
	TotalAmount   float64
	NetAmount     float64
	Qty           int
}

// Estimate is the aggregate root for a priced quote header. It owns the
// legality of status transitions and the at-most-once assignment of an order
// number.
//
// Invariants:
//   - estimateNumber is caller-assigned, required, and never changes
//   - the origin (source) is immutable after creation
//   - customer-originated estimates are Ordered from birth and carry an
//     order number before they are first persisted
//   - once an order number is assigned it is never reassigned or cleared,
//     and no further status transition is permitted
type Estimate struct {
	// id is the store-assigned surrogate identity; zero until persisted.
	id int64

	estimateNumber string
	date           time.Time
	source         Source
	status         Status

	orderNumber *OrderNumber
	orderDate   *time.Time

	// customerAccepted is set when a customer accepts a staff-originated
	// estimate.
	customerAccepted bool

	details Details

	isConstructed bool
}

// NewEstimate creates a new estimate for the given origin.
//
// A customer origin forces the status to Ordered regardless of the requested
// status; the caller must assign an order number via AssignOrderNumber before
// persisting. Staff origins use the requested status, defaulting to Pending
// when the request carries none (StatusUnknown).
func NewEstimate(estimateNumber string, date time.Time, source Source, requested Status) (*Estimate, error) {
	if estimateNumber == "" {
		return nil, errs.NewValueIsRequiredError("estimateNumber")
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}

	status := requested
	switch {
	case source.IsCustomer():
		status = StatusOrdered
	case status == StatusUnknown:
		status = StatusPending
	default:
		if err := status.Validate(); err != nil {
			return nil, err
		}
	}

	return &Estimate{
		estimateNumber: estimateNumber,
		date:           date,
		source:         source,
		status:         status,
		isConstructed:  true,
	}, nil
}

// RestoreEstimate reconstructs an estimate from persistence.
func RestoreEstimate(
	id int64,
	estimateNumber string,
	date time.Time,
	source Source,
	status Status,
	orderNumber *OrderNumber,
	orderDate *time.Time,
	customerAccepted bool,
	details Details,
) (*Estimate, error) {
	if estimateNumber == "" {
		return nil, errs.NewValueIsRequiredError("estimateNumber")
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if orderNumber != nil {
		if err := orderNumber.Validate(); err != nil {
			return nil, err
		}
	}

	return &Estimate{
		id:               id,
		estimateNumber:   estimateNumber,
		date:             date,
		source:           source,
		status:           status,
		orderNumber:      orderNumber,
		orderDate:        orderDate,
		customerAccepted: customerAccepted,
		details:          details,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Estimate was constructed through a factory method and
// that its numbering invariants hold.
func (e *Estimate) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEstimateIsNotConstructed
	}
	if e.source.IsCustomer() && e.orderNumber == nil {
		return errs.NewValueIsRequiredErrorWithCause("orderNumber",
			errors.New("customer-originated estimates require an order number"))
	}
	if e.orderNumber != nil && e.orderDate == nil {
		return errs.NewValueIsRequiredErrorWithCause("orderDate",
			errors.New("order date must accompany the order number"))
	}
	return nil
}

// ID returns the store-assigned surrogate identity; zero until persisted.
func (e *Estimate) ID() int64 {
	return e.id
}

// AssignID records the store-assigned identity after the first insert.
func (e *Estimate) AssignID(id int64) error {
	if e.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("estimateID")
	}
	e.id = id
	return nil
}

// EstimateNumber returns the caller-assigned identifier, e.g. "EST010".
func (e *Estimate) EstimateNumber() string {
	return e.estimateNumber
}

// Date returns the business date of the estimate.
func (e *Estimate) Date() time.Time {
	return e.date
}

// Source returns the immutable origin of the estimate.
func (e *Estimate) Source() Source {
	return e.source
}

// Status returns the current lifecycle status.
func (e *Estimate) Status() Status {
	return e.status
}

// OrderNumber returns the assigned order number, or nil when none exists.
func (e *Estimate) OrderNumber() *OrderNumber {
	return e.orderNumber
}

// OrderDate returns the date the order number was assigned, or nil.
func (e *Estimate) OrderDate() *time.Time {
	return e.orderDate
}

// CustomerAccepted reports whether a customer accepted a staff-originated
// estimate.
func (e *Estimate) CustomerAccepted() bool {
	return e.customerAccepted
}

// Details returns the opaque pricing fields.
func (e *Estimate) Details() Details {
	return e.details
}

// UpdateDetails replaces the opaque pricing fields. The coordinator never
// inspects them.
func (e *Estimate) UpdateDetails(details Details) {
	e.details = details
}

// RequiresOrderNumber reports whether the estimate is confirmed as an order
// but has not been numbered yet.
func (e *Estimate) RequiresOrderNumber() bool {
	return e.status == StatusOrdered && e.orderNumber == nil
}

// AssignOrderNumber records the order number and its assignment date. The
// assignment happens at most once per estimate; a second call fails without
// touching the stored number.
func (e *Estimate) AssignOrderNumber(number OrderNumber, orderDate time.Time) error {
	if e.orderNumber != nil {
		return errs.NewObjectAlreadyExistsErrorWithCause(
			"orderNumber", e.orderNumber.String(), ErrOrderNumberAlreadyAssigned)
	}
	if err := number.Validate(); err != nil {
		return err
	}

	e.orderNumber = &number
	e.orderDate = &orderDate
	return nil
}

// ChangeStatus validates and applies a requested status change.
//
// The rules are evaluated in order, first match wins:
//  1. an estimate that already carries an order number rejects any change
//  2. customer-originated estimates never accept externally-driven changes
//  3. a customer accepting a staff-originated estimate (customerAccepting
//     with target Accepted) lands on Ordered with customerAccepted set, and
//     numbering is deferred to an explicit follow-up step
//  4. any other valid target is applied directly
//
// The returned flag tells the caller whether an order number must now be
// allocated: it is true only for a direct transition to Ordered on an
// unnumbered estimate, never for the customer-accepting branch.
func (e *Estimate) ChangeStatus(target Status, customerAccepting bool) (bool, error) {
	if e.orderNumber != nil {
		return false, errs.NewObjectAlreadyExistsErrorWithCause(
			"orderNumber", e.orderNumber.String(),
			errors.New("cannot change status once an order number exists"))
	}
	if e.source.IsCustomer() {
		return false, errs.NewOperationForbiddenError(
			"status of a customer-originated estimate cannot be changed")
	}
	if err := target.Validate(); err != nil {
		return false, err
	}

	if customerAccepting && target == StatusAccepted {
		e.status = StatusOrdered
		e.customerAccepted = true
		return false, nil
	}

	e.status = target
	return e.RequiresOrderNumber(), nil
}

// Resubmit applies a repeated submission with the same estimate number: the
// business date and pricing details are refreshed, and the status follows the
// creation rules. An estimate that already carries an order number keeps its
// status and numbering untouched.
func (e *Estimate) Resubmit(date time.Time, requested Status, details Details) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	e.date = date
	e.details = details

	if e.orderNumber != nil {
		return nil
	}

	switch {
	case e.source.IsCustomer():
		e.status = StatusOrdered
	case requested != StatusUnknown:
		if err := requested.Validate(); err != nil {
			return err
		}
		e.status = requested
	}

	return nil
}
