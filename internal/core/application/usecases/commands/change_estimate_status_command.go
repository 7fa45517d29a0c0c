package commands

import (
	"errors"

	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/pkg/errs"
	"jewelry/internal/pkg/guard"
)

var ErrChangeEstimateStatusCommandIsNotConstructed = errors.New(
	"ChangeEstimateStatusCommand must be created via NewChangeEstimateStatusCommand constructor",
)

// ChangeEstimateStatusCommand represents a requested status change for one
// estimate, looked up by store identity or by estimate number. Exactly one
// of the two must be set.
//
// CustomerAccepting marks the request as a customer accepting a
// staff-originated estimate; combined with target Accepted it lands the
// estimate on Ordered with numbering deferred.
type ChangeEstimateStatusCommand struct { //nolint:recvcheck //using for validation
	estimateID        int64
	estimateNumber    string
	target            estimate.Status
	customerAccepting bool

	guard guard.ConstructorGuard
}

// NewChangeEstimateStatusCommand creates a status-change command. Pass a
// positive estimateID or a non-empty estimateNumber as the lookup key; the
// target status is required.
func NewChangeEstimateStatusCommand(
	estimateID int64,
	estimateNumber string,
	target estimate.Status,
	customerAccepting bool,
) (ChangeEstimateStatusCommand, error) {
	command := ChangeEstimateStatusCommand{
		customerAccepting: customerAccepting,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKey(estimateID, estimateNumber),
		command.setTarget(target),
	); err != nil {
		return ChangeEstimateStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeEstimateStatusCommandIsNotConstructed if validation fails.
func (c ChangeEstimateStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeEstimateStatusCommandIsNotConstructed)
}

// EstimateID returns the store identity lookup key; zero when the command is
// keyed by estimate number.
func (c ChangeEstimateStatusCommand) EstimateID() int64 {
	return c.estimateID
}

// EstimateNumber returns the estimate-number lookup key; empty when the
// command is keyed by store identity.
func (c ChangeEstimateStatusCommand) EstimateNumber() string {
	return c.estimateNumber
}

// Target returns the requested status.
func (c ChangeEstimateStatusCommand) Target() estimate.Status {
	return c.target
}

// CustomerAccepting reports whether the request carries the
// customer-is-accepting flag.
func (c ChangeEstimateStatusCommand) CustomerAccepting() bool {
	return c.customerAccepting
}

func (c *ChangeEstimateStatusCommand) setKey(estimateID int64, estimateNumber string) error {
	if estimateID <= 0 && estimateNumber == "" {
		return errs.NewValueIsRequiredErrorWithCause("estimate",
			errors.New("an estimate id or an estimate number is required"))
	}
	c.estimateID = estimateID
	c.estimateNumber = estimateNumber
	return nil
}

func (c *ChangeEstimateStatusCommand) setTarget(target estimate.Status) error {
	if target == estimate.StatusUnknown {
		return errs.NewValueIsRequiredError("estimateStatus")
	}
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
