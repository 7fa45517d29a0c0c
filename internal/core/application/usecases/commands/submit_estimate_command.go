package commands

import (
	"errors"
	"time"

	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/pkg/errs"
	"jewelry/internal/pkg/guard"
)

var ErrSubmitEstimateCommandIsNotConstructed = errors.New(
	"SubmitEstimateCommand must be created via NewSubmitEstimateCommand constructor",
)

// SubmitEstimateCommand represents a new or repeated estimate submission.
// A repeated submission with an estimate number that already exists becomes
// an update of that record rather than a new insertion.
//
// The requested status may be StatusUnknown, meaning the caller supplied
// none; the origin and the aggregate rules then decide the effective status.
type SubmitEstimateCommand struct { //nolint:recvcheck //using for validation
	date           time.Time
	estimateNumber string
	source         estimate.Source
	status         estimate.Status
	details        estimate.Details

	guard guard.ConstructorGuard
}

// NewSubmitEstimateCommand creates a command for an estimate submission.
// The date and estimate number are required; the status is optional.
func NewSubmitEstimateCommand(
	date time.Time,
	estimateNumber string,
	source estimate.Source,
	status estimate.Status,
	details estimate.Details,
) (SubmitEstimateCommand, error) {
	command := SubmitEstimateCommand{
		status:  status,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDate(date),
		command.setEstimateNumber(estimateNumber),
		command.setSource(source),
	); err != nil {
		return SubmitEstimateCommand{}, err
	}

	if status != estimate.StatusUnknown {
		if err := status.Validate(); err != nil {
			return SubmitEstimateCommand{}, err
		}
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitEstimateCommandIsNotConstructed if validation fails.
func (c SubmitEstimateCommand) Validate() error {
	return c.guard.Validate(ErrSubmitEstimateCommandIsNotConstructed)
}

// Date returns the business date of the submission.
func (c SubmitEstimateCommand) Date() time.Time {
	return c.date
}

// EstimateNumber returns the caller-assigned identifier.
func (c SubmitEstimateCommand) EstimateNumber() string {
	return c.estimateNumber
}

// Source returns the origin of the submission.
func (c SubmitEstimateCommand) Source() estimate.Source {
	return c.source
}

// Status returns the requested status; StatusUnknown when absent.
func (c SubmitEstimateCommand) Status() estimate.Status {
	return c.status
}

// Details returns the opaque pricing fields.
func (c SubmitEstimateCommand) Details() estimate.Details {
	return c.details
}

func (c *SubmitEstimateCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func (c *SubmitEstimateCommand) setEstimateNumber(estimateNumber string) error {
	if estimateNumber == "" {
		return errs.NewValueIsRequiredError("estimateNumber")
	}
	c.estimateNumber = estimateNumber
	return nil
}

func (c *SubmitEstimateCommand) setSource(source estimate.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	c.source = source
	return nil
}
