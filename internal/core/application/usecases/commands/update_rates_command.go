package commands

import (
	"errors"
	"time"

	"jewelry/internal/pkg/errs"
	"jewelry/internal/pkg/guard"
)

var ErrUpdateRatesCommandIsNotConstructed = errors.New(
	"UpdateRatesCommand must be created via NewUpdateRatesCommand constructor",
)

// UpdateRatesCommand represents a metal-rate publication for one day.
// Publishing twice for the same day replaces the earlier values.
type UpdateRatesCommand struct { //nolint:recvcheck //using for validation
	date      time.Time
	timeOfDay string
	gold16    float64
	gold18    float64
	gold22    float64
	gold24    float64
	silver    float64

	guard guard.ConstructorGuard
}

// NewUpdateRatesCommand creates a rate-publication command. The date, the
// 22ct gold rate and the silver rate are required.
func NewUpdateRatesCommand(
	date time.Time,
	timeOfDay string,
	gold16, gold18, gold22, gold24, silver float64,
) (UpdateRatesCommand, error) {
	command := UpdateRatesCommand{
		timeOfDay: timeOfDay,
		gold16:    gold16,
		gold18:    gold18,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDate(date),
		command.setGold22(gold22),
		command.setGold24(gold24),
		command.setSilver(silver),
	); err != nil {
		return UpdateRatesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateRatesCommandIsNotConstructed if validation fails.
func (c UpdateRatesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRatesCommandIsNotConstructed)
}

// Date returns the day the rates apply to.
func (c UpdateRatesCommand) Date() time.Time {
	return c.date
}

// TimeOfDay returns the wall-clock time of the publication.
func (c UpdateRatesCommand) TimeOfDay() string {
	return c.timeOfDay
}

// Gold16 returns the 16ct gold rate.
func (c UpdateRatesCommand) Gold16() float64 { return c.gold16 }

// Gold18 returns the 18ct gold rate.
func (c UpdateRatesCommand) Gold18() float64 { return c.gold18 }

// Gold22 returns the 22ct gold rate.
func (c UpdateRatesCommand) Gold22() float64 { return c.gold22 }

// Gold24 returns the 24ct gold rate.
func (c UpdateRatesCommand) Gold24() float64 { return c.gold24 }

// Silver returns the silver rate.
func (c UpdateRatesCommand) Silver() float64 { return c.silver }

func (c *UpdateRatesCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func (c *UpdateRatesCommand) setGold22(gold22 float64) error {
	if gold22 <= 0 {
		return errs.NewValueIsRequiredError("rate22crt")
	}
	c.gold22 = gold22
	return nil
}

func (c *UpdateRatesCommand) setGold24(gold24 float64) error {
	if gold24 < 0 {
		return errs.NewValueIsInvalidError("rate24crt")
	}
	c.gold24 = gold24
	return nil
}

func (c *UpdateRatesCommand) setSilver(silver float64) error {
	if silver <= 0 {
		return errs.NewValueIsRequiredError("silverRate")
	}
	c.silver = silver
	return nil
}
