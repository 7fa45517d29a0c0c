// Package rate provides the daily metal-rate snapshot entity. One snapshot is
// kept per calendar day; resubmitting rates for the same day replaces the
// earlier values and refreshes the time of day.
package rate

import (
	"errors"
	"time"

	"jewelry/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrSnapshotIsNotConstructed is returned when a Snapshot instance was not
// created through NewSnapshot or RestoreSnapshot.
var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot or RestoreSnapshot")

// Snapshot captures the metal rates published for one day. The 22ct gold and
// silver rates are mandatory; the remaining purities are optional.
type Snapshot struct {
	id        uuid.UUID
	date      time.Time
	timeOfDay string

	gold16 float64
	gold18 float64
	gold22 float64
	gold24 float64
	silver float64

	isConstructed bool
}

// NewSnapshot creates a rate snapshot for the given day.
func NewSnapshot(date time.Time, timeOfDay string, gold16, gold18, gold22, gold24, silver float64) (*Snapshot, error) {
	s := &Snapshot{
		id:            uuid.New(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setDate(date),
		s.setRates(timeOfDay, gold16, gold18, gold22, gold24, silver),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSnapshot reconstructs a snapshot from persistence.
func RestoreSnapshot(id uuid.UUID, date time.Time, timeOfDay string, gold16, gold18, gold22, gold24, silver float64) (*Snapshot, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("rateID")
	}

	s := &Snapshot{
		id:            id,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setDate(date),
		s.setRates(timeOfDay, gold16, gold18, gold22, gold24, silver),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Snapshot was constructed through a factory method.
func (s *Snapshot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSnapshotIsNotConstructed
	}
	return nil
}

// ID returns the snapshot identity.
func (s *Snapshot) ID() uuid.UUID {
	return s.id
}

// Date returns the day the rates apply to.
func (s *Snapshot) Date() time.Time {
	return s.date
}

// TimeOfDay returns the HH:MM:SS wall-clock time of the last update.
func (s *Snapshot) TimeOfDay() string {
	return s.timeOfDay
}

// Gold16 returns the 16ct gold rate.
func (s *Snapshot) Gold16() float64 { return s.gold16 }

// Gold18 returns the 18ct gold rate.
func (s *Snapshot) Gold18() float64 { return s.gold18 }

// Gold22 returns the 22ct gold rate.
func (s *Snapshot) Gold22() float64 { return s.gold22 }

// Gold24 returns the 24ct gold rate.
func (s *Snapshot) Gold24() float64 { return s.gold24 }

// Silver returns the silver rate.
func (s *Snapshot) Silver() float64 { return s.silver }

// UpdateRates replaces the day's rates with a later publication.
func (s *Snapshot) UpdateRates(timeOfDay string, gold16, gold18, gold22, gold24, silver float64) error {
	return s.setRates(timeOfDay, gold16, gold18, gold22, gold24, silver)
}

func (s *Snapshot) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("rateDate")
	}
	s.date = date
	return nil
}

func (s *Snapshot) setRates(timeOfDay string, gold16, gold18, gold22, gold24, silver float64) error {
	if gold22 <= 0 {
		return errs.NewValueIsRequiredError("rate22crt")
	}
	if silver <= 0 {
		return errs.NewValueIsRequiredError("silverRate")
	}

	s.timeOfDay = timeOfDay
	s.gold16 = gold16
	s.gold18 = gold18
	s.gold22 = gold22
	s.gold24 = gold24
	s.silver = silver
	return nil
}
