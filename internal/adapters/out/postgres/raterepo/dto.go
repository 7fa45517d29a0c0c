// Package raterepo provides data transfer objects and mapping functions for
// daily rate snapshot persistence.
package raterepo

import (
	"time"

	"jewelry/internal/core/domain/model/rate"

	"github.com/google/uuid"
)

// RateDTO represents the database structure for persisting rate snapshots.
// The unique index on the date enforces one snapshot per calendar day.
type RateDTO struct {
	RateID    uuid.UUID `gorm:"column:rate_id;type:uuid;primaryKey"`
	RateDate  time.Time `gorm:"type:date;uniqueIndex"`
	TimeOfDay string    `gorm:"size:16"`

	Gold16Crt float64 `gorm:"column:gold_16crt"`
	Gold18Crt float64 `gorm:"column:gold_18crt"`
	Gold22Crt float64 `gorm:"column:gold_22crt"`
	Gold24Crt float64 `gorm:"column:gold_24crt"`
	Silver    float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for rate snapshots.
func (RateDTO) TableName() string {
	return "rates"
}

// fromDomain converts a rate snapshot to its database representation.
func fromDomain(s *rate.Snapshot) RateDTO {
	return RateDTO{
		RateID:    s.ID(),
		RateDate:  s.Date(),
		TimeOfDay: s.TimeOfDay(),
		Gold16Crt: s.Gold16(),
		Gold18Crt: s.Gold18(),
		Gold22Crt: s.Gold22(),
		Gold24Crt: s.Gold24(),
		Silver:    s.Silver(),
	}
}

// toDomain converts a database DTO to a rate snapshot using RestoreSnapshot.
func toDomain(dto RateDTO) (*rate.Snapshot, error) {
	return rate.RestoreSnapshot(
		dto.RateID,
		dto.RateDate,
		dto.TimeOfDay,
		dto.Gold16Crt,
		dto.Gold18Crt,
		dto.Gold22Crt,
		dto.Gold24Crt,
		dto.Silver,
	)
}
