// Package estimaterepo provides data transfer objects and mapping functions
// for estimate persistence. This package implements the repository pattern for
// the estimate domain aggregate, handling the conversion between domain
// entities and database representations.
package estimaterepo

import (
	"time"

	"jewelry/internal/core/domain/model/estimate"
)

// EstimateDTO represents the database structure for persisting estimate
// aggregates. The estimate number and the order number each carry a unique
// index: the first backs the upsert-by-number semantics, the second makes the
// at-most-once numbering guarantee hold even against a buggy writer.
type EstimateDTO struct {
	EstimateID     int64     `gorm:"column:estimate_id;primaryKey;autoIncrement"`
	EstimateNumber string    `gorm:"size:32;uniqueIndex"`
	EstimateDate   time.Time `gorm:"type:date"`
	SourceBy       int       `gorm:"type:smallint"`
	Status         int       `gorm:"type:smallint;index"`

	OrderNumber      *string    `gorm:"size:32;uniqueIndex"`
	OrderDate        *time.Time `gorm:"type:date"`
	CustomerAccepted bool

	ProductID     int64
	ProductName   string `gorm:"size:128"`
	MetalType     string `gorm:"size:32"`
	DesignName    string `gorm:"size:128"`
	Purity        string `gorm:"size:32"`
	Category      string `gorm:"size:64"`
	SubCategory   string `gorm:"size:64"`
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

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for estimate entities.
// Overrides GORM's default naming convention to use "estimates".
func (EstimateDTO) TableName() string {
	return "estimates"
}

// fromDomain converts an estimate domain aggregate to its database
// representation.
func fromDomain(e *estimate.Estimate) EstimateDTO {
	var orderNumber *string
	if n := e.OrderNumber(); n != nil {
		value := n.String()
		orderNumber = &value
	}

	details := e.Details()

	return EstimateDTO{
		EstimateID:       e.ID(),
		EstimateNumber:   e.EstimateNumber(),
		EstimateDate:     e.Date(),
		SourceBy:         int(e.Source()),
		Status:           int(e.Status()),
		OrderNumber:      orderNumber,
		OrderDate:        e.OrderDate(),
		CustomerAccepted: e.CustomerAccepted(),
		ProductID:        details.ProductID,
		ProductName:      details.ProductName,
		MetalType:        details.MetalType,
		DesignName:       details.DesignName,
		Purity:           details.Purity,
		Category:         details.Category,
		SubCategory:      details.SubCategory,
		GrossWeight:      details.GrossWeight,
		StoneWeight:      details.StoneWeight,
		StonePrice:       details.StonePrice,
		MakingCharges:    details.MakingCharges,
		Rate:             details.Rate,
		TaxPercent:       details.TaxPercent,
		TaxAmount:        details.TaxAmount,
		TotalAmount:      details.TotalAmount,
		NetAmount:        details.NetAmount,
		Qty:              details.Qty,
	}
}

// toDomain converts a database DTO to an estimate domain aggregate using
// RestoreEstimate.
func toDomain(dto EstimateDTO) (*estimate.Estimate, error) {
	var orderNumber *estimate.OrderNumber
	if dto.OrderNumber != nil {
		parsed, err := estimate.ParseOrderNumber(*dto.OrderNumber)
		if err != nil {
			return nil, err
		}
		orderNumber = &parsed
	}

	details := estimate.Details{
		ProductID:     dto.ProductID,
		ProductName:   dto.ProductName,
		MetalType:     dto.MetalType,
		DesignName:    dto.DesignName,
		Purity:        dto.Purity,
		Category:      dto.Category,
		SubCategory:   dto.SubCategory,
		GrossWeight:   dto.GrossWeight,
		StoneWeight:   dto.StoneWeight,
		StonePrice:    dto.StonePrice,
		MakingCharges: dto.MakingCharges,
		Rate:          dto.Rate,
		TaxPercent:    dto.TaxPercent,
		TaxAmount:     dto.TaxAmount,
		TotalAmount:   dto.TotalAmount,
		NetAmount:     dto.NetAmount,
		Qty:           dto.Qty,
	}

	return estimate.RestoreEstimate(
		dto.EstimateID,
		dto.EstimateNumber,
		dto.EstimateDate,
		estimate.Source(dto.SourceBy),
		estimate.Status(dto.Status),
		orderNumber,
		dto.OrderDate,
		dto.CustomerAccepted,
		details,
	)
}
