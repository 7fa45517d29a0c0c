package queries

import (
	"context"
	"database/sql"

	"jewelry/internal/core/domain/model/estimate"

	"gorm.io/gorm"
)

const estimateColumns = `
	estimate_id,
	estimate_number,
	estimate_date,
	source_by,
	status,
	order_number,
	order_date,
	customer_accepted,
	product_id,
	product_name,
	metal_type,
	design_name,
	purity,
	category,
	sub_category,
	gross_weight,
	stone_weight,
	stone_price,
	making_charges,
	rate,
	tax_percent,
	tax_amount,
	total_amount,
	net_amount,
	qty
`

// GetEstimatesQueryHandler retrieves all estimate rows from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetEstimatesQueryHandler struct {
	db *gorm.DB
}

// NewGetEstimatesQueryHandler creates a handler for estimate list queries.
// Requires a GORM database connection for query execution.
func NewGetEstimatesQueryHandler(db *gorm.DB) GetEstimatesQueryHandler {
	return GetEstimatesQueryHandler{db: db}
}

// Handle executes the query to retrieve all estimates, newest first.
func (h GetEstimatesQueryHandler) Handle(
	ctx context.Context,
	query GetEstimatesQuery,
) ([]EstimateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	estimates := make([]EstimateView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + estimateColumns + `
		FROM estimates
		ORDER BY estimate_id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanEstimateView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		estimates = append(estimates, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return estimates, nil
}

// scanEstimateView maps one estimates row onto the read model, converting the
// stored enum smallints to their wire strings.
func scanEstimateView(rows *sql.Rows) (EstimateView, error) {
	var view EstimateView
	var sourceBy, status int
	var orderNumber sql.NullString
	var orderDate sql.NullTime

	err := rows.Scan(
		&view.EstimateID,
		&view.EstimateNumber,
		&view.Date,
		&sourceBy,
		&status,
		&orderNumber,
		&orderDate,
		&view.CustomerAccepted,
		&view.ProductID,
		&view.ProductName,
		&view.MetalType,
		&view.DesignName,
		&view.Purity,
		&view.Category,
		&view.SubCategory,
		&view.GrossWeight,
		&view.StoneWeight,
		&view.StonePrice,
		&view.MakingCharges,
		&view.Rate,
		&view.TaxPercent,
		&view.TaxAmount,
		&view.TotalAmount,
		&view.NetAmount,
		&view.Qty,
	)
	if err != nil {
		return EstimateView{}, err
	}

	view.Source = estimate.Source(sourceBy).String()
	view.Status = estimate.Status(status).String()
	if orderNumber.Valid {
		view.OrderNumber = &orderNumber.String
	}
	if orderDate.Valid {
		view.OrderDate = &orderDate.Time
	}

	return view, nil
}
