package http

import (
	"time"

	"jewelry/internal/core/application/usecases/commands"
	"jewelry/internal/core/application/usecases/queries"
	"jewelry/internal/core/domain/model/estimate"

	"github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// SubmitEstimateRequest is the body of POST /add/estimate. The estimate
// number is caller-assigned; resubmitting an existing number updates that
// record. Status and origin are optional, the origin defaults to admin.
type SubmitEstimateRequest struct {
	Date           types.Date `json:"date"`
	EstimateNumber string     `json:"estimate_number"`
	SourceBy       string     `json:"source_by,omitempty"`
	EstimateStatus string     `json:"estimate_status,omitempty"`

	ProductID     int64   `json:"product_id,omitempty"`
	ProductName   string  `json:"product_name,omitempty"`
	MetalType     string  `json:"metal_type,omitempty"`
	DesignName    string  `json:"design_name,omitempty"`
	Purity        string  `json:"purity,omitempty"`
	Category      string  `json:"category,omitempty"`
	SubCategory   string  `json:"sub_category,omitempty"`
	GrossWeight   float64 `json:"gross_weight,omitempty"`
	StoneWeight   float64 `json:"stone_weight,omitempty"`
	StonePrice    float64 `json:"stone_price,omitempty"`
	MakingCharges float64 `json:"making_charges,omitempty"`
	Rate          float64 `json:"rate,omitempty"`
	TaxPercent    float64 `json:"tax_percent,omitempty"`
	TaxAmount     float64 `json:"tax_amount,omitempty"`
	TotalAmount   float64 `json:"total_amount,omitempty"`
	NetAmount     float64 `json:"net_amount,omitempty"`
	Qty           int     `json:"qty,omitempty"`
}

func (r SubmitEstimateRequest) details() estimate.Details {
	return estimate.Details{
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		MetalType:     r.MetalType,
		DesignName:    r.DesignName,
		Purity:        r.Purity,
		Category:      r.Category,
		SubCategory:   r.SubCategory,
		GrossWeight:   r.GrossWeight,
		StoneWeight:   r.StoneWeight,
		StonePrice:    r.StonePrice,
		MakingCharges: r.MakingCharges,
		Rate:          r.Rate,
		TaxPercent:    r.TaxPercent,
		TaxAmount:     r.TaxAmount,
		TotalAmount:   r.TotalAmount,
		NetAmount:     r.NetAmount,
		Qty:           r.Qty,
	}
}

// ChangeEstimateStatusRequest is the body of PUT /update/estimate-status/:key.
type ChangeEstimateStatusRequest struct {
	EstimateStatus    string `json:"estimate_status"`
	CustomerAccepting bool   `json:"customer_accepted,omitempty"`
}

// EstimateStatusResponse is returned by the submission and status-change
// endpoints. The degraded flag marks an order number minted by the
// timestamp fallback so the caller can surface it for reconciliation.
type EstimateStatusResponse struct {
	EstimateID         int64       `json:"estimate_id"`
	EstimateNumber     string      `json:"estimate_number"`
	EstimateStatus     string      `json:"estimate_status"`
	OrderNumber        *string     `json:"order_number"`
	OrderDate          *types.Date `json:"order_date"`
	DegradedAllocation bool        `json:"degraded_allocation,omitempty"`
}

func estimateStatusResponseFromResult(result commands.EstimateResult) EstimateStatusResponse {
	return EstimateStatusResponse{
		EstimateID:         result.EstimateID,
		EstimateNumber:     result.EstimateNumber,
		EstimateStatus:     result.Status.String(),
		OrderNumber:        result.OrderNumber,
		OrderDate:          optionalDate(result.OrderDate),
		DegradedAllocation: result.DegradedAllocation,
	}
}

// EstimateResponse is the read-model shape served by the listing and detail
// endpoints.
type EstimateResponse struct {
	EstimateID       int64       `json:"estimate_id"`
	EstimateNumber   string      `json:"estimate_number"`
	Date             types.Date  `json:"date"`
	SourceBy         string      `json:"source_by"`
	EstimateStatus   string      `json:"estimate_status"`
	OrderNumber      *string     `json:"order_number"`
	OrderDate        *types.Date `json:"order_date"`
	CustomerAccepted bool        `json:"customer_accepted"`

	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	MetalType     string  `json:"metal_type"`
	DesignName    string  `json:"design_name"`
	Purity        string  `json:"purity"`
	Category      string  `json:"category"`
	SubCategory   string  `json:"sub_category"`
	GrossWeight   float64 `json:"gross_weight"`
	StoneWeight   float64 `json:"stone_weight"`
	StonePrice    float64 `json:"stone_price"`
	MakingCharges float64 `json:"making_charges"`
	Rate          float64 `json:"rate"`
	TaxPercent    float64 `json:"tax_percent"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	NetAmount     float64 `json:"net_amount"`
	Qty           int     `json:"qty"`
}

func estimateResponseFromView(view queries.EstimateView) EstimateResponse {
	return EstimateResponse{
		EstimateID:       view.EstimateID,
		EstimateNumber:   view.EstimateNumber,
		Date:             types.Date{Time: view.Date},
		SourceBy:         view.Source,
		EstimateStatus:   view.Status,
		OrderNumber:      view.OrderNumber,
		OrderDate:        optionalDate(view.OrderDate),
		CustomerAccepted: view.CustomerAccepted,
		ProductID:        view.ProductID,
		ProductName:      view.ProductName,
		MetalType:        view.MetalType,
		DesignName:       view.DesignName,
		Purity:           view.Purity,
		Category:         view.Category,
		SubCategory:      view.SubCategory,
		GrossWeight:      view.GrossWeight,
		StoneWeight:      view.StoneWeight,
		StonePrice:       view.StonePrice,
		MakingCharges:    view.MakingCharges,
		Rate:             view.Rate,
		TaxPercent:       view.TaxPercent,
		TaxAmount:        view.TaxAmount,
		TotalAmount:      view.TotalAmount,
		NetAmount:        view.NetAmount,
		Qty:              view.Qty,
	}
}

// NextOrderNumberResponse is the body of GET /lastOrderNumber. The value is
// advisory only, nothing is reserved.
type NextOrderNumberResponse struct {
	OrderNumber string `json:"order_number"`
	Degraded    bool   `json:"degraded,omitempty"`
}

// UpdateRatesRequest is the body of POST /rates/update. The date, the 22ct
// gold rate and the silver rate are required; a second publication for the
// same day replaces the first.
type UpdateRatesRequest struct {
	Date       types.Date `json:"date"`
	TimeOfDay  string     `json:"time_of_day,omitempty"`
	Rate16Crt  float64    `json:"rate16crt,omitempty"`
	Rate18Crt  float64    `json:"rate18crt,omitempty"`
	Rate22Crt  float64    `json:"rate22crt"`
	Rate24Crt  float64    `json:"rate24crt,omitempty"`
	SilverRate float64    `json:"silver_rate"`
}

// RateResponse is the rate-snapshot shape served by the rate endpoints.
type RateResponse struct {
	Date       types.Date `json:"date"`
	TimeOfDay  string     `json:"time_of_day"`
	Rate16Crt  float64    `json:"rate16crt"`
	Rate18Crt  float64    `json:"rate18crt"`
	Rate22Crt  float64    `json:"rate22crt"`
	Rate24Crt  float64    `json:"rate24crt"`
	SilverRate float64    `json:"silver_rate"`
}

func rateResponseFromView(view queries.RateView) RateResponse {
	return RateResponse{
		Date:       types.Date{Time: view.Date},
		TimeOfDay:  view.TimeOfDay,
		Rate16Crt:  view.Gold16,
		Rate18Crt:  view.Gold18,
		Rate22Crt:  view.Gold22,
		Rate24Crt:  view.Gold24,
		SilverRate: view.Silver,
	}
}

func optionalDate(t *time.Time) *types.Date {
	if t == nil {
		return nil
	}
	return &types.Date{Time: *t}
}
