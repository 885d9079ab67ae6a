package response

import (
	"time"

	"sales_contract/internal/domain/entities"
)

type EstimateResponse struct {
	EstimateNo       string             `json:"estimate_no"`
	CustomerName     string             `json:"customer_name"`
	Contact          string             `json:"contact"`
	Address          string             `json:"address"`
	ProjectName      string             `json:"project_name"`
	ProjectType      string             `json:"project_type"`
	Rows             []LineItemResponse `json:"rows"`
	TotalAmount      float64            `json:"total_amount"`
	DiscountedAmount float64            `json:"discounted_amount,omitempty"`
	Status           string             `json:"status"`
	IsFinal          bool               `json:"is_final"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		EstimateNo:       e.EstimateNo,
		CustomerName:     e.CustomerName,
		Contact:          e.Contact,
		Address:          e.Address,
		ProjectName:      e.ProjectName,
		ProjectType:      e.ProjectType,
		Rows:             FromLineItems(e.Rows),
		TotalAmount:      e.TotalAmount,
		DiscountedAmount: e.DiscountedAmount,
		Status:           string(e.Status),
		IsFinal:          e.IsFinalVariant(),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}
