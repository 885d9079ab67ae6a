package response

import (
	"sales_contract/internal/domain/workflow"
	"sales_contract/internal/usecase"
)

type PaymentResponse struct {
	TotalAmount      float64 `json:"total_amount"`
	DiscountedAmount float64 `json:"discounted_amount"`
	DepositAmount    float64 `json:"deposit_amount"`
	RemainingAmount  float64 `json:"remaining_amount"`
	PaymentMethod    string  `json:"payment_method"`
	PaymentDate      string  `json:"payment_date"`
	MeasurementDate  string  `json:"measurement_date,omitempty"`
	ConstructionDate string  `json:"construction_date,omitempty"`
	Memo             string  `json:"memo,omitempty"`
}

type WorkflowResponse struct {
	ID        string            `json:"id"`
	Stage     string            `json:"stage"`
	Closed    bool              `json:"closed"`
	Estimate  EstimateResponse  `json:"estimate"`
	Payment   PaymentResponse   `json:"payment"`
	Agreement AgreementResponse `json:"agreement"`
	Issues    []workflow.Issue  `json:"issues"`
}

func FromWorkflowSession(s usecase.WorkflowSession) WorkflowResponse {
	issues := s.Issues
	if issues == nil {
		issues = []workflow.Issue{}
	}
	p := s.Payment
	return WorkflowResponse{
		ID:       s.ID,
		Stage:    string(s.Stage),
		Closed:   s.Closed,
		Estimate: FromEstimate(s.Estimate),
		Payment: PaymentResponse{
			TotalAmount:      p.TotalAmount,
			DiscountedAmount: p.DiscountedAmount,
			DepositAmount:    p.DepositAmount,
			RemainingAmount:  p.RemainingAmount,
			PaymentMethod:    string(p.PaymentMethod),
			PaymentDate:      p.PaymentDate,
			MeasurementDate:  p.MeasurementDate,
			ConstructionDate: p.ConstructionDate,
			Memo:             p.Memo,
		},
		Agreement: AgreementResponse{
			Agreed:    s.Agreement.Agreed,
			Method:    string(s.Agreement.Method),
			Signature: s.Agreement.Signature,
			AgreedAt:  s.Agreement.AgreedAt,
		},
		Issues: issues,
	}
}
