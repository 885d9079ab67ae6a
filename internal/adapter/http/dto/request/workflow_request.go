package request

import (
	"strings"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/domain/workflow"
)

type WorkflowStartRequest struct {
	EstimateNo string `json:"estimate_no" binding:"required"`
}

// WorkflowPaymentRequest carries the payment form. Amounts may be numbers or
// strings; rejected values are reported back as issues.
type WorkflowPaymentRequest struct {
	DiscountedAmount FormValue `json:"discounted_amount" swaggertype:"string"`
	DepositAmount    FormValue `json:"deposit_amount" swaggertype:"string"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentDate      string    `json:"payment_date"`
	MeasurementDate  string    `json:"measurement_date"`
	ConstructionDate string    `json:"construction_date"`
	Memo             *string   `json:"memo"`
}

func (r WorkflowPaymentRequest) ToInput() workflow.PaymentInput {
	return workflow.PaymentInput{
		DiscountedAmount: strings.TrimSpace(string(r.DiscountedAmount)),
		DepositAmount:    strings.TrimSpace(string(r.DepositAmount)),
		PaymentMethod:    strings.TrimSpace(r.PaymentMethod),
		PaymentDate:      strings.TrimSpace(r.PaymentDate),
		MeasurementDate:  strings.TrimSpace(r.MeasurementDate),
		ConstructionDate: strings.TrimSpace(r.ConstructionDate),
		Memo:             r.Memo,
	}
}

type WorkflowAgreementRequest struct {
	Method    string `json:"method" binding:"required"`
	Signature string `json:"signature"`
}

func (r WorkflowAgreementRequest) AgreementMethod() entities.AgreementMethod {
	return entities.AgreementMethod(strings.TrimSpace(r.Method))
}

type WorkflowFinalizeRequest struct {
	ConfirmReschedule bool `json:"confirm_reschedule"`
}
