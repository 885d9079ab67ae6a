package request

import (
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase"
)

// ContractUpdateRequest is a partial edit. Omitted fields are left alone;
// remaining_amount is never accepted and is always recomputed.
type ContractUpdateRequest struct {
	ContractDate     *string       `json:"contract_date"`
	CustomerName     *string       `json:"customer_name"`
	Contact          *string       `json:"contact"`
	Address          *string       `json:"address"`
	ProjectName      *string       `json:"project_name"`
	ProjectType      *string       `json:"project_type"`
	Status           *string       `json:"status"`
	TotalAmount      *LenientFloat `json:"total_amount" swaggertype:"number"`
	DiscountedAmount *LenientFloat `json:"discounted_amount" swaggertype:"number"`
	DepositAmount    *LenientFloat `json:"deposit_amount" swaggertype:"number"`
	PaymentMethod    *string       `json:"payment_method"`
	PaymentDate      *string       `json:"payment_date"`
	MeasurementDate  *string       `json:"measurement_date"`
	ConstructionDate *string       `json:"construction_date"`
	Memo             *string       `json:"memo"`

	// ConfirmReschedule allows moving an existing measurement appointment.
	ConfirmReschedule bool `json:"confirm_reschedule"`
}

func (r ContractUpdateRequest) ToPatch() usecase.ContractPatch {
	p := usecase.ContractPatch{
		ContractDate:     trimmedPtr(r.ContractDate),
		CustomerName:     r.CustomerName,
		Contact:          r.Contact,
		Address:          r.Address,
		ProjectName:      r.ProjectName,
		ProjectType:      r.ProjectType,
		TotalAmount:      r.TotalAmount.Ptr(),
		DiscountedAmount: r.DiscountedAmount.Ptr(),
		DepositAmount:    r.DepositAmount.Ptr(),
		PaymentDate:      trimmedPtr(r.PaymentDate),
		MeasurementDate:  trimmedPtr(r.MeasurementDate),
		ConstructionDate: trimmedPtr(r.ConstructionDate),
		Memo:             r.Memo,
	}
	if s := trimmedPtr(r.Status); s != nil {
		st := entities.ContractStatus(*s)
		p.Status = &st
	}
	if m := trimmedPtr(r.PaymentMethod); m != nil {
		pm := entities.PaymentMethod(*m)
		p.PaymentMethod = &pm
	}
	return p
}

// ScheduleSyncRequest triggers a manual reconciliation of one contract.
type ScheduleSyncRequest struct {
	ConfirmReschedule bool `json:"confirm_reschedule"`
}
