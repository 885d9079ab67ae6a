package response

import (
	"time"

	"sales_contract/internal/domain/entities"
)

type DepositChargeResponse struct {
	ID         string    `json:"id"`
	ContractID string    `json:"contract_id"`
	ContractNo string    `json:"contract_no"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositCharge(c entities.DepositCharge) DepositChargeResponse {
	return DepositChargeResponse{
		ID:                 c.ID,
		ContractID:         c.ContractID,
		ContractNo:         c.ContractNo,
		Amount:             c.Amount,
		Date:               c.Date,
		Status:             string(c.Status),
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
		ProviderPayload:    c.ProviderPayload,
	}
}

func FromDepositCharges(cs []entities.DepositCharge) []DepositChargeResponse {
	out := make([]DepositChargeResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromDepositCharge(c))
	}
	return out
}
