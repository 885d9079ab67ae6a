package entities

import (
	"encoding/json"
	"time"
)

// DepositChargeStatus represents the payment provider outcome for a deposit.
type DepositChargeStatus string

const (
	DepositChargeStatusPending  DepositChargeStatus = "pending"
	DepositChargeStatusApproved DepositChargeStatus = "approved"
	DepositChargeStatusRejected DepositChargeStatus = "rejected"
)

// DepositCharge is a card charge of a contract's deposit amount.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (contract_id-index): contract_id
//
// ProviderPayloadRaw keeps the provider response for traceability; ProviderPayload
// is the parsed form used for debugging.
type DepositCharge struct {
	ID         string              `json:"id"`
	ContractID string              `json:"contract_id"`
	ContractNo string              `json:"contract_no"`
	Amount     float64             `json:"amount"`
	Date       time.Time           `json:"date"`
	Status     DepositChargeStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
