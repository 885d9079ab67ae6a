package request

import "encoding/json"

// DepositChargeRequest is the payload for charging a contract deposit.
//
// `provider_payload` is forwarded to Mercado Pago as-is, except for the
// amount and external reference which always come from the contract. A body
// without the envelope is treated as the provider payload itself.
type DepositChargeRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload" swaggertype:"object"`
}
