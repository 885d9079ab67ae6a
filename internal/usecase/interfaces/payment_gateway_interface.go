package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges a card through the payment provider (Mercado Pago).
//
// Deposit charges keep the provider response for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
