package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"sales_contract/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

const contractNoMetadataKey = "contract_no"

// paymentCreator is the part of the SDK payment client used for deposits.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway charges contract deposits through Mercado Pago.
// In mock mode no request leaves the process and every charge is approved.
type MercadoPagoGateway struct {
	client   paymentCreator
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if IsMockEnabled() {
		log.Printf("[deposit][gateway] simulated charges enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago config: %w", err)
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

// MockMode reports whether charges are simulated.
func (g *MercadoPagoGateway) MockMode() bool {
	return g != nil && g.mockMode
}

// CreatePayment submits one deposit charge. The returned id and status are
// the provider's; the raw response is kept on the deposit charge record.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if !g.MockMode() && (g == nil || g.client == nil) {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	req, err := depositRequest(requestPayload)
	if err != nil {
		log.Printf("[deposit][gateway] rejected payload len=%d err=%v", len(requestPayload), err)
		return "", "", nil, err
	}

	var resp *payment.Response
	if g.MockMode() {
		resp = g.simulate(req)
	} else {
		resp, err = g.client.Create(ctx, req)
		if err != nil {
			log.Printf("[deposit][gateway] provider refused contract_no=%s amount=%.0f err=%v", req.ExternalReference, req.TransactionAmount, err)
			return "", "", nil, err
		}
	}
	return chargeResult(resp)
}

// depositRequest decodes the charge payload. The contract number is copied
// into metadata so provider-side searches can find the charge.
func depositRequest(payload json.RawMessage) (payment.Request, error) {
	var req payment.Request
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return payment.Request{}, fmt.Errorf("decode deposit charge: %w", err)
		}
	}
	if req.ExternalReference != "" {
		if req.Metadata == nil {
			req.Metadata = map[string]any{}
		}
		req.Metadata[contractNoMetadataKey] = req.ExternalReference
	}
	if req.PaymentMethodID != "" && req.Installments == 0 {
		req.Installments = 1
	}
	return req, nil
}

// simulate builds the response an approved charge would return.
func (g *MercadoPagoGateway) simulate(req payment.Request) *payment.Response {
	at := g.now().UTC()
	return &payment.Response{
		ID:                int(at.UnixNano()),
		Status:            "approved",
		StatusDetail:      "accredited",
		TransactionAmount: req.TransactionAmount,
		ExternalReference: req.ExternalReference,
		Description:       req.Description,
		PaymentMethodID:   req.PaymentMethodID,
		Installments:      req.Installments,
		Metadata:          req.Metadata,
		DateCreated:       at,
		DateApproved:      at,
		DateLastUpdated:   at,
	}
}

func chargeResult(resp *payment.Response) (string, string, json.RawMessage, error) {
	if resp == nil {
		return "", "", nil, errors.New("mercado pago returned an empty payment")
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("encode provider payment: %w", err)
	}
	id := strconv.Itoa(resp.ID)
	log.Printf("[deposit][gateway] charge recorded provider_id=%s status=%s detail=%s contract_no=%s", id, resp.Status, resp.StatusDetail, resp.ExternalReference)
	return id, resp.Status, raw, nil
}

// IsMockEnabled reads PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
