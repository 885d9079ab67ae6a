package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"
)

var (
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
)

// IDepositChargeUseCase charges a contract's deposit by card.
type IDepositChargeUseCase interface {
	Charge(ctx context.Context, contractID string, providerPayload json.RawMessage) (entities.DepositCharge, error)
	GetByID(ctx context.Context, id string) (entities.DepositCharge, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.DepositCharge, error)
}

type DepositChargeUseCase struct {
	repo      interfaces.IDepositChargeRepository
	contracts interfaces.IContractRepository
	gateway   interfaces.IPaymentGateway
	lenient   bool
	now       func() time.Time
}

var _ IDepositChargeUseCase = (*DepositChargeUseCase)(nil)

// NewDepositChargeUseCase builds the use case. lenient relaxes payload checks
// for the mock gateway, where the card fields are never sent anywhere.
func NewDepositChargeUseCase(repo interfaces.IDepositChargeRepository, contracts interfaces.IContractRepository, gateway interfaces.IPaymentGateway, lenient bool) *DepositChargeUseCase {
	return &DepositChargeUseCase{repo: repo, contracts: contracts, gateway: gateway, lenient: lenient, now: defaultClock}
}

// Charge loads the contract, pins the amount to its deposit and the
// external reference to its contract number, and records the provider result.
func (u *DepositChargeUseCase) Charge(ctx context.Context, contractID string, providerPayload json.RawMessage) (entities.DepositCharge, error) {
	contractID = strings.TrimSpace(contractID)
	log.Printf("[deposit][usecase] charge start contract_id=%q payload_len=%d", contractID, len(providerPayload))
	if contractID == "" {
		return entities.DepositCharge{}, opErr("charge deposit", "", ErrValidation)
	}
	if u.gateway == nil {
		return entities.DepositCharge{}, opErr("charge deposit", contractID, ErrPaymentGatewayUnavailable)
	}

	req := map[string]any{}
	if len(providerPayload) > 0 {
		if err := json.Unmarshal(providerPayload, &req); err != nil {
			if !u.lenient {
				log.Printf("[deposit][usecase] payload not json contract_id=%s err=%v", contractID, err)
				return entities.DepositCharge{}, opErr("charge deposit", contractID, ErrInvalidProviderPayload)
			}
			req = map[string]any{}
		}
		if req == nil {
			// "null" decodes to a nil map
			req = map[string]any{}
		}
	} else if !u.lenient {
		return entities.DepositCharge{}, opErr("charge deposit", contractID, ErrInvalidProviderPayload)
	}

	c, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return entities.DepositCharge{}, opErr("charge deposit", contractID, err)
	}
	if c.ID == "" {
		return entities.DepositCharge{}, opErr("charge deposit", contractID, ErrContractNotFound)
	}
	if c.DepositAmount <= 0 {
		log.Printf("[deposit][usecase] no deposit to charge contract_no=%s deposit=%.0f", c.ContractNo, c.DepositAmount)
		return entities.DepositCharge{}, opErr("charge deposit", contractID, ErrInvalidDeposit)
	}

	if !u.lenient {
		if !hasNonEmptyString(req, "payment_method_id") {
			return entities.DepositCharge{}, opErr("charge deposit", contractID, withCause(ErrInvalidProviderPayload, errors.New("payment_method_id is required")))
		}
		ensurePayer(req)
		if !hasPayer(req) {
			return entities.DepositCharge{}, opErr("charge deposit", contractID, withCause(ErrInvalidProviderPayload, errors.New("payer email or id is required")))
		}
	}
	req["transaction_amount"] = c.DepositAmount
	req["external_reference"] = c.ContractNo
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("계약금 %s", c.ContractNo)
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return entities.DepositCharge{}, opErr("charge deposit", contractID, err)
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[deposit][usecase] gateway failed contract_no=%s err=%v", c.ContractNo, err)
		return entities.DepositCharge{}, opErr("charge deposit", contractID, classifyGatewayError(err))
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed contract_no=%s err=%v", c.ContractNo, err)
	}

	charge := entities.DepositCharge{
		ID:                 providerID,
		ContractID:         c.ID,
		ContractNo:         c.ContractNo,
		Amount:             c.DepositAmount,
		Date:               u.now(),
		Status:             depositStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, charge)
	if err != nil {
		log.Printf("[deposit][usecase] repository create failed contract_no=%s charge_id=%s err=%v", c.ContractNo, charge.ID, err)
		return entities.DepositCharge{}, opErr("charge deposit", contractID, err)
	}
	log.Printf("[deposit][usecase] charge success contract_no=%s charge_id=%s status=%s amount=%.0f", c.ContractNo, created.ID, created.Status, created.Amount)
	return created, nil
}

func (u *DepositChargeUseCase) GetByID(ctx context.Context, id string) (entities.DepositCharge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositCharge{}, opErr("get deposit charge", "", ErrValidation)
	}
	ch, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositCharge{}, opErr("get deposit charge", id, err)
	}
	if ch.ID == "" {
		return entities.DepositCharge{}, opErr("get deposit charge", id, ErrDepositChargeNotFound)
	}
	return ch, nil
}

func (u *DepositChargeUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.DepositCharge, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, opErr("list deposit charges", "", ErrValidation)
	}
	out, err := u.repo.ListByContractID(ctx, contractID)
	if err != nil {
		return nil, opErr("list deposit charges", contractID, err)
	}
	return out, nil
}

func depositStatus(providerStatus string) entities.DepositChargeStatus {
	switch strings.ToLower(providerStatus) {
	case "approved", "authorized":
		return entities.DepositChargeStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.DepositChargeStatusRejected
	}
	return entities.DepositChargeStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return withCause(ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return withCause(ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	if hasNonEmptyString(payer, "email") {
		return true
	}
	id := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	return payer["id"] != nil && id != ""
}

// ensurePayer fills the sandbox payer email when the request carries no payer identity.
func ensurePayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayer(m) {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	}
}
