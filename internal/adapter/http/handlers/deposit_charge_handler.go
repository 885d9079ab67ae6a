package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"

	response "sales_contract/internal/adapter/http/dto/response"
	"sales_contract/internal/usecase"
	"sales_contract/pkg"

	"github.com/gin-gonic/gin"
)

// DepositChargeHandler charges contract deposits by card.
type DepositChargeHandler struct {
	usecase  usecase.IDepositChargeUseCase
	mockMode bool
}

// NewDepositChargeHandler takes mockMode from the gateway; in mock mode an
// unreadable body falls back to an empty payload.
func NewDepositChargeHandler(uc usecase.IDepositChargeUseCase, mockMode bool) *DepositChargeHandler {
	return &DepositChargeHandler{usecase: uc, mockMode: mockMode}
}

// ChargeDeposit godoc
// @Summary  Charge a contract's deposit
// @Tags     deposit-charges
// @Accept   json
// @Produce  json
// @Param    id    path  string                        true  "contract id"
// @Param    body  body  request.DepositChargeRequest  true  "provider payload"
// @Success  200  {object}  response.DepositChargeResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Router   /contracts/{id}/deposit-charges [post]
func (h *DepositChargeHandler) ChargeDeposit(c *gin.Context) {
	contractID := c.Param("id")
	log.Printf("[deposit][handler] charge start contract_id=%s", contractID)
	payload, err := readProviderPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload contract_id=%s err=%v", contractID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload contract_id=%s err=%v", contractID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.Charge(c.Request.Context(), contractID, payload)
	if err != nil {
		log.Printf("[deposit][handler] charge failed contract_id=%s err=%v", contractID, err)
		appErr := mapDepositChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] charge success contract_id=%s charge_id=%s status=%s", contractID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositCharge(created))
}

// ListDepositCharges godoc
// @Summary  List deposit charges of a contract, newest first
// @Tags     deposit-charges
// @Produce  json
// @Param    id  path  string  true  "contract id"
// @Success  200  {array}  response.DepositChargeResponse
// @Router   /contracts/{id}/deposit-charges [get]
func (h *DepositChargeHandler) ListDepositCharges(c *gin.Context) {
	contractID := c.Param("id")
	charges, err := h.usecase.ListByContractID(c.Request.Context(), contractID)
	if err != nil {
		log.Printf("[deposit][handler] list failed contract_id=%s err=%v", contractID, err)
		appErr := mapDepositChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sort.SliceStable(charges, func(i, j int) bool { return charges[i].Date.After(charges[j].Date) })
	c.JSON(http.StatusOK, response.FromDepositCharges(charges))
}

// GetDepositCharge godoc
// @Summary  Get a deposit charge
// @Tags     deposit-charges
// @Produce  json
// @Param    charge_id  path  string  true  "provider payment id"
// @Success  200  {object}  response.DepositChargeResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /deposit-charges/{charge_id} [get]
func (h *DepositChargeHandler) GetDepositCharge(c *gin.Context) {
	charge, err := h.usecase.GetByID(c.Request.Context(), c.Param("charge_id"))
	if err != nil {
		appErr := mapDepositChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositCharge(charge))
}

// readProviderPayload accepts either {"provider_payload": {...}} or the
// provider payload itself.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return clientError("INVALID_REQUEST", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return clientError("PAYMENT_PROVIDER_UNAUTHORIZED", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrContractNotFound):
		return clientError("CONTRACT_NOT_FOUND", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDeposit):
		return clientError("INVALID_DEPOSIT", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDepositChargeNotFound):
		return clientError("DEPOSIT_CHARGE_NOT_FOUND", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
