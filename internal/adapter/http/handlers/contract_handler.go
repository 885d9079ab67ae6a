package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "sales_contract/internal/adapter/http/dto/request"
	response "sales_contract/internal/adapter/http/dto/response"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase"
	"sales_contract/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContractHandler serves stored contracts: listing, edits with schedule
// reconciliation, deletion and document rendering.
type ContractHandler struct {
	contracts usecase.IContractUseCase
	schedule  usecase.IScheduleUseCase
	templates usecase.ITemplateUseCase
}

func NewContractHandler(contracts usecase.IContractUseCase, schedule usecase.IScheduleUseCase, templates usecase.ITemplateUseCase) *ContractHandler {
	return &ContractHandler{contracts: contracts, schedule: schedule, templates: templates}
}

// ListContracts godoc
// @Summary  List contracts
// @Tags     contracts
// @Produce  json
// @Param    search  query  string  false  "matches customer name, contract no or project name"
// @Param    status  query  string  false  "status filter; 'all' or empty disables it"
// @Success  200  {array}  response.ContractResponse
// @Router   /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	list, err := h.contracts.ListFiltered(c.Request.Context(), c.Query("search"), c.Query("status"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(list))
}

// GetContract godoc
// @Summary  Get a contract
// @Tags     contracts
// @Produce  json
// @Param    id  path  string  true  "contract id"
// @Success  200  {object}  response.ContractResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.contracts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetContractByEstimate godoc
// @Summary  Find the contract of an estimate
// @Tags     contracts
// @Produce  json
// @Param    estimate_no  path  string  true  "estimate number; final variants resolve to their origin"
// @Success  200  {object}  response.ContractResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/by-estimate/{estimate_no} [get]
func (h *ContractHandler) GetContractByEstimate(c *gin.Context) {
	contract, err := h.contracts.FindByEstimate(c.Request.Context(), c.Param("estimate_no"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// UpdateContract godoc
// @Summary  Edit a contract and reconcile its measurement appointment
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    id    path  string                         true  "contract id"
// @Param    body  body  request.ContractUpdateRequest  true  "fields to change"
// @Success  200  {object}  response.ContractMutationResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id} [patch]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id := c.Param("id")
	var payload request.ContractUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[contract][handler] invalid payload id=%s err=%v", id, err)
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	updated, err := h.contracts.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		log.Printf("[contract][handler] update failed id=%s err=%v", id, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, warnings := h.sync(c, updated, payload.ConfirmReschedule)
	c.JSON(http.StatusOK, response.NewContractMutationResponse(updated, outcome, warnings))
}

// SyncSchedule godoc
// @Summary  Re-run schedule reconciliation for a contract
// @Tags     contracts
// @Accept   json
// @Produce  json
// @Param    id    path  string                       true   "contract id"
// @Param    body  body  request.ScheduleSyncRequest  false  "reschedule confirmation"
// @Success  200  {object}  response.ContractMutationResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id}/schedule-sync [post]
func (h *ContractHandler) SyncSchedule(c *gin.Context) {
	var payload request.ScheduleSyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
			return
		}
	}

	contract, err := h.contracts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, warnings := h.sync(c, contract, payload.ConfirmReschedule)
	c.JSON(http.StatusOK, response.NewContractMutationResponse(contract, outcome, warnings))
}

// DeleteContract godoc
// @Summary  Delete a contract
// @Tags     contracts
// @Param    id  path  string  true  "contract id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if err := h.contracts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RenderContract godoc
// @Summary  Render a contract document
// @Tags     contracts
// @Produce  json
// @Param    id        path   string  true   "contract id"
// @Param    template  query  string  false  "template key; defaults to the selected template"
// @Success  200  {object}  document.Document
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id}/document [get]
func (h *ContractHandler) RenderContract(c *gin.Context) {
	doc, err := h.templates.RenderContract(c.Request.Context(), c.Param("id"), c.Query("template"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// sync reconciles the schedule store. Failures come back as warnings only.
func (h *ContractHandler) sync(c *gin.Context, contract entities.Contract, confirm bool) (*usecase.SyncOutcome, []string) {
	if h.schedule == nil {
		return nil, nil
	}
	out, err := h.schedule.Sync(c.Request.Context(), contract, confirmerFor(confirm))
	if err != nil {
		log.Printf("[contract][handler] schedule sync warning contract_no=%s err=%v", contract.ContractNo, err)
		return nil, []string{err.Error()}
	}
	if out.Action == usecase.SyncActionSkipped {
		return nil, nil
	}
	return &out, nil
}

func confirmerFor(confirm bool) usecase.Confirmer {
	if confirm {
		return usecase.ConfirmAll
	}
	return usecase.DeclineReschedule
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", validationMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return clientError("CONTRACT_NOT_FOUND", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return clientError("TEMPLATE_NOT_FOUND", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return clientError("ESTIMATE_NOT_FOUND", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrIdentifierCollision):
		return clientError("IDENTIFIER_COLLISION", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// clientError is for 4xx only: the message carries the operation and id.
func clientError(code string, err error, status int) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, status)
}

// validationMessage exposes the part of a validation error after the
// sentinel, e.g. "unknown status \"x\"".
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, usecase.ErrValidation.Error()+": "); i >= 0 {
		return "Invalid request: " + msg[i+len(usecase.ErrValidation.Error())+2:]
	}
	return "Invalid request: " + msg
}
