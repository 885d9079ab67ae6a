package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sales_contract/internal/adapter/http/dto/request"
	response "sales_contract/internal/adapter/http/dto/response"
	"sales_contract/internal/usecase"
	"sales_contract/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkflowPayload = pkg.NewDomainErrorSimple("INVALID_WORKFLOW_INPUT", "Invalid workflow payload", http.StatusBadRequest)
)

// WorkflowHandler drives contract creation: payment terms, agreement, finalize.
type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// StartWorkflow godoc
// @Summary  Start contract creation from an approved estimate
// @Tags     workflows
// @Accept   json
// @Produce  json
// @Param    body  body  request.WorkflowStartRequest  true  "estimate number"
// @Success  201  {object}  response.WorkflowResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /workflows [post]
func (h *WorkflowHandler) StartWorkflow(c *gin.Context) {
	var payload request.WorkflowStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Start(c.Request.Context(), payload.EstimateNo)
	if err != nil {
		log.Printf("[workflow][handler] start failed estimate_no=%s err=%v", payload.EstimateNo, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkflowSession(s))
}

// GetWorkflow godoc
// @Summary  Get a workflow session
// @Tags     workflows
// @Produce  json
// @Param    id  path  string  true  "session id"
// @Success  200  {object}  response.WorkflowResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /workflows/{id} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respondSession(c, s, err)
}

// SubmitPayment godoc
// @Summary  Submit payment terms
// @Description Rejected amounts keep the previous value and are listed in issues.
// @Tags     workflows
// @Accept   json
// @Produce  json
// @Param    id    path  string                          true  "session id"
// @Param    body  body  request.WorkflowPaymentRequest  true  "payment form"
// @Success  200  {object}  response.WorkflowResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /workflows/{id}/payment [put]
func (h *WorkflowHandler) SubmitPayment(c *gin.Context) {
	var payload request.WorkflowPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	s, err := h.usecase.SubmitPayment(c.Request.Context(), c.Param("id"), payload.ToInput())
	h.respondSession(c, s, err)
}

// Back godoc
// @Summary  Return to the payment step
// @Tags     workflows
// @Produce  json
// @Param    id  path  string  true  "session id"
// @Success  200  {object}  response.WorkflowResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /workflows/{id}/back [post]
func (h *WorkflowHandler) Back(c *gin.Context) {
	s, err := h.usecase.Back(c.Request.Context(), c.Param("id"))
	h.respondSession(c, s, err)
}

// SubmitAgreement godoc
// @Summary  Record the customer agreement
// @Tags     workflows
// @Accept   json
// @Produce  json
// @Param    id    path  string                            true  "session id"
// @Param    body  body  request.WorkflowAgreementRequest  true  "signature or checkbox"
// @Success  200  {object}  response.WorkflowResponse
// @Failure  422  {object}  pkg.HTTPError
// @Router   /workflows/{id}/agreement [put]
func (h *WorkflowHandler) SubmitAgreement(c *gin.Context) {
	var payload request.WorkflowAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}
	s, err := h.usecase.SubmitAgreement(c.Request.Context(), c.Param("id"), payload.AgreementMethod(), payload.Signature)
	h.respondSession(c, s, err)
}

// Finalize godoc
// @Summary  Create the contract
// @Description Schedule failures are returned as warnings; the contract is kept.
// @Tags     workflows
// @Accept   json
// @Produce  json
// @Param    id    path  string                           true   "session id"
// @Param    body  body  request.WorkflowFinalizeRequest  false  "reschedule confirmation"
// @Success  201  {object}  response.ContractMutationResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /workflows/{id}/finalize [post]
func (h *WorkflowHandler) Finalize(c *gin.Context) {
	id := c.Param("id")
	var payload request.WorkflowFinalizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
			return
		}
	}

	res, err := h.usecase.Finalize(c.Request.Context(), id, confirmerFor(payload.ConfirmReschedule))
	if err != nil {
		log.Printf("[workflow][handler] finalize failed id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] finalize success id=%s contract_no=%s warnings=%d", id, res.Contract.ContractNo, len(res.Warnings))
	c.JSON(http.StatusCreated, response.NewContractMutationResponse(res.Contract, res.Schedule, res.Warnings))
}

// DiscardWorkflow godoc
// @Summary  Abandon a workflow session
// @Tags     workflows
// @Param    id  path  string  true  "session id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /workflows/{id} [delete]
func (h *WorkflowHandler) DiscardWorkflow(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkflowHandler) respondSession(c *gin.Context, s usecase.WorkflowSession, err error) {
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflowSession(s))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", validationMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return clientError("WORKFLOW_NOT_FOUND", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return clientError("ESTIMATE_NOT_FOUND", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrWorkflowClosed):
		return clientError("INVALID_TRANSITION", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAgreement):
		return clientError("INVALID_AGREEMENT", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIdentifierCollision):
		return clientError("IDENTIFIER_COLLISION", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
