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
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler exposes approved estimates and the awaiting-contract queue.
type EstimateHandler struct {
	resolver usecase.IEstimateResolver
	usecase  usecase.IEstimateUseCase
}

func NewEstimateHandler(resolver usecase.IEstimateResolver, uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{resolver: resolver, usecase: uc}
}

// GetEstimate godoc
// @Summary  Resolve an estimate from the estimate store or the awaiting queue
// @Tags     estimates
// @Produce  json
// @Param    estimate_no  path  string  true  "estimate number"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/{estimate_no} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.resolver.Resolve(c.Request.Context(), c.Param("estimate_no"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ListPending godoc
// @Summary  List estimates awaiting a contract
// @Tags     estimates
// @Produce  json
// @Success  200  {array}  response.EstimateResponse
// @Router   /estimates/pending [get]
func (h *EstimateHandler) ListPending(c *gin.Context) {
	list, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetPending godoc
// @Summary  Get an estimate awaiting a contract
// @Tags     estimates
// @Produce  json
// @Param    estimate_no  path  string  true  "estimate number"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimates/pending/{estimate_no} [get]
func (h *EstimateHandler) GetPending(c *gin.Context) {
	e, err := h.usecase.GetPending(c.Request.Context(), c.Param("estimate_no"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// EnqueueEstimate godoc
// @Summary  Queue an approved estimate for contracting
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    body  body  request.EstimateEnqueueRequest  true  "estimate"
// @Success  201  {object}  response.EstimateResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /estimates/pending [post]
func (h *EstimateHandler) EnqueueEstimate(c *gin.Context) {
	var payload request.EstimateEnqueueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	e, err := h.usecase.Enqueue(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[estimate][handler] enqueue failed err=%v", err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(e))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", validationMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return clientError("ESTIMATE_NOT_FOUND", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrIdentifierCollision):
		return clientError("IDENTIFIER_COLLISION", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
