package handlers

import (
	"errors"
	"net/http"

	request "sales_contract/internal/adapter/http/dto/request"
	response "sales_contract/internal/adapter/http/dto/response"
	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase"
	"sales_contract/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTemplatePayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATE_INPUT", "Invalid template payload", http.StatusBadRequest)
)

// TemplateHandler manages contract templates and the company settings
// printed on documents.
type TemplateHandler struct {
	usecase usecase.ITemplateUseCase
}

func NewTemplateHandler(uc usecase.ITemplateUseCase) *TemplateHandler {
	return &TemplateHandler{usecase: uc}
}

// ListTemplates godoc
// @Summary  List templates (built-in first, then custom by key)
// @Tags     templates
// @Produce  json
// @Success  200  {array}  response.TemplateResponse
// @Router   /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	list, err := h.usecase.ListTemplates(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(list))
}

// GetSelectedTemplate godoc
// @Summary  Get the selected template
// @Tags     templates
// @Produce  json
// @Success  200  {object}  response.TemplateResponse
// @Router   /templates/selected [get]
func (h *TemplateHandler) GetSelectedTemplate(c *gin.Context) {
	t, err := h.usecase.SelectedTemplate(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(t))
}

// SelectTemplate godoc
// @Summary  Select the template used by default
// @Tags     templates
// @Accept   json
// @Produce  json
// @Param    body  body  request.TemplateSelectRequest  true  "template key"
// @Success  200  {object}  response.TemplateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /templates/selected [put]
func (h *TemplateHandler) SelectTemplate(c *gin.Context) {
	var payload request.TemplateSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}
	if err := h.usecase.SelectTemplate(c.Request.Context(), payload.Key); err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.GetSelectedTemplate(c)
}

// UpdateTemplate godoc
// @Summary  Save a template's field list and section toggles
// @Tags     templates
// @Accept   json
// @Produce  json
// @Param    key   path  string                         true  "template key"
// @Param    body  body  request.TemplateUpdateRequest  true  "template"
// @Success  200  {object}  response.TemplateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /templates/{key} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var payload request.TemplateUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}
	t, err := h.usecase.UpdateTemplate(c.Request.Context(), c.Param("key"), payload.ToEntity())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplate(t))
}

// GetCompanyProfile godoc
// @Summary  Get the company profile
// @Tags     settings
// @Produce  json
// @Success  200  {object}  response.CompanyProfileResponse
// @Router   /settings/company [get]
func (h *TemplateHandler) GetCompanyProfile(c *gin.Context) {
	p, err := h.usecase.GetCompanyProfile(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyProfile(p))
}

// UpdateCompanyProfile godoc
// @Summary  Replace the company profile
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    body  body  request.CompanyProfileRequest  true  "profile"
// @Success  200  {object}  response.CompanyProfileResponse
// @Router   /settings/company [put]
func (h *TemplateHandler) UpdateCompanyProfile(c *gin.Context) {
	var payload request.CompanyProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}
	p, err := h.usecase.UpdateCompanyProfile(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyProfile(p))
}

// GetNoticeText godoc
// @Summary  Get the notice printed under the item table
// @Tags     settings
// @Produce  json
// @Success  200  {object}  response.NoticeTextResponse
// @Router   /settings/notice [get]
func (h *TemplateHandler) GetNoticeText(c *gin.Context) {
	text, err := h.usecase.GetNoticeText(c.Request.Context())
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NoticeTextResponse{Text: string(text)})
}

// UpdateNoticeText godoc
// @Summary  Replace the notice text
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    body  body  request.NoticeTextRequest  true  "notice"
// @Success  200  {object}  response.NoticeTextResponse
// @Router   /settings/notice [put]
func (h *TemplateHandler) UpdateNoticeText(c *gin.Context) {
	var payload request.NoticeTextRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatePayload.HTTPStatus, errInvalidTemplatePayload.ToHTTPError())
		return
	}
	text, err := h.usecase.UpdateNoticeText(c.Request.Context(), entities.NoticeText(payload.Text))
	if err != nil {
		appErr := mapTemplateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NoticeTextResponse{Text: string(text)})
}

func mapTemplateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", validationMessage(err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return clientError("TEMPLATE_NOT_FOUND", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
