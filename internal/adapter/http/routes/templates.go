package routes

import (
	"sales_contract/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTemplates = "/templates"
	PathSettings  = "/settings"
)

func addTemplateRoutes(rg *gin.RouterGroup, h *handlers.TemplateHandler) {
	templates := rg.Group(PathTemplates)
	{
		templates.GET("", h.ListTemplates)
		templates.GET("/selected", h.GetSelectedTemplate)
		templates.PUT("/selected", h.SelectTemplate)
		templates.PUT("/:key", h.UpdateTemplate)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/company", h.GetCompanyProfile)
		settings.PUT("/company", h.UpdateCompanyProfile)
		settings.GET("/notice", h.GetNoticeText)
		settings.PUT("/notice", h.UpdateNoticeText)
	}
}
