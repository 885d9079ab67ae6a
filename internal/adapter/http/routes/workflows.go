package routes

import (
	"sales_contract/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWorkflows = "/workflows"

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.WorkflowHandler) {
	workflows := rg.Group(PathWorkflows)
	{
		workflows.POST("", h.StartWorkflow)
		workflows.GET("/:id", h.GetWorkflow)
		workflows.DELETE("/:id", h.DiscardWorkflow)
		workflows.PUT("/:id/payment", h.SubmitPayment)
		workflows.POST("/:id/back", h.Back)
		workflows.PUT("/:id/agreement", h.SubmitAgreement)
		workflows.POST("/:id/finalize", h.Finalize)
	}
}
