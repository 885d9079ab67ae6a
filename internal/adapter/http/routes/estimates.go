package routes

import (
	"sales_contract/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEstimates = "/estimates"

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		// Awaiting-contract queue.
		estimates.GET("/pending", h.ListPending)
		estimates.POST("/pending", h.EnqueueEstimate)
		estimates.GET("/pending/:estimate_no", h.GetPending)

		estimates.GET("/:estimate_no", h.GetEstimate)
	}
}
