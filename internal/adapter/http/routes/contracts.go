package routes

import (
	"sales_contract/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts      = "/contracts"
	PathDepositCharges = "/deposit-charges"
)

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler, depositHandler *handlers.DepositChargeHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/by-estimate/:estimate_no", contractHandler.GetContractByEstimate)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.PATCH("/:id", contractHandler.UpdateContract)
		contracts.DELETE("/:id", contractHandler.DeleteContract)
		contracts.POST("/:id/schedule-sync", contractHandler.SyncSchedule)
		contracts.GET("/:id/document", contractHandler.RenderContract)

		contracts.POST("/:id/deposit-charges", depositHandler.ChargeDeposit)
		contracts.GET("/:id/deposit-charges", depositHandler.ListDepositCharges)
	}

	rg.GET(PathDepositCharges+"/:charge_id", depositHandler.GetDepositCharge)
}
