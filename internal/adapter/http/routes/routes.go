package routes

import (
	"log"
	"os"

	_ "sales_contract/docs" // generated by swag init
	"sales_contract/internal/adapter/http/handlers"
	repository2 "sales_contract/internal/adapter/persistence/repository"
	"sales_contract/internal/infrastructure/database"
	"sales_contract/internal/infrastructure/payments"
	"sales_contract/internal/infrastructure/schedule"
	"sales_contract/internal/job"
	"sales_contract/internal/usecase"
	"sales_contract/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Handlers bundles everything the /v1 group serves.
type Handlers struct {
	Contracts      *handlers.ContractHandler
	Workflows      *handlers.WorkflowHandler
	Templates      *handlers.TemplateHandler
	Estimates      *handlers.EstimateHandler
	DepositCharges *handlers.DepositChargeHandler
}

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	contractRepo := repository2.NewContractDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	pendingRepo := repository2.NewPendingEstimateDynamoRepository(ddb)
	templateRepo := repository2.NewTemplateDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	depositRepo := repository2.NewDepositChargeDynamoRepository(ddb)

	var scheduleStore interfaces.IScheduleStore
	scheduleClient, err := schedule.NewClientFromEnv()
	if err != nil {
		log.Printf("[schedule][routes] schedule store not configured: %v", err)
	} else {
		scheduleStore = scheduleClient
	}

	var paymentGateway interfaces.IPaymentGateway
	mockPayments := false
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[deposit][routes] Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
		mockPayments = mpGateway.MockMode()
	}

	resolver := usecase.NewEstimateResolver(estimateRepo, pendingRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, estimateRepo)
	scheduleUseCase := usecase.NewScheduleUseCase(scheduleStore, contractRepo, resolver)
	templateUseCase := usecase.NewTemplateUseCase(templateRepo, settingsRepo, contractRepo)
	workflowUseCase := usecase.NewWorkflowUseCase(resolver, contractUseCase, scheduleUseCase)
	estimateUseCase := usecase.NewEstimateUseCase(pendingRepo)
	depositUseCase := usecase.NewDepositChargeUseCase(depositRepo, contractRepo, paymentGateway, mockPayments)

	if scheduleStore != nil {
		if _, err := job.NewScheduleRetryJob(scheduleUseCase).Start(); err != nil {
			log.Printf("[schedule][routes] retry job not started: %v", err)
		}
	}
	if _, err := job.NewSessionSweepJob(workflowUseCase).Start(); err != nil {
		log.Printf("[workflow][routes] session sweep not started: %v", err)
	}

	h := Handlers{
		Contracts:      handlers.NewContractHandler(contractUseCase, scheduleUseCase, templateUseCase),
		Workflows:      handlers.NewWorkflowHandler(workflowUseCase),
		Templates:      handlers.NewTemplateHandler(templateUseCase),
		Estimates:      handlers.NewEstimateHandler(resolver, estimateUseCase),
		DepositCharges: handlers.NewDepositChargeHandler(depositUseCase, mockPayments),
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	Register(v1, h)
}

// Register mounts every /v1 route on rg.
func Register(rg *gin.RouterGroup, h Handlers) {
	addPingRoutes(rg)
	addContractRoutes(rg, h.Contracts, h.DepositCharges)
	addWorkflowRoutes(rg, h.Workflows)
	addTemplateRoutes(rg, h.Templates)
	addEstimateRoutes(rg, h.Estimates)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
