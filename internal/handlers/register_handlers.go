package handlers

import (
	"github.com/SscSPs/erp_accounting/cmd/docs"
	"github.com/SscSPs/erp_accounting/internal/core/domain"
	portssvc "github.com/SscSPs/erp_accounting/internal/core/ports/services"
	"github.com/SscSPs/erp_accounting/internal/middleware"
	"github.com/SscSPs/erp_accounting/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", getHealth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	RegisterTransactionRoutes(v1, services, domain.SystemClock{})
}

// RegisterTransactionRoutes registers the transaction, payment, ledger and
// quick transaction routes on rg.
func RegisterTransactionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, clock domain.Clock) {
	th := newTransactionHandler(services.Transaction, clock)
	ph := newPaymentHandler(services.Payment)
	lh := newLedgerHandler(services.Ledger)
	qh := newQuickTransactionHandler(services.QuickTransaction, clock)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", th.createTransaction)
		transactions.GET("", th.listTransactions)
		transactions.GET("/:transactionID", th.getTransaction)
		transactions.PUT("/:transactionID", th.updateTransaction)
		transactions.DELETE("/:transactionID", th.deleteTransaction)
		transactions.POST("/:transactionID/approve", th.approveTransaction)
		transactions.POST("/:transactionID/pay_plans", th.addPayPlan)
		transactions.GET("/:transactionID/next_payment", th.nextPayment)

		transactions.POST("/:transactionID/payments", ph.applyPayment)
		transactions.GET("/:transactionID/payments", ph.listPayments)

		transactions.GET("/:transactionID/ledger", lh.listLedgerEntries)
	}

	rg.POST("/quick_transactions", qh.createQuickTransaction)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
