// Package server wires the HTTP API over a ledger store.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finledger/internal/docs" // Import swagger docs
	"finledger/internal/handlers"
	"finledger/internal/ledger"
	"finledger/internal/middleware"
	"finledger/internal/services"
)

// Services bundles the services the router dispatches to.
type Services struct {
	Accounts     services.AccountServicer
	Transactions services.TransactionServicer
	Budgets      services.BudgetServicer
	Debts        services.DebtServicer
	Guarantees   services.GuaranteeServicer
	Reports      services.ReportServicer
}

// NewServices builds every service over one store.
func NewServices(store *ledger.Store) Services {
	return Services{
		Accounts:     services.NewAccountService(store),
		Transactions: services.NewTransactionService(store),
		Budgets:      services.NewBudgetService(store),
		Debts:        services.NewDebtService(store),
		Guarantees:   services.NewGuaranteeService(store),
		Reports:      services.NewReportService(store),
	}
}

// NewRouter returns the gin engine serving /api/v1, the health check and the
// swagger UI. Callers must have run validator.Register.
func NewRouter(svc Services) *gin.Engine {
	accountHandler := handlers.NewAccountHandler(svc.Accounts)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	debtHandler := handlers.NewDebtHandler(svc.Debts)
	guaranteeHandler := handlers.NewGuaranteeHandler(svc.Guarantees)
	reportHandler := handlers.NewReportHandler(svc.Reports)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", handlers.Health)

	v1 := router.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	selection := v1.Group("/selection")
	selection.GET("", accountHandler.GetSelection)
	selection.POST("/:id/toggle", accountHandler.ToggleSelection)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	debts := v1.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.GET("/:id", debtHandler.GetDebtByID)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/payments", debtHandler.AddPayment)

	guarantees := v1.Group("/guarantees")
	guarantees.POST("", guaranteeHandler.CreateGuarantee)
	guarantees.GET("", guaranteeHandler.GetGuarantees)
	guarantees.GET("/:id", guaranteeHandler.GetGuaranteeByID)
	guarantees.DELETE("/:id", guaranteeHandler.DeleteGuarantee)

	reports := v1.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/expenses-by-tag", reportHandler.GetExpensesByTag)
	reports.GET("/recurring", reportHandler.GetRecurring)

	return router
}
