package api

import (
	"fmt"      // Panic formatting
	"net/http" // HTTP status codes

	"organizo/internal/config"     // App configuration
	"organizo/internal/middleware" // Custom middleware
	"organizo/internal/utils"      // List cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps is everything the router needs
type Deps struct {
	Config       *config.Config
	Tasks        TaskStore
	Transactions TransactionStore
	Settings     SettingsStore
	Cache        *utils.ListCache // nil disables caching
}

// NewRouter builds the gin engine with every route mounted
func NewRouter(d Deps) *gin.Engine {
	r := gin.New() // Gin router instance

	// Expose raw errors to the client only in development
	r.Use(func(c *gin.Context) {
		c.Set(devErrorsKey, d.Config.IsDev())
		c.Next()
	})
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		respondError(c, fmt.Errorf("panic: %v", recovered))
	}))
	r.Use(middleware.RequestLogger())                               // Log every request
	r.Use(middleware.CORS(d.Config.FrontendURLs, d.Config.IsDev())) // Allow the frontends

	apiGroup := r.Group("/api")
	apiGroup.GET("/health", HealthHandler(d.Config.AppEnv)) // Health check, no identity required

	// Everything else is owner scoped
	owned := apiGroup.Group("")
	owned.Use(middleware.Identity(d.Config.IdentitySecret))

	owned.GET("/tasks", ListTasksHandler(d.Tasks, d.Cache))         // List tasks
	owned.POST("/tasks", CreateTaskHandler(d.Tasks, d.Cache))       // Create task
	owned.PUT("/tasks/:id", UpdateTaskHandler(d.Tasks, d.Cache))    // Update task
	owned.DELETE("/tasks/:id", DeleteTaskHandler(d.Tasks, d.Cache)) // Delete task

	owned.GET("/transactions", ListTransactionsHandler(d.Transactions, d.Cache))         // List transactions
	owned.POST("/transactions", CreateTransactionHandler(d.Transactions, d.Cache))       // Create transaction
	owned.PUT("/transactions/:id", UpdateTransactionHandler(d.Transactions, d.Cache))    // Update transaction
	owned.DELETE("/transactions/:id", DeleteTransactionHandler(d.Transactions, d.Cache)) // Delete transaction

	owned.GET("/user-settings", GetSettingsHandler(d.Settings))          // Read settings
	owned.PUT("/user-settings", PutSettingsHandler(d.Settings, d.Cache)) // Upsert settings

	owned.GET("/dashboard", DashboardHandler(d.Tasks, d.Transactions, d.Settings, d.Cache)) // Aggregated summary

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
	return r
}
