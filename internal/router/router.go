package router

import (
	"github.com/Da20-Costa/mybudget/internal/config"
	"github.com/Da20-Costa/mybudget/internal/handler"
	"github.com/Da20-Costa/mybudget/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// every response carries no-cache headers and a resolved language
	r.Use(middleware.NoCache(), middleware.LocaleMiddleware(cfg.App.DefaultLanguage))

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	authHandler := handler.NewAuthHandler(db, cfg.Auth.Secret, cfg.Auth.ExpireHours, cfg.Auth.BcryptCost)

	// public routes
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.GET("/set_language/:lang", handler.SetLanguage)

	// everything else requires a valid session
	protected := r.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.Auth.Secret, db),
		middleware.AuditMiddleware(db),
	)

	dashboardHandler := handler.NewDashboardHandler(db, cfg.App.RecentTransactions)
	protected.GET("/", dashboardHandler.Index)

	transactionHandler := handler.NewTransactionHandler(db)
	protected.GET("/add", transactionHandler.AddForm)
	protected.POST("/add", transactionHandler.Add)
	protected.POST("/delete_transaction", transactionHandler.Delete)

	historyHandler := handler.NewHistoryHandler(db)
	protected.GET("/history", historyHandler.List)

	categoryHandler := handler.NewCategoryHandler(db)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.POST("/delete_category", categoryHandler.Delete)

	reportHandler := handler.NewReportHandler(db)
	protected.GET("/reports", reportHandler.Charts)

	budgetHandler := handler.NewBudgetHandler(db)
	protected.GET("/budget", budgetHandler.List)
	protected.POST("/budget", budgetHandler.Save)
	protected.POST("/delete_budget", budgetHandler.Delete)

	recurringHandler := handler.NewRecurringHandler(db)
	protected.GET("/recurring", recurringHandler.List)
	protected.POST("/recurring", recurringHandler.Create)
	protected.POST("/delete_recurring", recurringHandler.Delete)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.CSV)
	protected.GET("/export/xlsx", exportHandler.XLSX)

	return r
}
