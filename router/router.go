package router

import (
	"net/http"
	"time"

	"saldo/api"
	"saldo/config"
	_ "saldo/docs"
	"saldo/middleware"
	"saldo/repository"
	"saldo/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// 认证接口限流：每个 IP 每分钟 10 次
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(CORSMiddleware())

	// 仓储与服务
	users := repository.NewUserRepository(db)
	categories := repository.NewCategoryRepository(db)
	expenses := repository.NewExpenseRepository(db)
	projections := repository.NewProjectionRepository(db)

	tokens := middleware.NewTokenService(cfg.JWT)
	var notifier service.Notifier
	if cfg.Email.Enabled {
		notifier = service.NewEmailService(&cfg.Email)
	}

	expenseService := service.NewExpenseService(expenses, categories, cfg.Pagination)

	authHandler := api.NewAuthHandler(service.NewAuthService(users, tokens, notifier))
	categoryHandler := api.NewCategoryHandler(service.NewCategoryService(categories, expenses))
	expenseHandler := api.NewExpenseHandler(expenseService)
	projectionHandler := api.NewProjectionHandler(service.NewProjectionService(projections))
	dashboardHandler := api.NewDashboardHandler(service.NewDashboardService(expenses))
	exportHandler := api.NewExportHandler(expenseService)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "database unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(authRateLimit, authRateWindow))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(tokens))
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			categoryGroup := authorized.Group("/categories")
			{
				categoryGroup.GET("", categoryHandler.List)
				categoryGroup.POST("", categoryHandler.Create)
				categoryGroup.GET("/:id", categoryHandler.Get)
				categoryGroup.PUT("/:id", categoryHandler.Update)
				categoryGroup.DELETE("/:id", categoryHandler.Delete)
			}

			expenseGroup := authorized.Group("/expenses")
			{
				expenseGroup.GET("", expenseHandler.List)
				expenseGroup.POST("", expenseHandler.Create)
				expenseGroup.GET("/total", expenseHandler.Total)
				expenseGroup.GET("/:id", expenseHandler.Get)
				expenseGroup.PUT("/:id", expenseHandler.Update)
				expenseGroup.DELETE("/:id", expenseHandler.Delete)
			}

			projectionGroup := authorized.Group("/projections")
			{
				projectionGroup.GET("", projectionHandler.List)
				projectionGroup.POST("", projectionHandler.Create)
				projectionGroup.POST("/calculate", projectionHandler.Calculate)
				projectionGroup.GET("/:id", projectionHandler.Get)
				projectionGroup.DELETE("/:id", projectionHandler.Delete)
			}

			authorized.GET("/dashboard", dashboardHandler.Get)

			exportGroup := authorized.Group("/export")
			{
				exportGroup.GET("/csv", exportHandler.ExportCSV)
				exportGroup.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "Content-Disposition")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
