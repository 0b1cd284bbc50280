package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fx-bothub.backend/internal/interfaces/http/handlers"
	"fx-bothub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	userHandler       *handlers.UserHandler
	kycHandler        *handlers.KycHandler
	accountHandler    *handlers.AccountHandler
	botHandler        *handlers.BotHandler
	catalogHandler    *handlers.CatalogHandler
	botRequestHandler *handlers.BotRequestHandler
	adminHandler      *handlers.AdminHandler
	authHandler       *handlers.AuthHandler
	authMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// User routes (public; the identity provider vouches for the uid)
		users := api.Group("/users")
		{
			users.POST("", d.userHandler.Register)
			users.GET("/:uid", d.userHandler.Get)
			users.GET("/:uid/profile", d.userHandler.GetProfile)

			users.POST("/:uid/kyc", d.kycHandler.Submit)

			users.POST("/:uid/accounts", d.accountHandler.Create)
			users.GET("/:uid/accounts", d.accountHandler.List)

			users.POST("/:uid/bots", middleware.IdempotencyMiddleware(), d.botHandler.Request)
			users.GET("/:uid/bots", d.botHandler.List)
		}

		// Public bot catalog
		bots := api.Group("/bots")
		{
			bots.GET("/catalog", d.botHandler.Catalog)
		}

		// Admin login (public)
		api.POST("/admin/login", d.authHandler.Login)

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id/approve", d.adminHandler.ApproveUser)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/stats", d.adminHandler.Stats)

			admin.GET("/kyc-requests", d.kycHandler.ListRequests)
			admin.GET("/kyc-requests/:id", d.kycHandler.GetRequest)
			admin.PUT("/kyc-requests/:id/approve", d.kycHandler.Approve)
			admin.PUT("/kyc-requests/:id/reject", d.kycHandler.Reject)

			admin.GET("/bots", d.catalogHandler.List)
			admin.POST("/bots", d.catalogHandler.Create)
			admin.PUT("/bots/:id", d.catalogHandler.Update)
			admin.DELETE("/bots/:id", d.catalogHandler.Delete)

			admin.GET("/bot-requests", d.botRequestHandler.List)
			admin.GET("/bot-requests/:id", d.botRequestHandler.Get)
			admin.PUT("/bot-requests/:id/approve", d.botRequestHandler.Approve)
			admin.PUT("/bot-requests/:id/reject", d.botRequestHandler.Reject)
		}
	}
}
