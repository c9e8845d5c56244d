package routes

import (
	"net/http"
	"time"

	"tably/handlers"
	"tably/middleware"
	"tably/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMenuRoutes registers the customer-facing catalog endpoints.
func RegisterMenuRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/menu")
	{
		api.GET("/steps", hb.Menu.GetMenuStepsHandler)
	}
}

// RegisterBuilderRoutes sets up the endpoints for the order builder sessions.
func RegisterBuilderRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/builder")
	{
		api.POST("/session", hb.Builder.StartSessionHandler)
		api.GET("/session/:sessionID", hb.Builder.GetSessionHandler)
		api.POST("/session/:sessionID/select", hb.Builder.SelectHandler)
		api.POST("/session/:sessionID/adjust", hb.Builder.AdjustHandler)
		api.POST("/session/:sessionID/quantity", hb.Builder.SetQuantityHandler)
		api.POST("/session/:sessionID/slider", hb.Builder.SliderHandler)
		api.POST("/session/:sessionID/advance", hb.Builder.AdvanceHandler)
		api.DELETE("/session/:sessionID", hb.Builder.CancelSessionHandler)
	}
}

// RegisterOrderRoutes registers order submission and tracking endpoints.
func RegisterOrderRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/orders")
	{
		api.POST("", hb.Order.CreateOrderHandler)
		api.GET("", hb.Order.ListOrdersHandler)
		api.GET("/:id", hb.Order.GetOrderHandler)
		api.PATCH("/:id/arrival", hb.Order.UpdateArrivalHandler)

		// Kitchen status changes require a staff token.
		staff := api.Group("")
		staff.Use(middleware.StaffAuthMiddleware())
		staff.PATCH("/:id/status", hb.Order.UpdateStatusHandler)
	}
}

// RegisterPodRoutes registers the pod lifecycle board endpoints.
func RegisterPodRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/pods")
	{
		api.GET("", hb.Pod.ListPodsHandler)
		api.POST("/:id/confirm-arrival", hb.Pod.ConfirmArrivalHandler)

		staff := api.Group("")
		staff.Use(middleware.StaffAuthMiddleware())
		staff.POST("", hb.Pod.CreatePodHandler)
		staff.POST("/:id/start-cleaning", hb.Pod.StartCleaningHandler)
		staff.POST("/:id/mark-clean", hb.Pod.MarkCleanHandler)
		staff.DELETE("/:id", hb.Pod.DeletePodHandler)
	}
}

// RegisterLoyaltyRoutes registers the points balance endpoint.
func RegisterLoyaltyRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/loyalty")
	{
		api.GET("/:userID", hb.Loyalty.BalanceHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/admin")
	{
		api.POST("/signin", hb.Admin.StaffSigninHandler)

		staff := api.Group("")
		staff.Use(middleware.StaffAuthMiddleware())
		staff.GET("/tenant", hb.Admin.GetTenantHandler)
		staff.PATCH("/tenant", hb.Admin.UpdateTenantHandler)
		staff.GET("/menu/steps/:id", hb.Admin.GetMenuStepHandler)
		staff.PUT("/menu/steps", hb.Admin.UpsertMenuStepHandler)
		staff.DELETE("/menu/steps/:id", hb.Admin.DeleteMenuStepHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.CheckHealth())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, tenantMw gin.HandlerFunc) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "x-tenant-slug"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	// Tenant provisioning sits outside the tenant-scoped group.
	platform := r.Group("/api/platform")
	{
		platform.POST("/tenants", hb.Admin.CreateTenantHandler)
		platform.GET("/tenants", hb.Admin.ListTenantsHandler)
		platform.DELETE("/tenants/:id", hb.Admin.DeleteTenantHandler)
	}

	api := r.Group("/api")
	api.Use(tenantMw)
	RegisterMenuRoutes(api, hb)
	RegisterBuilderRoutes(api, hb)
	RegisterOrderRoutes(api, hb)
	RegisterPodRoutes(api, hb)
	RegisterLoyaltyRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}
