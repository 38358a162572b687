package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/server/http/handlers"
	"github.com/polkiloo/tailorshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	shopHandler := handlers.NewShopHandler(facade, facade)
	trackHandler := handlers.NewTrackHandler(facade)
	authHandler := handlers.NewAuthHandler(facade, facade)
	adminHandler := handlers.NewAdminHandler(facade, facade, facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")

	shop := api.Group("/shop")
	shop.GET("/products", shopHandler.Products)
	shop.GET("/products/:id", shopHandler.Product)
	shop.GET("/categories", shopHandler.Categories)
	shop.POST("/create-order", middleware.OptionalAuth(facade), shopHandler.CreateOrder)
	shop.POST("/verify-payment", shopHandler.VerifyPayment)
	shop.GET("/orders/:orderNumber", shopHandler.Order)

	api.GET("/track/:orderNumber", trackHandler.Track)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/login", authHandler.Login)

	customer := auth.Group("")
	customer.Use(middleware.AuthRequired(facade, model.RoleCustomer))
	customer.GET("/profile", authHandler.Profile)
	customer.PUT("/profile", authHandler.UpdateProfile)
	customer.GET("/orders", authHandler.Orders)

	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)

	backOffice := admin.Group("")
	backOffice.Use(middleware.AuthRequired(facade, model.RoleAdmin))
	backOffice.GET("/orders", adminHandler.Orders)
	backOffice.GET("/orders/:id", adminHandler.Order)
	backOffice.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	backOffice.GET("/products", adminHandler.Products)
	backOffice.POST("/products", adminHandler.CreateProduct)
	backOffice.PUT("/products/:id", adminHandler.UpdateProduct)
	backOffice.DELETE("/products/:id", adminHandler.DeleteProduct)

	return engine
}
