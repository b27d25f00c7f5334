// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	StoreHandler       *handler.StoreHandler
	ProductHandler     *handler.ProductHandler
	CartHandler        *handler.CartHandler
	OrderHandler       *handler.OrderHandler
	ProfileHandler     *handler.ProfileHandler
	AddressHandler     *handler.AddressHandler
	DeviceHandler      *handler.DeviceHandler
	AdminHandler       *handler.AdminHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	storeHandler       *handler.StoreHandler
	productHandler     *handler.ProductHandler
	cartHandler        *handler.CartHandler
	orderHandler       *handler.OrderHandler
	profileHandler     *handler.ProfileHandler
	addressHandler     *handler.AddressHandler
	deviceHandler      *handler.DeviceHandler
	adminHandler       *handler.AdminHandler
	identityMiddleware *middleware.IdentityMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		storeHandler:       params.StoreHandler,
		productHandler:     params.ProductHandler,
		cartHandler:        params.CartHandler,
		orderHandler:       params.OrderHandler,
		profileHandler:     params.ProfileHandler,
		addressHandler:     params.AddressHandler,
		deviceHandler:      params.DeviceHandler,
		adminHandler:       params.AdminHandler,
		identityMiddleware: params.IdentityMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every API route knows its caller when there is one
	api := e.Group("/api")
	api.Use(r.identityMiddleware.Resolve)

	requireCaller := r.identityMiddleware.RequireCaller

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.NewRateLimiter(r.config))
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	storesGroup := api.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.FindStores)
		storesGroup.GET("/mine", r.storeHandler.GetMyStores, requireCaller)
		storesGroup.POST("", r.storeHandler.CreateStore, requireCaller)
		storesGroup.PUT("/:id", r.storeHandler.UpdateStore, requireCaller)
		storesGroup.DELETE("/:id", r.storeHandler.DeleteStore, requireCaller)
		storesGroup.PATCH("/:id/status", r.storeHandler.SetStoreStatus, requireCaller)
		storesGroup.GET("/:id/qrcode", r.storeHandler.GetStoreQRCode, requireCaller)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.POST("", r.productHandler.CreateProduct, requireCaller)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, requireCaller)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, requireCaller)
	}

	cartGroup := api.Group("/cart", requireCaller)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.PUT("/:itemId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/:itemId", r.cartHandler.RemoveItem)
	}

	ordersGroup := api.Group("/orders", requireCaller)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.Checkout)
		ordersGroup.PATCH("/:id", r.orderHandler.UpdateStatus)
	}

	profileGroup := api.Group("/profile", requireCaller)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.DELETE("", r.profileHandler.DeleteProfile)
	}

	addressesGroup := api.Group("/addresses", requireCaller)
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.PUT("", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("", r.addressHandler.DeleteAddress)
	}

	api.GET("/postal-codes/:zip", r.addressHandler.LookupPostalCode)

	devicesGroup := api.Group("/devices", requireCaller)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	api.GET("/admin", r.adminHandler.GetOverview, requireCaller)
}
