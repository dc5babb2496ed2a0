package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-checkout-api/internal/config"
	"event-checkout-api/internal/handlers"
	"event-checkout-api/internal/middleware"
)

// Handlers groups the route handlers wired into the router
type Handlers struct {
	Events   *handlers.EventHandler
	Sessions *handlers.SessionHandler
	Cart     *handlers.CartHandler
	Sales    *handlers.SaleHandler
}

// NewRouter assembles the gin engine: CORS, request ID and logging
// middleware, the API route groups and the swagger UI.
func NewRouter(cfg *config.Config, log *logrus.Logger, h Handlers) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")

	events := api.Group("/events")
	{
		events.GET("/v1", h.Events.GetEvent)
		events.GET("/v1/all", h.Events.ListEvents)
		events.POST("/v1/add/event", h.Events.CreateEvent)
		events.POST("/v1/update/event", h.Events.UpdateEvent)
	}

	sessions := api.Group("/event-sessions")
	{
		sessions.GET("/v1", h.Sessions.GetSessions)
		sessions.POST("/v1/add/event/session", h.Sessions.CreateSession)
	}

	cart := api.Group("/cart")
	{
		cart.GET("/v1", h.Cart.GetCartBySession)
		cart.GET("/v1/contents/by/id", h.Cart.GetContentsByID)
		cart.GET("/v1/contents/by/session", h.Cart.GetContentsBySession)
		cart.GET("/v1/contents/total", h.Cart.GetSubtotal)
		cart.POST("/v1/add/cart", h.Cart.CreateCart)
		cart.POST("/v1/add/cart/item", h.Cart.UpsertItem)
		cart.DELETE("/v1/delete/cart/item", h.Cart.DeleteItem)
		cart.DELETE("/v1/delete/cart", h.Cart.DeleteCart)
	}

	sold := api.Group("/sold")
	{
		sold.GET("/v1/tickets/event", h.Sales.TotalSoldByEvent)
		sold.GET("/v1/tickets/event/session", h.Sales.TotalSoldBySession)
		sold.POST("/v1/add/tickets/sold", h.Sales.Finalize)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
