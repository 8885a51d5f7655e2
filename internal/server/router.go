package server

import (
	"servicehive/internal/fanout"
	market "servicehive/internal/marketService"
	handler "servicehive/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketService *market.MarketService, broker *fanout.Broker) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(marketService)
	streamHandler := handler.NewStreamHandler(broker)

	gigs := router.Group("/gigs")
	{
		gigs.GET("", marketHandler.ListOpenGigsHandler)
		gigs.GET("/user", AuthRequired, marketHandler.ListUserGigsHandler)
		gigs.GET("/:gig_id", marketHandler.GetGigHandler)
		gigs.GET("/:gig_id/bids", AuthRequired, marketHandler.ListBidsForGigHandler)
		gigs.POST("", AuthRequired, marketHandler.CreateGigHandler)
		gigs.PUT("/:gig_id", AuthRequired, marketHandler.UpdateGigHandler)
		gigs.DELETE("/:gig_id", AuthRequired, marketHandler.DeleteGigHandler)
	}

	bids := router.Group("/bids", AuthRequired)
	{
		bids.POST("", marketHandler.PlaceBidHandler)
		bids.GET("/user", marketHandler.ListUserBidsHandler)
		bids.PUT("/:bid_id", marketHandler.UpdateBidHandler)
		bids.DELETE("/:bid_id", marketHandler.DeleteBidHandler)
		bids.PATCH("/:bid_id/hire", marketHandler.HireHandler)
	}

	router.GET("/events", AuthRequired, streamHandler.EventsHandler)

	return router
}
