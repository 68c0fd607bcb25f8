package server

import (
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(engine handler.AuctionEngineInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(engine)

	listings := router.Group("/listings")
	{
		listings.POST("", auctionHandler.CreateListingHandler)
		listings.GET("", auctionHandler.GetListingsHandler)
		listings.GET("/:listing_id", auctionHandler.GetListingHandler)
		listings.GET("/:listing_id/price", auctionHandler.GetPriceHandler)
		listings.GET("/:listing_id/bids", auctionHandler.GetBidsHandler)
		listings.POST("/:listing_id/bids", auctionHandler.PlaceBidHandler)
		listings.GET("/:listing_id/winning", auctionHandler.GetWinningBidHandler)
		listings.POST("/:listing_id/close", auctionHandler.CloseAuctionHandler)
		listings.POST("/:listing_id/reopen", auctionHandler.ReopenAuctionHandler)
		listings.POST("/:listing_id/watch", auctionHandler.ToggleWatchHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/watchlist", auctionHandler.GetWatchlistHandler)
		users.GET("/:user_id/won", auctionHandler.GetWonListingsHandler)
	}

	return router
}
