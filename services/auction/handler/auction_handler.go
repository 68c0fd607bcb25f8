package handler

import (
	"context"
	"fmt"
	"net/http"

	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_engine.go -package=handler

type AuctionEngineInterface interface {
	CreateListing(ctx context.Context, req auction.NewListing) (model.Listing, error)
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
	ListListings(ctx context.Context, category string) ([]model.Listing, error)
	GetBids(ctx context.Context, listingID string) ([]model.Bid, error)
	GetCurrentPrice(ctx context.Context, listingID string) (decimal.Decimal, error)
	GetWinningBid(ctx context.Context, listingID string) (model.Bid, error)
	PlaceBid(ctx context.Context, listingID, bidderID, amount string) (model.Bid, error)
	CloseAuction(ctx context.Context, listingID, requesterID string) (model.Listing, error)
	ReopenAuction(ctx context.Context, listingID, requesterID string) (model.Listing, error)
	ToggleWatch(ctx context.Context, userID, listingID string) (bool, error)
	GetWatchlist(ctx context.Context, userID string) ([]model.Listing, error)
	GetWonListings(ctx context.Context, userID string) ([]model.Listing, error)
}

type AuctionHandler struct {
	engine AuctionEngineInterface
}

func NewAuctionHandler(engine AuctionEngineInterface) *AuctionHandler {
	return &AuctionHandler{engine: engine}
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	listing, err := h.engine.CreateListing(c.Request.Context(), auction.NewListing{
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		OwnerID:       req.OwnerID,
	})
	if err != nil {
		h.respondError(c, "CreateListingHandler", err, map[string]any{"owner_id": req.OwnerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToListingResponse(listing), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"owner_id":   listing.OwnerID,
	})
}

// GetListingsHandler handles GET /listings with an optional category filter
func (h *AuctionHandler) GetListingsHandler(c *gin.Context) {
	category := c.Query("category")
	listings, err := h.engine.ListListings(c.Request.Context(), category)
	if err != nil {
		h.respondError(c, "GetListingsHandler", err, map[string]any{"category": category})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "listings retrieved successfully")
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.engine.GetListing(c.Request.Context(), listingID)
	if err != nil {
		h.respondError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	price, err := h.engine.GetCurrentPrice(c.Request.Context(), listingID)
	if err != nil {
		h.respondError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	resp := helpers.ToListingResponse(listing)
	resp.CurrentPrice = price.String()
	utils.JSONResponse(c, http.StatusOK, resp, "listing retrieved successfully")
}

// GetPriceHandler handles GET /listings/:listing_id/price
func (h *AuctionHandler) GetPriceHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	price, err := h.engine.GetCurrentPrice(c.Request.Context(), listingID)
	if err != nil {
		h.respondError(c, "GetPriceHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	resp := helpers.PriceResponse{ListingID: listingID, CurrentPrice: price.String()}
	utils.JSONResponse(c, http.StatusOK, resp, "current price retrieved successfully")
}

// GetBidsHandler handles GET /listings/:listing_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bids, err := h.engine.GetBids(c.Request.Context(), listingID)
	if err != nil {
		h.respondError(c, "GetBidsHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /listings/:listing_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bid, err := h.engine.GetWinningBid(c.Request.Context(), listingID)
	if err != nil {
		h.respondError(c, "GetWinningBidHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
}

// PlaceBidHandler handles POST /listings/:listing_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.engine.PlaceBid(c.Request.Context(), listingID, req.BidderID, req.Amount)
	if err != nil {
		h.respondError(c, "PlaceBidHandler", err, map[string]any{
			"listing_id": listingID,
			"bidder_id":  req.BidderID,
			"amount":     req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount.String(),
	})
}

// CloseAuctionHandler handles POST /listings/:listing_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	h.lifecycle(c, "CloseAuctionHandler", h.engine.CloseAuction, "auction closed successfully")
}

// ReopenAuctionHandler handles POST /listings/:listing_id/reopen
func (h *AuctionHandler) ReopenAuctionHandler(c *gin.Context) {
	h.lifecycle(c, "ReopenAuctionHandler", h.engine.ReopenAuction, "auction reopened successfully")
}

// lifecycle is the shared close/reopen request flow
func (h *AuctionHandler) lifecycle(
	c *gin.Context,
	handlerName string,
	op func(ctx context.Context, listingID, requesterID string) (model.Listing, error),
	successMsg string,
) {
	listingID := c.Param("listing_id")

	var req helpers.LifecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	listing, err := op(c.Request.Context(), listingID, req.RequesterID)
	if err != nil {
		h.respondError(c, handlerName, err, map[string]any{
			"listing_id":   listingID,
			"requester_id": req.RequesterID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponse(listing), successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{
		"listing_id": listing.ListingID,
		"state":      string(listing.State),
		"winner_id":  listing.WinnerID,
	})
}

// ToggleWatchHandler handles POST /listings/:listing_id/watch
func (h *AuctionHandler) ToggleWatchHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	var req helpers.WatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ToggleWatchHandler", err)
		return
	}

	watched, err := h.engine.ToggleWatch(c.Request.Context(), req.UserID, listingID)
	if err != nil {
		h.respondError(c, "ToggleWatchHandler", err, map[string]any{
			"listing_id": listingID,
			"user_id":    req.UserID,
		})
		return
	}

	resp := helpers.WatchResponse{ListingID: listingID, UserID: req.UserID, Watched: watched}
	utils.JSONResponse(c, http.StatusOK, resp, "watchlist updated successfully")
}

// GetWatchlistHandler handles GET /users/:user_id/watchlist
func (h *AuctionHandler) GetWatchlistHandler(c *gin.Context) {
	userID := c.Param("user_id")
	listings, err := h.engine.GetWatchlist(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "GetWatchlistHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "watchlist retrieved successfully")
}

// GetWonListingsHandler handles GET /users/:user_id/won
func (h *AuctionHandler) GetWonListingsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	listings, err := h.engine.GetWonListings(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "GetWonListingsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "won listings retrieved successfully")
}

// respondError maps a service error to HTTP and logs it with context
func (h *AuctionHandler) respondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
		return
	}
	utils.Warn(handlerName+": "+message, ctx)
}
