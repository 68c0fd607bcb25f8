package helpers

import (
	"time"

	model "auction-house/internal/models"
)

// Request DTOs. Monetary amounts travel as strings and are parsed into
// exact decimals by the service layer.
type CreateListingRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	StartingPrice string `json:"starting_price" binding:"required"`
	ImageURL      string `json:"image_url"`
	Category      string `json:"category"`
	OwnerID       string `json:"owner_id" binding:"required"`
}

type PlaceBidRequest struct {
	BidderID string `json:"bidder_id" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

type LifecycleRequest struct {
	RequesterID string `json:"requester_id" binding:"required"`
}

type WatchRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Response DTOs
type BidResponse struct {
	BidID     string `json:"bid_id"`
	ListingID string `json:"listing_id"`
	BidderID  string `json:"bidder_id"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type ListingResponse struct {
	ListingID     string `json:"listing_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartingPrice string `json:"starting_price"`
	ImageURL      string `json:"image_url,omitempty"`
	Category      string `json:"category,omitempty"`
	OwnerID       string `json:"owner_id"`
	State         string `json:"state"`
	WinnerID      string `json:"winner_id,omitempty"`
	CurrentPrice  string `json:"current_price,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type PriceResponse struct {
	ListingID    string `json:"listing_id"`
	CurrentPrice string `json:"current_price"`
}

type WatchResponse struct {
	ListingID string `json:"listing_id"`
	UserID    string `json:"user_id"`
	Watched   bool   `json:"watched"`
}

// ToBidResponse maps a bid to its API representation
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount.String(),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponses maps a bid history to its API representation
func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}

// ToListingResponse maps a listing to its API representation
func ToListingResponse(listing model.Listing) ListingResponse {
	return ListingResponse{
		ListingID:     listing.ListingID,
		Title:         listing.Title,
		Description:   listing.Description,
		StartingPrice: listing.StartingPrice.String(),
		ImageURL:      listing.ImageURL,
		Category:      listing.Category,
		OwnerID:       listing.OwnerID,
		State:         string(listing.State),
		WinnerID:      listing.WinnerID,
		CreatedAt:     listing.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToListingResponses maps listings to their API representation
func ToListingResponses(listings []model.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, ToListingResponse(l))
	}
	return out
}
