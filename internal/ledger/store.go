package ledger

import (
	"context"

	model "auction-house/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=ledger

// Store is the durable record of listings and their bids. It is the source
// of truth for price computation; bids are append-only and immutable.
type Store interface {
	CreateListing(ctx context.Context, listing model.Listing) error
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
	ListListings(ctx context.Context, category string) ([]model.Listing, error)
	UpdateListing(ctx context.Context, listing model.Listing) error
	AppendBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	GetBids(ctx context.Context, listingID string) ([]model.Bid, error)
	ToggleWatch(ctx context.Context, userID, listingID string) (bool, error)
	GetWatchlist(ctx context.Context, userID string) ([]model.Listing, error)
	ListWonByUser(ctx context.Context, userID string) ([]model.Listing, error)
}
