package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingState is the lifecycle state of a listing
type ListingState string

const (
	StateOpen   ListingState = "OPEN"
	StateClosed ListingState = "CLOSED"
)

// User represents a participant in the auction
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Listing represents an item up for auction.
// WinnerID is empty unless the listing is CLOSED and at least one bid exists.
type Listing struct {
	ListingID     string          `json:"listing_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	ImageURL      string          `json:"image_url,omitempty"`
	Category      string          `json:"category,omitempty"`
	OwnerID       string          `json:"owner_id"`
	State         ListingState    `json:"state"`
	WinnerID      string          `json:"winner_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Bid represents a user's bid on a listing. Bids are immutable once recorded.
// Sequence is assigned by the ledger store on append and increases per listing,
// which makes the amount tie-break deterministic even when timestamps collide.
type Bid struct {
	BidID     string          `json:"bid_id"`
	ListingID string          `json:"listing_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	Sequence  uint64          `json:"sequence"`
	CreatedAt time.Time       `json:"created_at"`
}
