package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/ledger"
	"auction-house/internal/models"
	"auction-house/internal/pricing"
	"auction-house/utils"

	"github.com/shopspring/decimal"
)

// AuctionService coordinates the ledger store, price computation, bid
// validation and listing lifecycle. All mutating operations and price reads
// for a listing run inside that listing's mutex, so concurrent bids never
// validate against a stale price and listings never block each other.
type AuctionService struct {
	store ledger.Store
	locks sync.Map // listingID -> *sync.Mutex
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store ledger.Store) *AuctionService {
	return &AuctionService{store: store}
}

// NewListing carries the caller-supplied fields for listing creation
type NewListing struct {
	Title         string
	Description   string
	StartingPrice string
	ImageURL      string
	Category      string
	OwnerID       string
}

// lockListing acquires the per-listing mutex and returns its release func
func (s *AuctionService) lockListing(listingID string) func() {
	v, _ := s.locks.LoadOrStore(listingID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CreateListing validates and stores a new listing in the OPEN state
func (s *AuctionService) CreateListing(ctx context.Context, req NewListing) (models.Listing, error) {
	price, err := decimal.NewFromString(req.StartingPrice)
	if err != nil || price.IsNegative() {
		return models.Listing{}, fmt.Errorf("service: %w - starting price %q", auctionerrors.ErrMalformedAmount, req.StartingPrice)
	}

	listing := models.Listing{
		ListingID:     utils.GenerateID(),
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: price,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		OwnerID:       req.OwnerID,
		State:         models.StateOpen,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.CreateListing(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing: %w", err)
	}
	return listing, nil
}

// GetListing returns a single listing by id
func (s *AuctionService) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ListListings returns all open listings, optionally filtered by category
func (s *AuctionService) ListListings(ctx context.Context, category string) ([]models.Listing, error) {
	listings, err := s.store.ListListings(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}
	return listings, nil
}

// GetBids returns the full bid history of a listing in append order
func (s *AuctionService) GetBids(ctx context.Context, listingID string) ([]models.Bid, error) {
	bids, err := s.store.GetBids(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// GetCurrentPrice returns the highest bid amount for the listing, or its
// starting price when no bids exist
func (s *AuctionService) GetCurrentPrice(ctx context.Context, listingID string) (decimal.Decimal, error) {
	unlock := s.lockListing(listingID)
	defer unlock()

	listing, bids, err := s.listingWithBids(ctx, listingID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("service: failed to get current price for listing %s: %w", listingID, err)
	}
	return pricing.CurrentPrice(listing, bids), nil
}

// GetWinningBid returns the bid currently winning the listing
func (s *AuctionService) GetWinningBid(ctx context.Context, listingID string) (models.Bid, error) {
	unlock := s.lockListing(listingID)
	defer unlock()

	_, bids, err := s.listingWithBids(ctx, listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for listing %s: %w", listingID, err)
	}

	winning, ok := pricing.WinningBid(bids)
	if !ok {
		return models.Bid{}, fmt.Errorf("service: winning bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}
	return winning, nil
}

// PlaceBid validates and records a bid against a listing. Checks run in
// order: listing exists, auction open, amount well-formed and positive,
// amount strictly greater than the current price.
func (s *AuctionService) PlaceBid(ctx context.Context, listingID, bidderID, amount string) (models.Bid, error) {
	unlock := s.lockListing(listingID)
	defer unlock()

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on listing %s: %w", listingID, err)
	}
	if listing.State != models.StateOpen {
		return models.Bid{}, fmt.Errorf("service: %w - listing %s", auctionerrors.ErrAuctionClosed, listingID)
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil || !amt.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - %q", auctionerrors.ErrMalformedAmount, amount)
	}

	bids, err := s.store.GetBids(ctx, listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to read bid history for listing %s: %w", listingID, err)
	}

	current := pricing.CurrentPrice(listing, bids)
	if !amt.GreaterThan(current) {
		return models.Bid{}, fmt.Errorf("service: %w - current price is %s", auctionerrors.ErrBidTooLow, current)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listingID,
		BidderID:  bidderID,
		Amount:    amt,
		CreatedAt: time.Now().UTC(),
	}

	recorded, err := s.store.AppendBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on listing %s by user %s: %w", listingID, bidderID, err)
	}
	return recorded, nil
}

// CloseAuction freezes the listing and assigns the winner from the highest
// bid, earliest first on amount ties. Only the owner may close; the
// operation is idempotent.
func (s *AuctionService) CloseAuction(ctx context.Context, listingID, requesterID string) (models.Listing, error) {
	unlock := s.lockListing(listingID)
	defer unlock()

	listing, bids, err := s.listingWithBids(ctx, listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to close listing %s: %w", listingID, err)
	}
	if listing.OwnerID != requesterID {
		return models.Listing{}, fmt.Errorf("service: %w - close listing %s", auctionerrors.ErrForbidden, listingID)
	}

	listing.State = models.StateClosed
	listing.WinnerID = ""
	if winning, ok := pricing.WinningBid(bids); ok {
		listing.WinnerID = winning.BidderID
	}

	if err := s.store.UpdateListing(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to persist close of listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ReopenAuction returns the listing to the OPEN state and clears the
// winner. Bid history is retained and keeps counting toward the current
// price. Only the owner may reopen; the operation is idempotent.
func (s *AuctionService) ReopenAuction(ctx context.Context, listingID, requesterID string) (models.Listing, error) {
	unlock := s.lockListing(listingID)
	defer unlock()

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to reopen listing %s: %w", listingID, err)
	}
	if listing.OwnerID != requesterID {
		return models.Listing{}, fmt.Errorf("service: %w - reopen listing %s", auctionerrors.ErrForbidden, listingID)
	}

	listing.State = models.StateOpen
	listing.WinnerID = ""

	if err := s.store.UpdateListing(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to persist reopen of listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ToggleWatch flips the user's watchlist membership for a listing
func (s *AuctionService) ToggleWatch(ctx context.Context, userID, listingID string) (bool, error) {
	watched, err := s.store.ToggleWatch(ctx, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("service: failed to toggle watch on listing %s: %w", listingID, err)
	}
	return watched, nil
}

// GetWatchlist returns the listings the user is watching
func (s *AuctionService) GetWatchlist(ctx context.Context, userID string) ([]models.Listing, error) {
	listings, err := s.store.GetWatchlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get watchlist for user %s: %w", userID, err)
	}
	return listings, nil
}

// GetWonListings returns the closed listings the user has won
func (s *AuctionService) GetWonListings(ctx context.Context, userID string) ([]models.Listing, error) {
	listings, err := s.store.ListWonByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get won listings for user %s: %w", userID, err)
	}
	return listings, nil
}

// listingWithBids reads a listing and its bid history together. Callers
// hold the listing mutex, so the pair is consistent.
func (s *AuctionService) listingWithBids(ctx context.Context, listingID string) (models.Listing, []models.Bid, error) {
	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, nil, err
	}
	bids, err := s.store.GetBids(ctx, listingID)
	if err != nil {
		return models.Listing{}, nil, err
	}
	return listing, bids, nil
}
