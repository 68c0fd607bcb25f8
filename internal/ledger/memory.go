package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store
type MemoryStore struct {
	mu       sync.RWMutex
	listings map[string]model.Listing
	bids     map[string][]model.Bid // key: listingID -> bids in append order
	watchers map[string]map[string]bool
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		listings: make(map[string]model.Listing),
		bids:     make(map[string][]model.Bid),
		watchers: make(map[string]map[string]bool),
	}
}

// CreateListing stores a new listing
func (s *MemoryStore) CreateListing(_ context.Context, listing model.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listing.ListingID]; ok {
		return fmt.Errorf("create listing %s: %w", listing.ListingID, auctionerrors.ErrListingExists)
	}
	s.listings[listing.ListingID] = listing
	return nil
}

// GetListing returns the listing with the given id
func (s *MemoryStore) GetListing(_ context.Context, listingID string) (model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return listing, nil
}

// ListListings returns all OPEN listings, optionally filtered by category
func (s *MemoryStore) ListListings(_ context.Context, category string) ([]model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]model.Listing, 0)
	for _, l := range s.listings {
		if l.State != model.StateOpen {
			continue
		}
		if category != "" && l.Category != category {
			continue
		}
		listings = append(listings, l)
	}
	sortListings(listings)
	return listings, nil
}

// UpdateListing replaces the stored listing. Only state and winner change
// over a listing's lifetime; everything else is written once at creation.
func (s *MemoryStore) UpdateListing(_ context.Context, listing model.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listing.ListingID]; !ok {
		return fmt.Errorf("update listing %s: %w", listing.ListingID, auctionerrors.ErrListingNotFound)
	}
	s.listings[listing.ListingID] = listing
	return nil
}

// AppendBid records a bid and assigns its per-listing sequence number
func (s *MemoryStore) AppendBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[bid.ListingID]; !ok {
		return model.Bid{}, fmt.Errorf("append bid for listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}

	bid.Sequence = uint64(len(s.bids[bid.ListingID]) + 1)
	s.bids[bid.ListingID] = append(s.bids[bid.ListingID], bid)
	return bid, nil
}

// GetBids returns all bids for a listing in append order
func (s *MemoryStore) GetBids(_ context.Context, listingID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.listings[listingID]; !ok {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	return append([]model.Bid(nil), s.bids[listingID]...), nil
}

// ToggleWatch flips the user's watchlist membership for a listing and
// reports whether the listing is on the watchlist afterwards
func (s *MemoryStore) ToggleWatch(_ context.Context, userID, listingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listingID]; !ok {
		return false, fmt.Errorf("toggle watch for listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}

	watched := s.watchers[userID]
	if watched == nil {
		watched = make(map[string]bool)
		s.watchers[userID] = watched
	}
	if watched[listingID] {
		delete(watched, listingID)
		return false, nil
	}
	watched[listingID] = true
	return true, nil
}

// GetWatchlist returns the listings on the user's watchlist
func (s *MemoryStore) GetWatchlist(_ context.Context, userID string) ([]model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]model.Listing, 0, len(s.watchers[userID]))
	for listingID := range s.watchers[userID] {
		if l, ok := s.listings[listingID]; ok {
			listings = append(listings, l)
		}
	}
	sortListings(listings)
	return listings, nil
}

// ListWonByUser returns closed listings the user has won
func (s *MemoryStore) ListWonByUser(_ context.Context, userID string) ([]model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]model.Listing, 0)
	for _, l := range s.listings {
		if l.State == model.StateClosed && l.WinnerID == userID {
			listings = append(listings, l)
		}
	}
	sortListings(listings)
	return listings, nil
}

// sortListings orders listings by creation time, then id, so map iteration
// does not leak into API responses
func sortListings(listings []model.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ListingID < listings[j].ListingID
		}
		return listings[i].CreatedAt.Before(listings[j].CreatedAt)
	})
}
