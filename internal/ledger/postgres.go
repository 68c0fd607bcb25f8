package ledger

import (
	"context"
	"errors"
	"fmt"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var listingColumns = []string{
	"id", "title", "description", "starting_price", "image_url",
	"category", "owner_id", "state", "winner_id", "created_at",
}

// PostgresStore is a Postgres-backed implementation of Store.
// Schema is managed by the migrations under migrations/.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store on top of an existing connection pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// CreateListing stores a new listing
func (s *PostgresStore) CreateListing(ctx context.Context, listing model.Listing) error {
	query, args, err := psql.Insert("listings").
		Columns(listingColumns...).
		Values(
			listing.ListingID,
			listing.Title,
			listing.Description,
			listing.StartingPrice,
			listing.ImageURL,
			listing.Category,
			listing.OwnerID,
			string(listing.State),
			listing.WinnerID,
			listing.CreatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("build insert listing: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert listing %s: %w", listing.ListingID, err)
	}
	return nil
}

// GetListing returns the listing with the given id
func (s *PostgresStore) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	query, args, err := psql.Select(listingColumns...).
		From("listings").
		Where(sq.Eq{"id": listingID}).ToSql()
	if err != nil {
		return model.Listing{}, fmt.Errorf("build select listing: %w", err)
	}

	listing, err := s.scanListing(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
		}
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ListListings returns all OPEN listings, optionally filtered by category
func (s *PostgresStore) ListListings(ctx context.Context, category string) ([]model.Listing, error) {
	builder := psql.Select(listingColumns...).
		From("listings").
		Where(sq.Eq{"state": string(model.StateOpen)}).
		OrderBy("created_at", "id")
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list listings: %w", err)
	}
	return s.queryListings(ctx, query, args...)
}

// UpdateListing persists the listing's current state and winner
func (s *PostgresStore) UpdateListing(ctx context.Context, listing model.Listing) error {
	query, args, err := psql.Update("listings").
		Set("state", string(listing.State)).
		Set("winner_id", listing.WinnerID).
		Where(sq.Eq{"id": listing.ListingID}).ToSql()
	if err != nil {
		return fmt.Errorf("build update listing: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update listing %s: %w", listing.ListingID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update listing %s: %w", listing.ListingID, auctionerrors.ErrListingNotFound)
	}
	return nil
}

// AppendBid records a bid; the sequence number comes from the bids table
func (s *PostgresStore) AppendBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	query, args, err := psql.Insert("bids").
		Columns("id", "listing_id", "bidder_id", "amount", "created_at").
		Values(bid.BidID, bid.ListingID, bid.BidderID, bid.Amount, bid.CreatedAt).
		Suffix("RETURNING sequence").ToSql()
	if err != nil {
		return model.Bid{}, fmt.Errorf("build insert bid: %w", err)
	}

	if err := s.pool.QueryRow(ctx, query, args...).Scan(&bid.Sequence); err != nil {
		return model.Bid{}, fmt.Errorf("insert bid for listing %s: %w", bid.ListingID, err)
	}
	return bid, nil
}

// GetBids returns all bids for a listing in append order
func (s *PostgresStore) GetBids(ctx context.Context, listingID string) ([]model.Bid, error) {
	if _, err := s.GetListing(ctx, listingID); err != nil {
		return nil, err
	}

	query, args, err := psql.Select("id", "listing_id", "bidder_id", "amount", "sequence", "created_at").
		From("bids").
		Where(sq.Eq{"listing_id": listingID}).
		OrderBy("sequence").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select bids: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.BidID, &b.ListingID, &b.BidderID, &b.Amount, &b.Sequence, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// ToggleWatch flips watchlist membership and reports the resulting state
func (s *PostgresStore) ToggleWatch(ctx context.Context, userID, listingID string) (bool, error) {
	if _, err := s.GetListing(ctx, listingID); err != nil {
		return false, err
	}

	query, args, err := psql.Delete("watchlist").
		Where(sq.Eq{"user_id": userID, "listing_id": listingID}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete watch: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("toggle watch for listing %s: %w", listingID, err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	query, args, err = psql.Insert("watchlist").
		Columns("user_id", "listing_id").
		Values(userID, listingID).ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert watch: %w", err)
	}
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return false, fmt.Errorf("toggle watch for listing %s: %w", listingID, err)
	}
	return true, nil
}

// GetWatchlist returns the listings on the user's watchlist
func (s *PostgresStore) GetWatchlist(ctx context.Context, userID string) ([]model.Listing, error) {
	query, args, err := psql.Select(prefixed("l", listingColumns)...).
		From("listings l").
		Join("watchlist w ON w.listing_id = l.id").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("l.created_at", "l.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select watchlist: %w", err)
	}
	return s.queryListings(ctx, query, args...)
}

// ListWonByUser returns closed listings the user has won
func (s *PostgresStore) ListWonByUser(ctx context.Context, userID string) ([]model.Listing, error) {
	query, args, err := psql.Select(listingColumns...).
		From("listings").
		Where(sq.Eq{"winner_id": userID, "state": string(model.StateClosed)}).
		OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select won listings: %w", err)
	}
	return s.queryListings(ctx, query, args...)
}

func (s *PostgresStore) queryListings(ctx context.Context, query string, args ...any) ([]model.Listing, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]model.Listing, 0)
	for rows.Next() {
		listing, err := s.scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (s *PostgresStore) scanListing(row pgx.Row) (model.Listing, error) {
	var l model.Listing
	var state string
	err := row.Scan(
		&l.ListingID,
		&l.Title,
		&l.Description,
		&l.StartingPrice,
		&l.ImageURL,
		&l.Category,
		&l.OwnerID,
		&state,
		&l.WinnerID,
		&l.CreatedAt,
	)
	if err != nil {
		return model.Listing{}, err
	}
	l.State = model.ListingState(state)
	return l, nil
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
