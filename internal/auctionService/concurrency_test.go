package auction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*AuctionService, string) {
	t.Helper()

	service := NewAuctionService(ledger.NewMemoryStore())
	listing, err := service.CreateListing(context.Background(), NewListing{
		Title:         "title1",
		Description:   "description1",
		StartingPrice: "10.00",
		OwnerID:       "owner1",
	})
	require.NoError(t, err)
	return service, listing.ListingID
}

// Concurrent bidders race on one listing. Every accepted bid must have been
// strictly above the price at the moment it was recorded, so replaying the
// history in sequence order must show strictly increasing amounts.
func TestAuctionService_ConcurrentBids(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, listingID := newTestService(t)

	bidderCount := 40
	var wg sync.WaitGroup
	accepted := make([]bool, bidderCount)

	for i := 0; i < bidderCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			amount := fmt.Sprintf("%d.00", 11+i)
			_, err := service.PlaceBid(ctx, listingID, fmt.Sprintf("user-%d", i), amount)
			if err == nil {
				accepted[i] = true
				return
			}
			require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)
		}()
	}
	wg.Wait()

	// the highest amount can never lose the race
	require.True(t, accepted[bidderCount-1])

	bids, err := service.GetBids(ctx, listingID)
	require.NoError(t, err)
	require.NotEmpty(t, bids)

	acceptedCount := 0
	for _, ok := range accepted {
		if ok {
			acceptedCount++
		}
	}
	require.Len(t, bids, acceptedCount)

	prev := decimal.Zero
	for _, b := range bids {
		require.True(t, b.Amount.GreaterThan(prev), "amounts must strictly increase: %s after %s", b.Amount, prev)
		prev = b.Amount
	}

	price, err := service.GetCurrentPrice(ctx, listingID)
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.RequireFromString(fmt.Sprintf("%d.00", 10+bidderCount))))
}

// Bids racing against a close must either land before the close or be
// rejected with AuctionClosed. No bid may appear after the winner is fixed.
func TestAuctionService_BidCloseRace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, listingID := newTestService(t)

	_, err := service.PlaceBid(ctx, listingID, "user0", "11.00")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			amount := fmt.Sprintf("%d.00", 12+i)
			_, err := service.PlaceBid(ctx, listingID, fmt.Sprintf("user-%d", i), amount)
			if err != nil {
				ok := errors.Is(err, auctionerrors.ErrAuctionClosed) || errors.Is(err, auctionerrors.ErrBidTooLow)
				require.True(t, ok, "unexpected error: %v", err)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := service.CloseAuction(ctx, listingID, "owner1")
		require.NoError(t, err)
	}()
	wg.Wait()

	listing, err := service.GetListing(ctx, listingID)
	require.NoError(t, err)
	require.NotEmpty(t, listing.WinnerID)

	// the winner must hold the highest recorded bid
	winning, err := service.GetWinningBid(ctx, listingID)
	require.NoError(t, err)
	require.Equal(t, listing.WinnerID, winning.BidderID)

	bids, err := service.GetBids(ctx, listingID)
	require.NoError(t, err)
	for _, b := range bids {
		require.True(t, winning.Amount.GreaterThanOrEqual(b.Amount))
	}
}

// Reopening keeps the bid history and the price it implies.
func TestAuctionService_ReopenRetainsHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, listingID := newTestService(t)

	_, err := service.PlaceBid(ctx, listingID, "user1", "15.00")
	require.NoError(t, err)
	_, err = service.PlaceBid(ctx, listingID, "user2", "20.00")
	require.NoError(t, err)

	closed, err := service.CloseAuction(ctx, listingID, "owner1")
	require.NoError(t, err)
	require.Equal(t, "user2", closed.WinnerID)

	_, err = service.PlaceBid(ctx, listingID, "user3", "30.00")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionClosed)

	reopened, err := service.ReopenAuction(ctx, listingID, "owner1")
	require.NoError(t, err)
	require.Empty(t, reopened.WinnerID)

	price, err := service.GetCurrentPrice(ctx, listingID)
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.RequireFromString("20.00")))

	// new bids must still clear the retained history
	_, err = service.PlaceBid(ctx, listingID, "user3", "20.00")
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	bid, err := service.PlaceBid(ctx, listingID, "user3", "25.00")
	require.NoError(t, err)
	require.Equal(t, "user3", bid.BidderID)

	bids, err := service.GetBids(ctx, listingID)
	require.NoError(t, err)
	require.Len(t, bids, 3)
}

// Closing twice and reopening twice are no-ops the second time.
func TestAuctionService_LifecycleIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, listingID := newTestService(t)

	_, err := service.PlaceBid(ctx, listingID, "user1", "15.00")
	require.NoError(t, err)

	first, err := service.CloseAuction(ctx, listingID, "owner1")
	require.NoError(t, err)
	second, err := service.CloseAuction(ctx, listingID, "owner1")
	require.NoError(t, err)
	require.Equal(t, first.WinnerID, second.WinnerID)

	reopened, err := service.ReopenAuction(ctx, listingID, "owner1")
	require.NoError(t, err)
	again, err := service.ReopenAuction(ctx, listingID, "owner1")
	require.NoError(t, err)
	require.Equal(t, reopened.State, again.State)
	require.Empty(t, again.WinnerID)
}
