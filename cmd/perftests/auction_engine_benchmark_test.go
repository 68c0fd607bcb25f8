package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/ledger"
	model "auction-house/internal/models"

	"github.com/shopspring/decimal"
)

func seedListing(listingID string) model.Listing {
	return model.Listing{
		ListingID:     listingID,
		Title:         fmt.Sprintf("%s title", listingID),
		Description:   "benchmark listing",
		StartingPrice: decimal.RequireFromString("50.00"),
		OwnerID:       "owner1",
		State:         model.StateOpen,
		CreatedAt:     time.Now().UTC(),
	}
}

// Benchmark 1: PlaceBid - isolated listings (low contention)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	svc := auction.NewAuctionService(store)

	for i := 0; i < b.N; i++ {
		if err := store.CreateListing(ctx, seedListing(fmt.Sprintf("listing_%d", i))); err != nil {
			b.Fatalf("failed to seed listing: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("user_%d", i)
		listingID := fmt.Sprintf("listing_%d", i)
		amount := fmt.Sprintf("%d.00", 51+rand.Intn(100))
		if _, err := svc.PlaceBid(ctx, listingID, bidderID, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - shared listing (high contention)
func Benchmark_PlaceBid_ConcurrentSharedListing(b *testing.B) {
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	svc := auction.NewAuctionService(store)

	if err := store.CreateListing(ctx, seedListing("shared_listing_1")); err != nil {
		b.Fatalf("failed to seed listing: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(ctx, "shared_listing_1", bidderID, fmt.Sprintf("%d.00", nextBid))
		}
	})
}

// Benchmark 3: GetCurrentPrice - single-threaded
func Benchmark_GetCurrentPrice_SingleThreaded(b *testing.B) {
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	svc := auction.NewAuctionService(store)

	for i := 0; i < b.N; i++ {
		listingID := fmt.Sprintf("listing_%d", i)
		if err := store.CreateListing(ctx, seedListing(listingID)); err != nil {
			b.Fatalf("failed to seed listing: %v", err)
		}
		for j := 0; j < 10; j++ {
			bidderID := fmt.Sprintf("user_%d_%d", i, j)
			_, _ = svc.PlaceBid(ctx, listingID, bidderID, fmt.Sprintf("%d.00", 51+j*10))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetCurrentPrice(ctx, fmt.Sprintf("listing_%d", i)); err != nil {
			b.Fatalf("failed to get current price: %v", err)
		}
	}
}

// Benchmark 4: GetWinningBid - concurrent readers on a shared listing
func Benchmark_GetWinningBid_ConcurrentSharedListing(b *testing.B) {
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	svc := auction.NewAuctionService(store)

	if err := store.CreateListing(ctx, seedListing("shared_listing_1")); err != nil {
		b.Fatalf("failed to seed listing: %v", err)
	}
	for j := 0; j < 100; j++ {
		bidderID := fmt.Sprintf("user_%d", j)
		_, _ = svc.PlaceBid(ctx, "shared_listing_1", bidderID, fmt.Sprintf("%d.00", 51+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetWinningBid(ctx, "shared_listing_1"); err != nil {
				b.Fatalf("failed to get winning bid: %v", err)
			}
		}
	})
}

// Benchmark 5: mixed workload, 70% readers 30% writers
func Benchmark_MixedWorkload_SharedListing(b *testing.B) {
	ctx := context.Background()
	store := ledger.NewMemoryStore()
	svc := auction.NewAuctionService(store)

	if err := store.CreateListing(ctx, seedListing("shared_listing_1")); err != nil {
		b.Fatalf("failed to seed listing: %v", err)
	}
	for j := 0; j < 50; j++ {
		bidderID := fmt.Sprintf("user_seed_%d", j)
		_, _ = svc.PlaceBid(ctx, "shared_listing_1", bidderID, fmt.Sprintf("%d.00", 51+j*2))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				bidderID := fmt.Sprintf("user_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid(ctx, "shared_listing_1", bidderID, fmt.Sprintf("%d.00", nextBid))
			default:
				_, _ = svc.GetCurrentPrice(ctx, "shared_listing_1")
			}
		}
	})
}
