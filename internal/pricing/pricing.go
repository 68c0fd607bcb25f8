// Package pricing computes listing prices from bid history. All functions
// are deterministic and side-effect-free; the ledger store is the only
// source of the bids they are given.
package pricing

import (
	"github.com/shopspring/decimal"

	model "auction-house/internal/models"
)

// CurrentPrice returns the highest bid amount among the given bids, or the
// listing's starting price when no bids exist. The result is never below
// the starting price.
func CurrentPrice(listing model.Listing, bids []model.Bid) decimal.Decimal {
	winning, ok := WinningBid(bids)
	if !ok || winning.Amount.LessThan(listing.StartingPrice) {
		return listing.StartingPrice
	}
	return winning.Amount
}

// WinningBid returns the bid with the highest amount. Amount ties go to the
// earliest bid: first by timestamp, then by store sequence for bids recorded
// within the same instant. The second return value is false when there are
// no bids.
func WinningBid(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) {
			winning = b
			continue
		}
		if b.Amount.Equal(winning.Amount) && earlier(b, winning) {
			winning = b
		}
	}
	return winning, true
}

func earlier(a, b model.Bid) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Sequence < b.Sequence
}
