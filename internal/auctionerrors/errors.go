package auctionerrors

import "errors"

// Store-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingExists   = errors.New("listing already exists")
	ErrNoBids          = errors.New("no bids found for listing")
)

// Business logic errors
var (
	ErrAuctionClosed   = errors.New("auction is closed")
	ErrBidTooLow       = errors.New("bid must be greater than the current price")
	ErrMalformedAmount = errors.New("malformed amount")
	ErrForbidden       = errors.New("only the listing owner may do this")
)
