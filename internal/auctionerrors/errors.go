package auctionerrors

import "errors"

// Lookup errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// Business rule errors
var (
	ErrValidation   = errors.New("invalid request")
	ErrInvalidState = errors.New("operation not valid for auction state")
	ErrPriceTooLow  = errors.New("bid amount must be higher than current price")
	ErrSelfBid      = errors.New("cannot bid on your own auction")
)

// Auth errors
var (
	ErrUnauthorized       = errors.New("missing or invalid token")
	ErrForbidden          = errors.New("not authorized for this resource")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Cross-service errors
var (
	// ErrUnavailable marks a transport or timeout failure talking to a
	// peer service, as opposed to a business error the peer reported.
	ErrUnavailable = errors.New("service unavailable")

	// ErrSettlementIncomplete means the bid service could not be reached
	// while settling; the auction stays live and settlement may be retried.
	ErrSettlementIncomplete = errors.New("settlement incomplete: bid data unavailable")
)
