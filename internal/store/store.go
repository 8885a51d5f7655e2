package store

import (
	"context"

	"servicehive/internal/models"
)

// MarketDB defines the gig and bid storage interface for the marketplace.
// Single-record operations are individually atomic; multi-record operations
// (hire, cascade delete) run inside Atomically so that either every write
// commits or none do.
//
// CreateBid must enforce the one-bid-per-(gig, freelancer) rule inside the
// store, so that two racing inserts for the same pair cannot both succeed;
// the loser receives marketerrors.ErrConflict.
type MarketDB interface {
	CreateGig(ctx context.Context, gig models.Gig) error
	GetGig(ctx context.Context, gigID string) (models.Gig, error)
	UpdateGig(ctx context.Context, gig models.Gig) error
	ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error)
	ListGigsByOwner(ctx context.Context, ownerID string) ([]models.Gig, error)

	CreateBid(ctx context.Context, bid models.Bid) error
	GetBid(ctx context.Context, bidID string) (models.Bid, error)
	UpdateBid(ctx context.Context, bid models.Bid) error
	DeleteBid(ctx context.Context, bidID string) error
	ListBidsByGig(ctx context.Context, gigID string) ([]models.Bid, error)
	ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]models.Bid, error)

	// Atomically runs fn inside one isolated transaction. If fn returns an
	// error the transaction rolls back with no observable side effects and
	// that error is returned unchanged. Reads through the Tx observe
	// committed state as of the transaction, so callers re-validate
	// preconditions inside fn rather than before it.
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the view of the store available inside one atomic unit of work.
type Tx interface {
	GetGig(gigID string) (models.Gig, error)
	UpdateGig(gig models.Gig) error
	DeleteGig(gigID string) error

	GetBid(bidID string) (models.Bid, error)
	UpdateBid(bid models.Bid) error
	ListBidsByGig(gigID string) ([]models.Bid, error)
	DeleteBidsByGig(gigID string) error
}
