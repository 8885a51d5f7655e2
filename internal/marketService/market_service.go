package market

import (
	"context"
	"fmt"
	"time"

	"servicehive/internal/fanout"
	"servicehive/internal/marketerrors"
	"servicehive/internal/models"
	"servicehive/internal/store"
	"servicehive/utils"
)

// MarketService owns the gig and bid lifecycle rules: who may change what,
// in which status, and which transitions exist. Multi-record operations
// (hire, cascade delete) run through the store's transactional unit of work.
type MarketService struct {
	db     store.MarketDB
	events fanout.Publisher
}

// NewMarketService creates a new MarketService instance
func NewMarketService(db store.MarketDB, events fanout.Publisher) *MarketService {
	return &MarketService{
		db:     db,
		events: events,
	}
}

// CreateGig validates and stores a new open gig owned by ownerID
func (s *MarketService) CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (models.Gig, error) {
	if ownerID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - missing owner", marketerrors.ErrValidation)
	}
	if title == "" || description == "" {
		return models.Gig{}, fmt.Errorf("service: %w - title and description are required", marketerrors.ErrValidation)
	}
	if budget < 0 {
		return models.Gig{}, fmt.Errorf("service: %w - negative budget", marketerrors.ErrValidation)
	}

	gig := models.Gig{
		GigID:       utils.GenerateID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Budget:      budget,
		Status:      models.GigOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.db.CreateGig(ctx, gig); err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to create gig for owner %s: %w", ownerID, err)
	}

	s.events.Publish(fanout.TopicNewGig, gig)
	return gig, nil
}

// GetGig returns a single gig by id
func (s *MarketService) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	if gigID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - empty gig ID", marketerrors.ErrValidation)
	}
	gig, err := s.db.GetGig(ctx, gigID)
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// UpdateGig applies a partial update to a gig. Only the owner may edit, and
// only while the gig is still open.
func (s *MarketService) UpdateGig(ctx context.Context, actorID, gigID string, patch models.GigPatch) (models.Gig, error) {
	if actorID == "" || gigID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - missing actor or gig ID", marketerrors.ErrValidation)
	}
	if patch.Title != nil && *patch.Title == "" {
		return models.Gig{}, fmt.Errorf("service: %w - title cannot be empty", marketerrors.ErrValidation)
	}
	if patch.Description != nil && *patch.Description == "" {
		return models.Gig{}, fmt.Errorf("service: %w - description cannot be empty", marketerrors.ErrValidation)
	}
	if patch.Budget != nil && *patch.Budget < 0 {
		return models.Gig{}, fmt.Errorf("service: %w - negative budget", marketerrors.ErrValidation)
	}

	gig, err := s.db.GetGig(ctx, gigID)
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	if gig.OwnerID != actorID {
		return models.Gig{}, fmt.Errorf("service: gig %s is not owned by %s: %w", gigID, actorID, marketerrors.ErrPermission)
	}
	if gig.Status != models.GigOpen {
		return models.Gig{}, fmt.Errorf("service: gig %s is not open: %w", gigID, marketerrors.ErrConflict)
	}

	if patch.Title != nil {
		gig.Title = *patch.Title
	}
	if patch.Description != nil {
		gig.Description = *patch.Description
	}
	if patch.Budget != nil {
		gig.Budget = *patch.Budget
	}

	if err := s.db.UpdateGig(ctx, gig); err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to update gig %s: %w", gigID, err)
	}
	return gig, nil
}

// DeleteGig removes a gig and all of its bids in one transaction. Only the
// owner may delete, and only while the gig is still open.
func (s *MarketService) DeleteGig(ctx context.Context, actorID, gigID string) error {
	if actorID == "" || gigID == "" {
		return fmt.Errorf("service: %w - missing actor or gig ID", marketerrors.ErrValidation)
	}

	err := s.db.Atomically(ctx, func(tx store.Tx) error {
		gig, err := tx.GetGig(gigID)
		if err != nil {
			return err
		}
		if gig.OwnerID != actorID {
			return fmt.Errorf("gig %s is not owned by %s: %w", gigID, actorID, marketerrors.ErrPermission)
		}
		if gig.Status != models.GigOpen {
			return fmt.Errorf("gig %s is not open: %w", gigID, marketerrors.ErrConflict)
		}

		if err := tx.DeleteBidsByGig(gigID); err != nil {
			return err
		}
		return tx.DeleteGig(gigID)
	})
	if err != nil {
		return fmt.Errorf("service: failed to delete gig %s: %w", gigID, err)
	}
	return nil
}

// ListOpenGigs returns open gigs, optionally filtered by a case-insensitive
// title search, newest first.
func (s *MarketService) ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error) {
	gigs, err := s.db.ListOpenGigs(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open gigs: %w", err)
	}
	return gigs, nil
}

// ListUserGigs returns all gigs owned by the actor, newest first
func (s *MarketService) ListUserGigs(ctx context.Context, ownerID string) ([]models.Gig, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", marketerrors.ErrValidation)
	}
	gigs, err := s.db.ListGigsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list gigs for owner %s: %w", ownerID, err)
	}
	return gigs, nil
}

// PlaceBid validates and records a freelancer's bid on an open gig. The
// store rejects a second bid from the same freelancer on the same gig, even
// under concurrent submission.
func (s *MarketService) PlaceBid(ctx context.Context, freelancerID, gigID, message string, price float64) (models.Bid, error) {
	if freelancerID == "" || gigID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing freelancer or gig ID", marketerrors.ErrValidation)
	}
	if price < 0 {
		return models.Bid{}, fmt.Errorf("service: %w - negative price", marketerrors.ErrValidation)
	}

	gig, err := s.db.GetGig(ctx, gigID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	if gig.Status != models.GigOpen {
		return models.Bid{}, fmt.Errorf("service: gig %s is not open for bidding: %w", gigID, marketerrors.ErrConflict)
	}

	bid := models.Bid{
		BidID:        utils.GenerateID(),
		GigID:        gigID,
		FreelancerID: freelancerID,
		Message:      message,
		Price:        price,
		Status:       models.BidPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.db.CreateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on gig %s by %s: %w", gigID, freelancerID, err)
	}

	s.events.Publish(fanout.TopicNewBid, bid)
	return bid, nil
}

// UpdateBid applies a partial update to a bid. Only the bidding freelancer
// may edit, and only while the bid is still pending.
func (s *MarketService) UpdateBid(ctx context.Context, actorID, bidID string, patch models.BidPatch) (models.Bid, error) {
	if actorID == "" || bidID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing actor or bid ID", marketerrors.ErrValidation)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return models.Bid{}, fmt.Errorf("service: %w - negative price", marketerrors.ErrValidation)
	}

	bid, err := s.db.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.FreelancerID != actorID {
		return models.Bid{}, fmt.Errorf("service: bid %s does not belong to %s: %w", bidID, actorID, marketerrors.ErrPermission)
	}
	if bid.Status != models.BidPending {
		return models.Bid{}, fmt.Errorf("service: bid %s is not pending: %w", bidID, marketerrors.ErrConflict)
	}

	if patch.Message != nil {
		bid.Message = *patch.Message
	}
	if patch.Price != nil {
		bid.Price = *patch.Price
	}

	if err := s.db.UpdateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}
	return bid, nil
}

// DeleteBid withdraws a pending bid. Only the bidding freelancer may delete.
func (s *MarketService) DeleteBid(ctx context.Context, actorID, bidID string) error {
	if actorID == "" || bidID == "" {
		return fmt.Errorf("service: %w - missing actor or bid ID", marketerrors.ErrValidation)
	}

	bid, err := s.db.GetBid(ctx, bidID)
	if err != nil {
		return fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	if bid.FreelancerID != actorID {
		return fmt.Errorf("service: bid %s does not belong to %s: %w", bidID, actorID, marketerrors.ErrPermission)
	}
	if bid.Status != models.BidPending {
		return fmt.Errorf("service: bid %s is not pending: %w", bidID, marketerrors.ErrConflict)
	}

	if err := s.db.DeleteBid(ctx, bidID); err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}
	return nil
}

// ListBidsForGig returns all bids on a gig, newest first. Only the gig owner
// may see them.
func (s *MarketService) ListBidsForGig(ctx context.Context, actorID, gigID string) ([]models.Bid, error) {
	if actorID == "" || gigID == "" {
		return nil, fmt.Errorf("service: %w - missing actor or gig ID", marketerrors.ErrValidation)
	}

	gig, err := s.db.GetGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	if gig.OwnerID != actorID {
		return nil, fmt.Errorf("service: gig %s is not owned by %s: %w", gigID, actorID, marketerrors.ErrPermission)
	}

	bids, err := s.db.ListBidsByGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for gig %s: %w", gigID, err)
	}
	return bids, nil
}

// ListUserBids returns all bids placed by the actor, newest first
func (s *MarketService) ListUserBids(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	if freelancerID == "" {
		return nil, fmt.Errorf("service: %w - empty freelancer ID", marketerrors.ErrValidation)
	}
	bids, err := s.db.ListBidsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for freelancer %s: %w", freelancerID, err)
	}
	return bids, nil
}
