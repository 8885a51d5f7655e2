package market

import (
	"context"
	"fmt"

	"servicehive/internal/fanout"
	"servicehive/internal/marketerrors"
	"servicehive/internal/models"
	"servicehive/internal/store"
	"servicehive/utils"
)

// Hire accepts one bid on behalf of the gig owner: the gig moves to
// assigned, the chosen bid to hired, and every other bid on the gig to
// rejected, all in one transaction. Preconditions are checked against the
// state read inside the transaction, not before it, so a hire that raced a
// competing hire or a cascade delete aborts cleanly instead of committing on
// stale reads. Of two concurrent hires for the same gig exactly one commits;
// the other finds the gig no longer open and returns ErrConflict with its
// target bid untouched.
func (s *MarketService) Hire(ctx context.Context, actorID, bidID string) (models.Bid, error) {
	if actorID == "" || bidID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing actor or bid ID", marketerrors.ErrValidation)
	}

	var hired models.Bid
	var gig models.Gig

	err := s.db.Atomically(ctx, func(tx store.Tx) error {
		bid, err := tx.GetBid(bidID)
		if err != nil {
			return err
		}

		gig, err = tx.GetGig(bid.GigID)
		if err != nil {
			return err
		}
		if gig.OwnerID != actorID {
			return fmt.Errorf("gig %s is not owned by %s: %w", gig.GigID, actorID, marketerrors.ErrPermission)
		}
		if gig.Status != models.GigOpen {
			return fmt.Errorf("gig %s is already assigned: %w", gig.GigID, marketerrors.ErrConflict)
		}

		gig.Status = models.GigAssigned
		if err := tx.UpdateGig(gig); err != nil {
			return err
		}

		bid.Status = models.BidHired
		if err := tx.UpdateBid(bid); err != nil {
			return err
		}

		others, err := tx.ListBidsByGig(bid.GigID)
		if err != nil {
			return err
		}
		for _, other := range others {
			if other.BidID == bid.BidID {
				continue
			}
			other.Status = models.BidRejected
			if err := tx.UpdateBid(other); err != nil {
				return err
			}
		}

		hired = bid
		return nil
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to hire via bid %s: %w", bidID, err)
	}

	// The hire is durable at this point; the notification is best-effort
	// and must not affect the outcome.
	s.events.Publish(fanout.TopicFreelancerHired, fanout.HiredNotice{
		FreelancerID: hired.FreelancerID,
		GigTitle:     gig.Title,
		Message:      fmt.Sprintf("You have been hired for %q!", gig.Title),
	})
	utils.Info("freelancer hired", map[string]any{
		"gig_id":        gig.GigID,
		"bid_id":        hired.BidID,
		"freelancer_id": hired.FreelancerID,
	})

	return hired, nil
}
