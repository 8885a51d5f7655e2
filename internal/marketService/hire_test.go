package market

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"servicehive/internal/fanout"
	"servicehive/internal/marketerrors"
	"servicehive/internal/models"
	"servicehive/internal/store/memory"

	"github.com/stretchr/testify/require"
)

// requireHireInvariant asserts the joint post-hire state: gig assigned,
// exactly one hired bid, every other bid rejected.
func requireHireInvariant(t *testing.T, service *MarketService, gigID, winnerBidID string) {
	t.Helper()

	ctx := context.Background()
	gig, err := service.GetGig(ctx, gigID)
	require.NoError(t, err)
	require.Equal(t, models.GigAssigned, gig.Status)

	bids, err := service.ListBidsForGig(ctx, gig.OwnerID, gigID)
	require.NoError(t, err)

	var hired, rejected int
	for _, bid := range bids {
		switch bid.Status {
		case models.BidHired:
			hired++
			require.Equal(t, winnerBidID, bid.BidID)
		case models.BidRejected:
			rejected++
		default:
			t.Fatalf("bid %s left in status %s after hire", bid.BidID, bid.Status)
		}
	}
	require.Equal(t, 1, hired)
	require.Equal(t, len(bids)-1, rejected)
}

func TestMarketService_Hire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("hire_settles_all_bids_and_notifies_winner", func(t *testing.T) {
		t.Parallel()
		service, _, recorder := newTestService()

		gig, err := service.CreateGig(ctx, "user1", "Build site", "a web site", 100)
		require.NoError(t, err)
		winner, err := service.PlaceBid(ctx, "user2", gig.GigID, "pick me", 80)
		require.NoError(t, err)
		_, err = service.PlaceBid(ctx, "user3", gig.GigID, "me too", 90)
		require.NoError(t, err)

		hired, err := service.Hire(ctx, "user1", winner.BidID)
		require.NoError(t, err)
		require.Equal(t, models.BidHired, hired.Status)

		requireHireInvariant(t, service, gig.GigID, winner.BidID)

		events := recorder.byTopic(fanout.TopicFreelancerHired)
		require.Len(t, events, 1)
		notice, ok := events[0].Payload.(fanout.HiredNotice)
		require.True(t, ok)
		require.Equal(t, "user2", notice.FreelancerID)
		require.Equal(t, "Build site", notice.GigTitle)
		require.Equal(t, `You have been hired for "Build site"!`, notice.Message)
	})

	t.Run("missing_bid", func(t *testing.T) {
		t.Parallel()
		service, _, _ := newTestService()

		_, err := service.Hire(ctx, "user1", "bidX")
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})

	t.Run("empty_actor", func(t *testing.T) {
		t.Parallel()
		service, _, _ := newTestService()

		_, err := service.Hire(ctx, "", "bid1")
		require.ErrorIs(t, err, marketerrors.ErrValidation)
	})

	t.Run("non_owner_cannot_hire", func(t *testing.T) {
		t.Parallel()
		service, _, recorder := newTestService()

		gig, err := service.CreateGig(ctx, "user1", "Build site", "a web site", 100)
		require.NoError(t, err)
		bid, err := service.PlaceBid(ctx, "user2", gig.GigID, "pick me", 80)
		require.NoError(t, err)

		_, err = service.Hire(ctx, "user2", bid.BidID)
		require.ErrorIs(t, err, marketerrors.ErrPermission)

		// Nothing moved and nobody was notified
		unchanged, err := service.GetGig(ctx, gig.GigID)
		require.NoError(t, err)
		require.Equal(t, models.GigOpen, unchanged.Status)
		require.Empty(t, recorder.byTopic(fanout.TopicFreelancerHired))
	})

	t.Run("second_hire_is_a_conflict", func(t *testing.T) {
		t.Parallel()
		service, _, recorder := newTestService()

		gig, err := service.CreateGig(ctx, "user1", "Build site", "a web site", 100)
		require.NoError(t, err)
		winner, err := service.PlaceBid(ctx, "user2", gig.GigID, "pick me", 80)
		require.NoError(t, err)
		loser, err := service.PlaceBid(ctx, "user3", gig.GigID, "me too", 90)
		require.NoError(t, err)

		_, err = service.Hire(ctx, "user1", winner.BidID)
		require.NoError(t, err)

		_, err = service.Hire(ctx, "user1", loser.BidID)
		require.ErrorIs(t, err, marketerrors.ErrConflict)
		_, err = service.Hire(ctx, "user1", winner.BidID)
		require.ErrorIs(t, err, marketerrors.ErrConflict)

		requireHireInvariant(t, service, gig.GigID, winner.BidID)
		require.Len(t, recorder.byTopic(fanout.TopicFreelancerHired), 1)
	})

	t.Run("hire_after_cascade_delete", func(t *testing.T) {
		t.Parallel()
		service, _, _ := newTestService()

		gig, err := service.CreateGig(ctx, "user1", "Build site", "a web site", 100)
		require.NoError(t, err)
		bid, err := service.PlaceBid(ctx, "user2", gig.GigID, "pick me", 80)
		require.NoError(t, err)
		require.NoError(t, service.DeleteGig(ctx, "user1", gig.GigID))

		_, err = service.Hire(ctx, "user1", bid.BidID)
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})
}

// Two owners racing to hire different bids on the same gig: exactly one
// commit, and the losing call must leave no trace.
func TestMarketService_Hire_ConcurrentRace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for iter := 0; iter < 20; iter++ {
		iter := iter
		t.Run(fmt.Sprintf("round_%d", iter), func(t *testing.T) {
			t.Parallel()

			db := memory.NewMemoryStore()
			recorder := &eventRecorder{}
			service := NewMarketService(db, recorder)

			gig, err := service.CreateGig(ctx, "user1", "Build site", "a web site", 100)
			require.NoError(t, err)

			bidIDs := make([]string, 4)
			for i := range bidIDs {
				bid, err := service.PlaceBid(ctx, fmt.Sprintf("freelancer%d", i), gig.GigID, "pick me", float64(50+i))
				require.NoError(t, err)
				bidIDs[i] = bid.BidID
			}

			var wg sync.WaitGroup
			errs := make([]error, 2)
			for i := 0; i < 2; i++ {
				wg.Add(1)
				i := i
				go func() {
					defer wg.Done()
					_, errs[i] = service.Hire(ctx, "user1", bidIDs[i])
				}()
			}
			wg.Wait()

			var winnerBidID string
			var successes, conflicts int
			for i, err := range errs {
				switch {
				case err == nil:
					successes++
					winnerBidID = bidIDs[i]
				case errors.Is(err, marketerrors.ErrConflict):
					conflicts++
				default:
					t.Fatalf("unexpected hire error: %v", err)
				}
			}
			require.Equal(t, 1, successes, "exactly one concurrent hire must commit")
			require.Equal(t, 1, conflicts, "the losing hire must see a conflict")

			requireHireInvariant(t, service, gig.GigID, winnerBidID)
			require.Len(t, recorder.byTopic(fanout.TopicFreelancerHired), 1)
		})
	}
}
