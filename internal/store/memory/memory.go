package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"servicehive/internal/marketerrors"
	"servicehive/internal/models"
	"servicehive/internal/store"
)

// MemoryStore is a concurrency-safe in-memory implementation of
// store.MarketDB. Transactions stage their writes on copies of the maps and
// swap them in on commit while holding the write lock, so readers never
// observe a half-applied transaction and two transactions never interleave.
type MemoryStore struct {
	mu    sync.RWMutex
	gigs  map[string]models.Gig // key: gigID
	bids  map[string]models.Bid // key: bidID
	pairs map[string]string     // key: gigID+"/"+freelancerID -> bidID
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		gigs:  make(map[string]models.Gig),
		bids:  make(map[string]models.Bid),
		pairs: make(map[string]string),
	}
}

func pairKey(gigID, freelancerID string) string {
	return gigID + "/" + freelancerID
}

// CreateGig stores a new gig record
func (s *MemoryStore) CreateGig(ctx context.Context, gig models.Gig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gigs[gig.GigID]; ok {
		return fmt.Errorf("create gig %s: id already exists: %w", gig.GigID, marketerrors.ErrConflict)
	}
	s.gigs[gig.GigID] = gig
	return nil
}

// GetGig returns a single gig by id
func (s *MemoryStore) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gig, ok := s.gigs[gigID]
	if !ok {
		return models.Gig{}, fmt.Errorf("gig %s: %w", gigID, marketerrors.ErrNotFound)
	}
	return gig, nil
}

// UpdateGig overwrites an existing gig record
func (s *MemoryStore) UpdateGig(ctx context.Context, gig models.Gig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gigs[gig.GigID]; !ok {
		return fmt.Errorf("update gig %s: %w", gig.GigID, marketerrors.ErrNotFound)
	}
	s.gigs[gig.GigID] = gig
	return nil
}

// ListOpenGigs returns all open gigs, optionally filtered by a
// case-insensitive substring match on the title, newest first.
func (s *MemoryStore) ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(search)
	gigs := make([]models.Gig, 0)
	for _, gig := range s.gigs {
		if gig.Status != models.GigOpen {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(gig.Title), needle) {
			continue
		}
		gigs = append(gigs, gig)
	}
	sortGigsNewestFirst(gigs)
	return gigs, nil
}

// ListGigsByOwner returns all gigs owned by a user, newest first
func (s *MemoryStore) ListGigsByOwner(ctx context.Context, ownerID string) ([]models.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gigs := make([]models.Gig, 0)
	for _, gig := range s.gigs {
		if gig.OwnerID == ownerID {
			gigs = append(gigs, gig)
		}
	}
	sortGigsNewestFirst(gigs)
	return gigs, nil
}

// CreateBid stores a new bid. The (gig, freelancer) uniqueness check and the
// insert happen under the same lock, so of two racing inserts for the same
// pair exactly one succeeds and the other gets ErrConflict.
func (s *MemoryStore) CreateBid(ctx context.Context, bid models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gigs[bid.GigID]; !ok {
		return fmt.Errorf("create bid: gig %s: %w", bid.GigID, marketerrors.ErrNotFound)
	}
	key := pairKey(bid.GigID, bid.FreelancerID)
	if _, ok := s.pairs[key]; ok {
		return fmt.Errorf("create bid: freelancer %s already bid on gig %s: %w",
			bid.FreelancerID, bid.GigID, marketerrors.ErrConflict)
	}
	s.bids[bid.BidID] = bid
	s.pairs[key] = bid.BidID
	return nil
}

// GetBid returns a single bid by id
func (s *MemoryStore) GetBid(ctx context.Context, bidID string) (models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return models.Bid{}, fmt.Errorf("bid %s: %w", bidID, marketerrors.ErrNotFound)
	}
	return bid, nil
}

// UpdateBid overwrites an existing bid record
func (s *MemoryStore) UpdateBid(ctx context.Context, bid models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bids[bid.BidID]; !ok {
		return fmt.Errorf("update bid %s: %w", bid.BidID, marketerrors.ErrNotFound)
	}
	s.bids[bid.BidID] = bid
	return nil
}

// DeleteBid removes a bid record
func (s *MemoryStore) DeleteBid(ctx context.Context, bidID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return fmt.Errorf("delete bid %s: %w", bidID, marketerrors.ErrNotFound)
	}
	delete(s.bids, bidID)
	delete(s.pairs, pairKey(bid.GigID, bid.FreelancerID))
	return nil
}

// ListBidsByGig returns all bids for a gig, newest first
func (s *MemoryStore) ListBidsByGig(ctx context.Context, gigID string) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listBids(s.bids, func(b models.Bid) bool { return b.GigID == gigID }), nil
}

// ListBidsByFreelancer returns all bids placed by a freelancer, newest first
func (s *MemoryStore) ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listBids(s.bids, func(b models.Bid) bool { return b.FreelancerID == freelancerID }), nil
}

// Atomically runs fn against a staged copy of the store under the write
// lock. The copy is swapped in only when fn succeeds; any error discards it.
func (s *MemoryStore) Atomically(ctx context.Context, fn func(tx store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted: %v: %w", err, marketerrors.ErrStore)
	}

	tx := &memTx{
		gigs:  make(map[string]models.Gig, len(s.gigs)),
		bids:  make(map[string]models.Bid, len(s.bids)),
		pairs: make(map[string]string, len(s.pairs)),
	}
	for id, gig := range s.gigs {
		tx.gigs[id] = gig
	}
	for id, bid := range s.bids {
		tx.bids[id] = bid
	}
	for key, id := range s.pairs {
		tx.pairs[key] = id
	}

	if err := fn(tx); err != nil {
		return err
	}

	s.gigs = tx.gigs
	s.bids = tx.bids
	s.pairs = tx.pairs
	return nil
}

// memTx implements store.Tx over staged map copies
type memTx struct {
	gigs  map[string]models.Gig
	bids  map[string]models.Bid
	pairs map[string]string
}

func (tx *memTx) GetGig(gigID string) (models.Gig, error) {
	gig, ok := tx.gigs[gigID]
	if !ok {
		return models.Gig{}, fmt.Errorf("gig %s: %w", gigID, marketerrors.ErrNotFound)
	}
	return gig, nil
}

func (tx *memTx) UpdateGig(gig models.Gig) error {
	if _, ok := tx.gigs[gig.GigID]; !ok {
		return fmt.Errorf("update gig %s: %w", gig.GigID, marketerrors.ErrNotFound)
	}
	tx.gigs[gig.GigID] = gig
	return nil
}

func (tx *memTx) DeleteGig(gigID string) error {
	if _, ok := tx.gigs[gigID]; !ok {
		return fmt.Errorf("delete gig %s: %w", gigID, marketerrors.ErrNotFound)
	}
	delete(tx.gigs, gigID)
	return nil
}

func (tx *memTx) GetBid(bidID string) (models.Bid, error) {
	bid, ok := tx.bids[bidID]
	if !ok {
		return models.Bid{}, fmt.Errorf("bid %s: %w", bidID, marketerrors.ErrNotFound)
	}
	return bid, nil
}

func (tx *memTx) UpdateBid(bid models.Bid) error {
	if _, ok := tx.bids[bid.BidID]; !ok {
		return fmt.Errorf("update bid %s: %w", bid.BidID, marketerrors.ErrNotFound)
	}
	tx.bids[bid.BidID] = bid
	return nil
}

func (tx *memTx) ListBidsByGig(gigID string) ([]models.Bid, error) {
	return listBids(tx.bids, func(b models.Bid) bool { return b.GigID == gigID }), nil
}

func (tx *memTx) DeleteBidsByGig(gigID string) error {
	for id, bid := range tx.bids {
		if bid.GigID == gigID {
			delete(tx.bids, id)
			delete(tx.pairs, pairKey(bid.GigID, bid.FreelancerID))
		}
	}
	return nil
}

func listBids(bids map[string]models.Bid, keep func(models.Bid) bool) []models.Bid {
	out := make([]models.Bid, 0)
	for _, bid := range bids {
		if keep(bid) {
			out = append(out, bid)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].BidID < out[j].BidID
	})
	return out
}

func sortGigsNewestFirst(gigs []models.Gig) {
	sort.Slice(gigs, func(i, j int) bool {
		if !gigs[i].CreatedAt.Equal(gigs[j].CreatedAt) {
			return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
		}
		return gigs[i].GigID < gigs[j].GigID
	})
}
