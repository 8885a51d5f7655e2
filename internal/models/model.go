package models

import "time"

// GigStatus is the lifecycle state of a gig. A gig starts open and moves to
// assigned exactly once, when its owner hires a freelancer.
type GigStatus string

const (
	GigOpen     GigStatus = "open"
	GigAssigned GigStatus = "assigned"
)

// BidStatus is the lifecycle state of a bid. Pending bids become hired or
// rejected atomically during a hire and never transition again.
type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidHired    BidStatus = "hired"
	BidRejected BidStatus = "rejected"
)

// Gig represents a posted unit of work with a budget
type Gig struct {
	GigID       string    `json:"gig_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Status      GigStatus `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid represents a freelancer's offer to perform a gig's work
type Bid struct {
	BidID        string    `json:"bid_id"`
	GigID        string    `json:"gig_id"`
	FreelancerID string    `json:"freelancer_id"`
	Message      string    `json:"message"`
	Price        float64   `json:"price"`
	Status       BidStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// GigPatch carries a partial gig update. A nil field means "leave unchanged";
// a non-nil field always overwrites, so an explicit empty string or zero is a
// real update and is validated like any other value.
type GigPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
}

// BidPatch carries a partial bid update with the same presence semantics as
// GigPatch.
type BidPatch struct {
	Message *string  `json:"message"`
	Price   *float64 `json:"price"`
}
