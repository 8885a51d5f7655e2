package helpers

// Request/Response DTOs
type CreateGigRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Budget      *float64 `json:"budget" binding:"required,gte=0"`
}

// UpdateGigRequest uses pointer fields so that an omitted field and an
// explicitly supplied zero value stay distinguishable.
type UpdateGigRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
}

type PlaceBidRequest struct {
	GigID   string   `json:"gig_id" binding:"required"`
	Message string   `json:"message"`
	Price   *float64 `json:"price" binding:"required,gte=0"`
}

type UpdateBidRequest struct {
	Message *string  `json:"message"`
	Price   *float64 `json:"price" binding:"omitempty,gte=0"`
}

type GigResponse struct {
	GigID       string  `json:"gig_id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type BidResponse struct {
	BidID        string  `json:"bid_id"`
	GigID        string  `json:"gig_id"`
	FreelancerID string  `json:"freelancer_id"`
	Message      string  `json:"message"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
