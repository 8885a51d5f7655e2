package handler

import (
	"context"
	"net/http"

	"servicehive/internal/models"
	"servicehive/services/market/helpers"
	"servicehive/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=gig_handler.go -destination=mock_service.go -package=handler

type MarketServiceInterface interface {
	CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (models.Gig, error)
	GetGig(ctx context.Context, gigID string) (models.Gig, error)
	UpdateGig(ctx context.Context, actorID, gigID string, patch models.GigPatch) (models.Gig, error)
	DeleteGig(ctx context.Context, actorID, gigID string) error
	ListOpenGigs(ctx context.Context, search string) ([]models.Gig, error)
	ListUserGigs(ctx context.Context, ownerID string) ([]models.Gig, error)
	PlaceBid(ctx context.Context, freelancerID, gigID, message string, price float64) (models.Bid, error)
	UpdateBid(ctx context.Context, actorID, bidID string, patch models.BidPatch) (models.Bid, error)
	DeleteBid(ctx context.Context, actorID, bidID string) error
	ListBidsForGig(ctx context.Context, actorID, gigID string) ([]models.Bid, error)
	ListUserBids(ctx context.Context, freelancerID string) ([]models.Bid, error)
	Hire(ctx context.Context, actorID, bidID string) (models.Bid, error)
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// CreateGigHandler handles POST /gigs
func (h *MarketHandler) CreateGigHandler(c *gin.Context) {
	var req helpers.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGigHandler", err)
		return
	}

	gig, err := h.service.CreateGig(c.Request.Context(), helpers.ActorID(c), req.Title, req.Description, *req.Budget)
	if err != nil {
		helpers.RespondError(c, "CreateGigHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToGigResponse(gig), "gig created successfully")
	helpers.LogSuccess("CreateGigHandler", "gig created successfully", map[string]any{
		"gig_id":   gig.GigID,
		"owner_id": gig.OwnerID,
		"budget":   gig.Budget,
	})
}

// ListOpenGigsHandler handles GET /gigs?search=
func (h *MarketHandler) ListOpenGigsHandler(c *gin.Context) {
	search := c.Query("search")

	gigs, err := h.service.ListOpenGigs(c.Request.Context(), search)
	if err != nil {
		helpers.RespondError(c, "ListOpenGigsHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponses(gigs), "gigs retrieved successfully")
	helpers.LogSuccess("ListOpenGigsHandler", "gigs retrieved successfully", map[string]any{
		"search": search,
		"count":  len(gigs),
	})
}

// ListUserGigsHandler handles GET /gigs/user
func (h *MarketHandler) ListUserGigsHandler(c *gin.Context) {
	actorID := helpers.ActorID(c)

	gigs, err := h.service.ListUserGigs(c.Request.Context(), actorID)
	if err != nil {
		helpers.RespondError(c, "ListUserGigsHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponses(gigs), "gigs retrieved successfully")
	helpers.LogSuccess("ListUserGigsHandler", "gigs retrieved successfully", map[string]any{
		"owner_id": actorID,
		"count":    len(gigs),
	})
}

// GetGigHandler handles GET /gigs/:gig_id
func (h *MarketHandler) GetGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")

	gig, err := h.service.GetGig(c.Request.Context(), gigID)
	if err != nil {
		helpers.RespondError(c, "GetGigHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponse(gig), "gig retrieved successfully")
}

// UpdateGigHandler handles PUT /gigs/:gig_id
func (h *MarketHandler) UpdateGigHandler(c *gin.Context) {
	var req helpers.UpdateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateGigHandler", err)
		return
	}

	gigID := c.Param("gig_id")
	patch := models.GigPatch{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	}

	gig, err := h.service.UpdateGig(c.Request.Context(), helpers.ActorID(c), gigID, patch)
	if err != nil {
		helpers.RespondError(c, "UpdateGigHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToGigResponse(gig), "gig updated successfully")
	helpers.LogSuccess("UpdateGigHandler", "gig updated successfully", map[string]any{
		"gig_id": gig.GigID,
	})
}

// DeleteGigHandler handles DELETE /gigs/:gig_id
func (h *MarketHandler) DeleteGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")

	if err := h.service.DeleteGig(c.Request.Context(), helpers.ActorID(c), gigID); err != nil {
		helpers.RespondError(c, "DeleteGigHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "gig deleted successfully")
	helpers.LogSuccess("DeleteGigHandler", "gig deleted successfully", map[string]any{
		"gig_id": gigID,
	})
}
