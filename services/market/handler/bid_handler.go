package handler

import (
	"net/http"

	"servicehive/internal/models"
	"servicehive/services/market/helpers"
	"servicehive/utils"

	"github.com/gin-gonic/gin"
)

// PlaceBidHandler handles POST /bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), helpers.ActorID(c), req.GigID, req.Message, *req.Price)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":        bid.BidID,
		"gig_id":        bid.GigID,
		"freelancer_id": bid.FreelancerID,
		"price":         bid.Price,
	})
}

// ListUserBidsHandler handles GET /bids/user
func (h *MarketHandler) ListUserBidsHandler(c *gin.Context) {
	actorID := helpers.ActorID(c)

	bids, err := h.service.ListUserBids(c.Request.Context(), actorID)
	if err != nil {
		helpers.RespondError(c, "ListUserBidsHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("ListUserBidsHandler", "bids retrieved successfully", map[string]any{
		"freelancer_id": actorID,
		"count":         len(bids),
	})
}

// ListBidsForGigHandler handles GET /gigs/:gig_id/bids
func (h *MarketHandler) ListBidsForGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")

	bids, err := h.service.ListBidsForGig(c.Request.Context(), helpers.ActorID(c), gigID)
	if err != nil {
		helpers.RespondError(c, "ListBidsForGigHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("ListBidsForGigHandler", "bids retrieved successfully", map[string]any{
		"gig_id": gigID,
		"count":  len(bids),
	})
}

// UpdateBidHandler handles PUT /bids/:bid_id
func (h *MarketHandler) UpdateBidHandler(c *gin.Context) {
	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	bidID := c.Param("bid_id")
	patch := models.BidPatch{
		Message: req.Message,
		Price:   req.Price,
	}

	bid, err := h.service.UpdateBid(c.Request.Context(), helpers.ActorID(c), bidID, patch)
	if err != nil {
		helpers.RespondError(c, "UpdateBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id": bid.BidID,
	})
}

// DeleteBidHandler handles DELETE /bids/:bid_id
func (h *MarketHandler) DeleteBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	if err := h.service.DeleteBid(c.Request.Context(), helpers.ActorID(c), bidID); err != nil {
		helpers.RespondError(c, "DeleteBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid deleted successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{
		"bid_id": bidID,
	})
}

// HireHandler handles PATCH /bids/:bid_id/hire
func (h *MarketHandler) HireHandler(c *gin.Context) {
	bidID := c.Param("bid_id")

	bid, err := h.service.Hire(c.Request.Context(), helpers.ActorID(c), bidID)
	if err != nil {
		helpers.RespondError(c, "HireHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "freelancer hired successfully")
	helpers.LogSuccess("HireHandler", "freelancer hired successfully", map[string]any{
		"bid_id":        bid.BidID,
		"gig_id":        bid.GigID,
		"freelancer_id": bid.FreelancerID,
	})
}
