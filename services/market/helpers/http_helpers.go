package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"servicehive/internal/marketerrors"
	"servicehive/internal/models"
	"servicehive/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the auth middleware stores the verified user id
const ContextUserKey = "userID"

// ActorID returns the verified user id set by the auth middleware, or ""
func ActorID(c *gin.Context) string {
	return c.GetString(ContextUserKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, marketerrors.ErrPermission):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, marketerrors.ErrConflict):
		return http.StatusBadRequest, "conflicting state"
	case errors.Is(err, marketerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err to a status, sends the JSON error envelope and logs
// it. Unexpected failures (including store errors) surface as a bare 500
// with no internal detail.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	out := err
	if status == http.StatusInternalServerError {
		out = errors.New(message)
	}
	utils.JSONError(c, status, out, message)
	utils.Warn(handlerName+": request failed", map[string]any{
		"status": status,
		"error":  err.Error(),
	})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToGigResponse converts a gig model to its response DTO
func ToGigResponse(gig models.Gig) GigResponse {
	return GigResponse{
		GigID:       gig.GigID,
		OwnerID:     gig.OwnerID,
		Title:       gig.Title,
		Description: gig.Description,
		Budget:      gig.Budget,
		Status:      string(gig.Status),
		CreatedAt:   gig.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToGigResponses converts a gig list, never returning nil
func ToGigResponses(gigs []models.Gig) []GigResponse {
	out := make([]GigResponse, 0, len(gigs))
	for _, gig := range gigs {
		out = append(out, ToGigResponse(gig))
	}
	return out
}

// ToBidResponse converts a bid model to its response DTO
func ToBidResponse(bid models.Bid) BidResponse {
	return BidResponse{
		BidID:        bid.BidID,
		GigID:        bid.GigID,
		FreelancerID: bid.FreelancerID,
		Message:      bid.Message,
		Price:        bid.Price,
		Status:       string(bid.Status),
		CreatedAt:    bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToBidResponses converts a bid list, never returning nil
func ToBidResponses(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, bid := range bids {
		out = append(out, ToBidResponse(bid))
	}
	return out
}
