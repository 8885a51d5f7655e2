package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicehive/internal/fanout"
	market "servicehive/internal/marketService"
	"servicehive/internal/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	broker := fanout.NewBroker()
	marketService := market.NewMarketService(memory.NewMemoryStore(), broker)
	return SetupRouter(marketService, broker)
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		userID         string
		body           string
		expectedStatus int
	}{
		{
			name:           "protected_route_without_identity",
			method:         http.MethodPost,
			path:           "/gigs",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "protected_bid_route_without_identity",
			method:         http.MethodGet,
			path:           "/bids/user",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "hire_route_without_identity",
			method:         http.MethodPatch,
			path:           "/bids/bid1/hire",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "events_route_without_identity",
			method:         http.MethodGet,
			path:           "/events",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "public_listing_without_identity",
			method:         http.MethodGet,
			path:           "/gigs",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "identity_is_forwarded_to_handlers",
			method:         http.MethodPost,
			path:           "/gigs",
			userID:         "user1",
			body:           `{"title":"Build site","description":"a web site","budget":100}`,
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			if tc.userID != "" {
				req.Header.Set(UserIDHeader, tc.userID)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusUnauthorized {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Contains(t, resp["message"], "authentication required")
			}
		})
	}
}

func TestCreatedGigIsOwnedByHeaderIdentity(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/gigs", strings.NewReader(`{"title":"Build site","description":"a web site","budget":100}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(UserIDHeader, "user1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	require.Equal(t, "user1", data["owner_id"])
}
