package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/ledger"
	model "auction-house/internal/models"
	"auction-house/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with the in-memory ledger for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := ledger.NewMemoryStore()
	engine := auction.NewAuctionService(store)
	return server.SetupRouter(engine)
}

// SetupTestRouterWithListings initializes the router and seeds the store
// with listings.
func SetupTestRouterWithListings(t *testing.T, listings ...model.Listing) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := ledger.NewMemoryStore()

	for _, listing := range listings {
		if err := store.CreateListing(context.Background(), listing); err != nil {
			t.Fatalf("failed to seed listing %s: %v", listing.ListingID, err)
		}
	}

	engine := auction.NewAuctionService(store)
	return server.SetupRouter(engine)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// dataOf extracts the data object from a response envelope
func dataOf(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
