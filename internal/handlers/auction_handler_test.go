package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mazadWeb/internal/models"
	"mazadWeb/internal/services"
)

type stubAuctionAPI struct {
	auction models.Auction

	placedToken  string
	placedAmount float64
}

func (s *stubAuctionAPI) Auctions(ctx context.Context, filter models.AuctionFilter) (models.AuctionList, error) {
	return models.AuctionList{Auctions: []models.Auction{s.auction}, Total: 1, Page: 1}, nil
}

func (s *stubAuctionAPI) AuctionByID(ctx context.Context, id int) (models.Auction, error) {
	if id != s.auction.ID {
		return models.Auction{}, models.ErrAuctionNotFound
	}
	return s.auction, nil
}

func (s *stubAuctionAPI) AuctionBids(ctx context.Context, id int, limit int) ([]models.Bid, error) {
	return nil, nil
}

func (s *stubAuctionAPI) PlaceBid(ctx context.Context, accessToken string, auctionID int, amount float64) (models.Bid, error) {
	s.placedToken = accessToken
	s.placedAmount = amount
	return models.Bid{ID: 77, AuctionID: auctionID, Amount: amount}, nil
}

func (s *stubAuctionAPI) Watch(ctx context.Context, accessToken string, auctionID int) error {
	return nil
}

func (s *stubAuctionAPI) Unwatch(ctx context.Context, accessToken string, auctionID int) error {
	return nil
}

func (s *stubAuctionAPI) Watchlist(ctx context.Context, accessToken string) (models.AuctionList, error) {
	return models.AuctionList{}, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testLiveAuction() models.Auction {
	end := fixedNow().Add(2 * time.Hour)
	return models.Auction{
		ID:           5,
		Title:        "فيلا في حي النرجس",
		Type:         models.AuctionTypePublic,
		Status:       models.AuctionStatusLive,
		StartingBid:  500000,
		CurrentBid:   650000,
		MinIncrement: 10000,
		EndTime:      &end,
	}
}

func withSession(r *http.Request, role models.Role) *http.Request {
	sess := models.Session{
		ID:     "sess-1",
		User:   models.User{ID: 9, Name: "سارة", Role: role},
		Tokens: models.Tokens{AccessToken: "access-token"},
	}
	return r.WithContext(context.WithValue(r.Context(), SessionKey, sess))
}

func TestPlaceBidHandler(t *testing.T) {
	api := &stubAuctionAPI{auction: testLiveAuction()}
	h := &AuctionHandler{Service: &services.AuctionService{API: api, Now: fixedNow}}

	body := strings.NewReader(`{"amount": "660000"}`)
	req := httptest.NewRequest(http.MethodPost, "/auctions/5/bid?:id=5", body)
	req = withSession(req, models.RoleBuyer)
	rec := httptest.NewRecorder()

	h.PlaceBid(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if api.placedToken != "access-token" {
		t.Fatalf("expected access token forwarded, got %q", api.placedToken)
	}
	if api.placedAmount != 660000 {
		t.Fatalf("expected amount 660000, got %v", api.placedAmount)
	}

	var resp bidResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Bid.ID != 77 {
		t.Fatalf("expected bid 77, got %d", resp.Bid.ID)
	}
	if resp.Toast.Type != "success" {
		t.Fatalf("expected success toast, got %q", resp.Toast.Type)
	}
}

func TestPlaceBidHandlerSellerForbidden(t *testing.T) {
	api := &stubAuctionAPI{auction: testLiveAuction()}
	h := &AuctionHandler{Service: &services.AuctionService{API: api, Now: fixedNow}}

	body := strings.NewReader(`{"amount": "660000"}`)
	req := httptest.NewRequest(http.MethodPost, "/auctions/5/bid?:id=5", body)
	req = withSession(req, models.RoleSeller)
	rec := httptest.NewRecorder()

	h.PlaceBid(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected %d, got %d", http.StatusForbidden, rec.Code)
	}

	var resp toastPayload
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Toast.Type != "error" || resp.Toast.Message == "" {
		t.Fatalf("expected an error toast, got %+v", resp.Toast)
	}
}

func TestPlaceBidHandlerWithoutSession(t *testing.T) {
	h := &AuctionHandler{Service: &services.AuctionService{API: &stubAuctionAPI{auction: testLiveAuction()}, Now: fixedNow}}

	req := httptest.NewRequest(http.MethodPost, "/auctions/5/bid?:id=5", strings.NewReader(`{"amount": "660000"}`))
	rec := httptest.NewRecorder()

	h.PlaceBid(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuctionByIDHandlerNotFound(t *testing.T) {
	api := &stubAuctionAPI{auction: testLiveAuction()}
	h := &AuctionHandler{Service: &services.AuctionService{API: api, Now: fixedNow}}

	req := httptest.NewRequest(http.MethodGet, "/auctions/99?:id=99", nil)
	rec := httptest.NewRecorder()

	h.AuctionByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestAuctionByIDHandlerViewerPermissions(t *testing.T) {
	api := &stubAuctionAPI{auction: testLiveAuction()}
	h := &AuctionHandler{Service: &services.AuctionService{API: api, Now: fixedNow}}

	req := httptest.NewRequest(http.MethodGet, "/auctions/5?:id=5", nil)
	req = withSession(req, models.RoleBuyer)
	rec := httptest.NewRecorder()

	h.AuctionByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var page services.AuctionPage
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !page.CanBid {
		t.Fatalf("expected buyer to see the bid action")
	}
}
