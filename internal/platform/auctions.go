package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"mazadWeb/internal/models"
)

type auctionPayload struct {
	models.Auction
	Property *models.PropertyPayload `json:"property,omitempty"`
}

func (p auctionPayload) normalize() models.Auction {
	auction := p.Auction
	auction.Property = nil
	if p.Property != nil {
		prop := p.Property.Normalize()
		auction.Property = &prop
	}
	return auction
}

type auctionListPayload struct {
	Auctions []auctionPayload `json:"auctions"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
}

// Auctions lists auctions for the tenant.
func (c *Client) Auctions(ctx context.Context, filter models.AuctionFilter) (models.AuctionList, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.City != "" {
		query.Set("city", filter.City)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var payload auctionListPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/auctions", query, "", nil, &payload); err != nil {
		return models.AuctionList{}, fmt.Errorf("list auctions: %w", err)
	}

	list := models.AuctionList{
		Auctions: make([]models.Auction, 0, len(payload.Auctions)),
		Total:    payload.Total,
		Page:     payload.Page,
	}
	for _, a := range payload.Auctions {
		list.Auctions = append(list.Auctions, a.normalize())
	}
	return list, nil
}

// AuctionByID fetches one auction with its property attached.
func (c *Client) AuctionByID(ctx context.Context, id int) (models.Auction, error) {
	var payload auctionPayload
	path := "/api/v1/auctions/" + strconv.Itoa(id)
	if err := c.do(ctx, http.MethodGet, path, nil, "", nil, &payload); err != nil {
		return models.Auction{}, fmt.Errorf("auction %d: %w", id, err)
	}
	return payload.normalize(), nil
}

// AuctionBids returns the bid history, newest first.
func (c *Client) AuctionBids(ctx context.Context, id int, limit int) ([]models.Bid, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Bids []models.Bid `json:"bids"`
	}
	path := "/api/v1/auctions/" + strconv.Itoa(id) + "/bids"
	if err := c.do(ctx, http.MethodGet, path, query, "", nil, &out); err != nil {
		return nil, fmt.Errorf("auction %d bids: %w", id, err)
	}
	return out.Bids, nil
}

// PlaceBid submits a bid. The platform enforces increments and auction
// state; rejections map to ErrBidTooLow and ErrAuctionClosed.
func (c *Client) PlaceBid(ctx context.Context, accessToken string, auctionID int, amount float64) (models.Bid, error) {
	in := models.PlaceBidRequest{Amount: amount}

	var out models.Bid
	path := "/api/v1/auctions/" + strconv.Itoa(auctionID) + "/bids"
	if err := c.do(ctx, http.MethodPost, path, nil, accessToken, in, &out); err != nil {
		return models.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, err)
	}
	return out, nil
}

// Watch adds the auction to the account watchlist.
func (c *Client) Watch(ctx context.Context, accessToken string, auctionID int) error {
	path := "/api/v1/auctions/" + strconv.Itoa(auctionID) + "/watch"
	return c.do(ctx, http.MethodPost, path, nil, accessToken, nil, nil)
}

// Unwatch removes the auction from the watchlist.
func (c *Client) Unwatch(ctx context.Context, accessToken string, auctionID int) error {
	path := "/api/v1/auctions/" + strconv.Itoa(auctionID) + "/watch"
	return c.do(ctx, http.MethodDelete, path, nil, accessToken, nil, nil)
}

// Watchlist lists the auctions the account follows.
func (c *Client) Watchlist(ctx context.Context, accessToken string) (models.AuctionList, error) {
	var payload auctionListPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me/watchlist", nil, accessToken, nil, &payload); err != nil {
		return models.AuctionList{}, fmt.Errorf("watchlist: %w", err)
	}

	list := models.AuctionList{
		Auctions: make([]models.Auction, 0, len(payload.Auctions)),
		Total:    payload.Total,
		Page:     payload.Page,
	}
	for _, a := range payload.Auctions {
		list.Auctions = append(list.Auctions, a.normalize())
	}
	return list, nil
}
