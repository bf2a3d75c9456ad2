package models

import (
	"time"
)

const (
	AuctionStatusLive      = "live"
	AuctionStatusScheduled = "scheduled"
	AuctionStatusEnded     = "ended"
	AuctionStatusCompleted = "completed"
	AuctionStatusCancelled = "cancelled"
)

const (
	AuctionTypePublic  = "public"
	AuctionTypePrivate = "private"
	AuctionTypeCharity = "charity"
)

type Auction struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	StartingBid  float64    `json:"starting_bid"`
	CurrentBid   float64    `json:"current_bid"`
	MinIncrement float64    `json:"min_increment"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	BidsCount    int        `json:"bids_count"`
	Views        int        `json:"views"`
	PropertyID   int        `json:"property_id"`
	Property     *Property  `json:"property,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// AcceptsBids reports whether the auction is in a state where the platform
// would accept a bid. The server remains the authority; this only decides
// whether to show the bid action.
func (a Auction) AcceptsBids(now time.Time) bool {
	if a.Status != AuctionStatusLive {
		return false
	}
	if a.EndTime != nil && !now.Before(*a.EndTime) {
		return false
	}
	return true
}

// NextMinimumBid returns the lowest amount the platform would accept next.
func (a Auction) NextMinimumBid() float64 {
	if a.CurrentBid <= 0 {
		return a.StartingBid
	}
	return a.CurrentBid + a.MinIncrement
}

type Bid struct {
	ID        int       `json:"id"`
	AuctionID int       `json:"auction_id"`
	UserID    int       `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount"`
}

type AuctionFilter struct {
	Status string `json:"status,omitempty"`
	Type   string `json:"type,omitempty"`
	City   string `json:"city,omitempty"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type AuctionList struct {
	Auctions []Auction `json:"auctions"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
}
