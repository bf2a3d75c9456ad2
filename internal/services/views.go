package services

import (
	"time"

	"mazadWeb/internal/countdown"
	"mazadWeb/internal/locale"
	"mazadWeb/internal/models"
	"mazadWeb/internal/ws"
)

// View models carry the record plus every localized string the page
// prints, so templates and the JSON API never format anything
// themselves.

type PropertyCard struct {
	models.Property
	TypeText    string `json:"type_text"`
	StatusText  string `json:"status_text"`
	StatusStyle string `json:"status_style"`
	PriceText   string `json:"price_text"`
	AreaText    string `json:"area_text,omitempty"`
	CoverImage  string `json:"cover_image,omitempty"`
	CreatedText string `json:"created_text"`
}

type PropertyPage struct {
	PropertyCard
	Auction *AuctionCard `json:"auction,omitempty"`
}

type PropertyListView struct {
	Properties []PropertyCard `json:"properties"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
}

type AuctionCard struct {
	models.Auction
	TypeText        string                `json:"type_text"`
	TypeStyle       string                `json:"type_style"`
	StatusText      string                `json:"status_text"`
	StatusStyle     string                `json:"status_style"`
	CurrentText     string                `json:"current_text"`
	StartingText    string                `json:"starting_text"`
	NextMinimum     float64               `json:"next_minimum"`
	NextMinimumText string                `json:"next_minimum_text"`
	Countdown       countdown.Parts       `json:"countdown"`
	CountdownText   string                `json:"countdown_text"`
	CountdownUnits  locale.CountdownUnits `json:"countdown_units"`
	EndTimeText     string                `json:"end_time_text,omitempty"`
	AcceptingBids   bool                  `json:"accepting_bids"`
	Property        *PropertyCard         `json:"property,omitempty"`
}

type BidRow struct {
	models.Bid
	AmountText string `json:"amount_text"`
	TimeText   string `json:"time_text"`
}

type AuctionPage struct {
	AuctionCard
	Bids    []BidRow `json:"bids"`
	CanBid  bool     `json:"can_bid"`
	Watched bool     `json:"watched"`
}

type AuctionListView struct {
	Auctions []AuctionCard `json:"auctions"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
}

type HomeView struct {
	LiveAuctions     []AuctionCard  `json:"live_auctions"`
	UpcomingAuctions []AuctionCard  `json:"upcoming_auctions"`
	Featured         []PropertyCard `json:"featured"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

func newPropertyCard(p models.Property, now time.Time) PropertyCard {
	card := PropertyCard{
		Property:    p,
		TypeText:    locale.PropertyTypeLabel(p.Type),
		StatusText:  locale.PropertyStatusLabel(p.Status),
		StatusStyle: locale.PropertyStatusStyle(p.Status),
		PriceText:   locale.FormatPrice(p.Price),
		CreatedText: locale.FormatRelative(p.CreatedAt, now),
	}
	if p.AreaSqm > 0 {
		card.AreaText = locale.FormatArea(p.AreaSqm)
	}
	if len(p.Images) > 0 {
		card.CoverImage = p.Images[0].Path
	}
	return card
}

func newAuctionCard(a models.Auction, now time.Time) AuctionCard {
	parts := countdown.Until(a.EndTime, now)
	card := AuctionCard{
		Auction:         a,
		TypeText:        locale.AuctionTypeLabel(a.Type),
		TypeStyle:       locale.AuctionTypeStyle(a.Type),
		StatusText:      locale.AuctionStatusLabel(a.Status),
		StatusStyle:     locale.AuctionStatusStyle(a.Status),
		CurrentText:     locale.FormatPrice(a.CurrentBid),
		StartingText:    locale.FormatPrice(a.StartingBid),
		NextMinimum:     a.NextMinimumBid(),
		NextMinimumText: locale.FormatPrice(a.NextMinimumBid()),
		Countdown:       parts,
		CountdownText:   locale.FormatCountdown(parts),
		CountdownUnits:  locale.CountdownLabels(),
		AcceptingBids:   a.AcceptsBids(now),
	}
	if a.EndTime != nil {
		card.EndTimeText = locale.FormatDateTime(*a.EndTime)
	}
	if a.Property != nil {
		prop := newPropertyCard(*a.Property, now)
		card.Property = &prop
		card.Auction.Property = nil
	}
	return card
}

func newBidRow(b models.Bid, now time.Time) BidRow {
	return BidRow{
		Bid:        b,
		AmountText: locale.FormatPrice(b.Amount),
		TimeText:   locale.FormatRelative(b.CreatedAt, now),
	}
}

// LiveSnapshot is the per-tick event the ticker pushes to browsers
// subscribed to an auction, localized like the page view models.
func LiveSnapshot(a models.Auction, now time.Time) ws.LiveEvent {
	parts := countdown.Until(a.EndTime, now)
	return ws.LiveEvent{
		Type:          "auction_update",
		AuctionID:     a.ID,
		Status:        a.Status,
		StatusText:    locale.AuctionStatusLabel(a.Status),
		StatusStyle:   locale.AuctionStatusStyle(a.Status),
		CurrentBid:    a.CurrentBid,
		CurrentText:   locale.FormatPrice(a.CurrentBid),
		NextMinimum:   a.NextMinimumBid(),
		BidsCount:     a.BidsCount,
		Countdown:     &parts,
		CountdownText: locale.FormatCountdown(parts),
		EndTime:       a.EndTime,
	}
}
