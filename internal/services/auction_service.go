package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
)

// AuctionAPI is the slice of the platform client the auction service
// uses.
type AuctionAPI interface {
	Auctions(ctx context.Context, filter models.AuctionFilter) (models.AuctionList, error)
	AuctionByID(ctx context.Context, id int) (models.Auction, error)
	AuctionBids(ctx context.Context, id int, limit int) ([]models.Bid, error)
	PlaceBid(ctx context.Context, accessToken string, auctionID int, amount float64) (models.Bid, error)
	Watch(ctx context.Context, accessToken string, auctionID int) error
	Unwatch(ctx context.Context, accessToken string, auctionID int) error
	Watchlist(ctx context.Context, accessToken string) (models.AuctionList, error)
}

// BidAlerts records which accounts want push alerts for an auction.
// Implemented by the push registry; nil turns alerts off.
type BidAlerts interface {
	WatchAuction(ctx context.Context, auctionID, userID int) error
	UnwatchAuction(ctx context.Context, auctionID, userID int) error
}

type AuctionService struct {
	API    AuctionAPI
	Alerts BidAlerts

	// Now is swapped in tests; nil means time.Now.
	Now func() time.Time
}

func (s *AuctionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

const bidHistoryLimit = 20

// List returns auction cards for the listings page.
func (s *AuctionService) List(ctx context.Context, filter models.AuctionFilter) (AuctionListView, error) {
	list, err := s.API.Auctions(ctx, filter)
	if err != nil {
		return AuctionListView{}, err
	}

	now := s.now()
	view := AuctionListView{
		Auctions: make([]AuctionCard, 0, len(list.Auctions)),
		Total:    list.Total,
		Page:     list.Page,
	}
	for _, a := range list.Auctions {
		view.Auctions = append(view.Auctions, newAuctionCard(a, now))
	}
	return view, nil
}

// Page assembles the auction detail page: card, bid history and the
// viewer-dependent flags.
func (s *AuctionService) Page(ctx context.Context, id int, viewer *models.User) (AuctionPage, error) {
	auction, err := s.API.AuctionByID(ctx, id)
	if err != nil {
		return AuctionPage{}, err
	}

	bids, err := s.API.AuctionBids(ctx, id, bidHistoryLimit)
	if err != nil {
		return AuctionPage{}, err
	}

	now := s.now()
	page := AuctionPage{
		AuctionCard: newAuctionCard(auction, now),
		Bids:        make([]BidRow, 0, len(bids)),
	}
	for _, b := range bids {
		page.Bids = append(page.Bids, newBidRow(b, now))
	}
	if viewer != nil {
		page.CanBid = viewer.Role.CanBid() && auction.AcceptsBids(now)
	}
	return page, nil
}

// PlaceBid validates the amount against the latest auction state, then
// submits it. The platform remains the final authority; a race with
// another bidder still comes back as ErrBidTooLow.
func (s *AuctionService) PlaceBid(ctx context.Context, sess models.Session, auctionID int, form forms.BidForm) (models.Bid, error) {
	if !sess.User.Role.CanBid() {
		return models.Bid{}, fmt.Errorf("%w: role %s cannot bid", models.ErrForbidden, sess.User.Role)
	}

	auction, err := s.API.AuctionByID(ctx, auctionID)
	if err != nil {
		return models.Bid{}, err
	}
	if !auction.AcceptsBids(s.now()) {
		return models.Bid{}, models.ErrAuctionClosed
	}

	form.MinAllowed = auction.NextMinimumBid()
	if err := form.Validate(); err != nil {
		return models.Bid{}, err
	}

	bid, err := s.API.PlaceBid(ctx, sess.Tokens.AccessToken, auctionID, form.Value())
	if err != nil {
		return models.Bid{}, err
	}
	s.watchAlerts(ctx, auctionID, sess.User.ID)
	return bid, nil
}

// Watch adds the auction to the viewer's watchlist.
func (s *AuctionService) Watch(ctx context.Context, sess models.Session, auctionID int) error {
	if err := s.API.Watch(ctx, sess.Tokens.AccessToken, auctionID); err != nil {
		return err
	}
	s.watchAlerts(ctx, auctionID, sess.User.ID)
	return nil
}

// Unwatch removes the auction from the watchlist.
func (s *AuctionService) Unwatch(ctx context.Context, sess models.Session, auctionID int) error {
	if err := s.API.Unwatch(ctx, sess.Tokens.AccessToken, auctionID); err != nil {
		return err
	}
	if s.Alerts != nil {
		if err := s.Alerts.UnwatchAuction(ctx, auctionID, sess.User.ID); err != nil {
			log.Printf("auction %d: unwatch alerts: %v", auctionID, err)
		}
	}
	return nil
}

// watchAlerts is best effort; a registry hiccup never fails the
// operation that triggered it.
func (s *AuctionService) watchAlerts(ctx context.Context, auctionID, userID int) {
	if s.Alerts == nil {
		return
	}
	if err := s.Alerts.WatchAuction(ctx, auctionID, userID); err != nil {
		log.Printf("auction %d: watch alerts: %v", auctionID, err)
	}
}

// Watchlist returns the viewer's watched auctions as cards.
func (s *AuctionService) Watchlist(ctx context.Context, sess models.Session) (AuctionListView, error) {
	list, err := s.API.Watchlist(ctx, sess.Tokens.AccessToken)
	if err != nil {
		return AuctionListView{}, err
	}

	now := s.now()
	view := AuctionListView{
		Auctions: make([]AuctionCard, 0, len(list.Auctions)),
		Total:    list.Total,
		Page:     list.Page,
	}
	for _, a := range list.Auctions {
		view.Auctions = append(view.Auctions, newAuctionCard(a, now))
	}
	return view, nil
}
