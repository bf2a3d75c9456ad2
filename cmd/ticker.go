package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mazadWeb/internal/locale"
	"mazadWeb/internal/models"
	"mazadWeb/internal/push"
	"mazadWeb/internal/services"
)

const (
	liveTickTimeout  = 10 * time.Second
	endingSoonWindow = 5 * time.Minute
)

// startLiveTicker drives the countdown refresh for connected browsers
// and the push alerts for watchers. Each tick polls the platform for
// every auction somebody is subscribed to or watching, broadcasts a
// localized snapshot, and fires outbid/ending-soon notifications.
func startLiveTicker(ctx context.Context, app *application, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		lastBids := make(map[int]float64)
		endingSent := make(map[int]bool)

		run := func() {
			ids := app.liveHub.SubscribedAuctions()

			runCtx, cancel := context.WithTimeout(ctx, liveTickTimeout)
			defer cancel()

			if app.pushRelay.Enabled() {
				tracked, err := app.pushRegistry.TrackedAuctions(runCtx)
				if err != nil {
					app.errorLog.Printf("live ticker: tracked auctions: %v", err)
				} else {
					ids = mergeIDs(ids, tracked)
				}
			}
			if len(ids) == 0 {
				return
			}

			for _, id := range ids {
				auction, err := app.platform.AuctionByID(runCtx, id)
				if err != nil {
					app.errorLog.Printf("live ticker: auction %d: %v", id, err)
					continue
				}

				now := time.Now()
				app.liveHub.BroadcastAuction(services.LiveSnapshot(auction, now))

				if app.pushRelay.Enabled() {
					alertWatchers(runCtx, app, auction, now, lastBids, endingSent)
				}
				lastBids[id] = auction.CurrentBid

				if auction.Status != models.AuctionStatusLive && auction.Status != models.AuctionStatusScheduled {
					delete(lastBids, id)
					delete(endingSent, id)
					if err := app.pushRegistry.ClearAuction(runCtx, id); err != nil {
						app.errorLog.Printf("live ticker: clear auction %d: %v", id, err)
					}
				}
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}

// alertWatchers notifies everyone watching the auction when the price
// moves past what they last saw, and once when the clock drops under
// the ending-soon window.
func alertWatchers(ctx context.Context, app *application, auction models.Auction, now time.Time, lastBids map[int]float64, endingSent map[int]bool) {
	if prev, ok := lastBids[auction.ID]; ok && auction.CurrentBid > prev {
		notifyWatchers(ctx, app, auction, "outbid",
			"مزايدة جديدة",
			fmt.Sprintf("وصلت المزايدة على %s إلى %s", auction.Title, locale.FormatCompactPrice(auction.CurrentBid)))
	}

	if auction.Status == models.AuctionStatusLive && auction.EndTime != nil && !endingSent[auction.ID] {
		remaining := auction.EndTime.Sub(now)
		if remaining > 0 && remaining <= endingSoonWindow {
			endingSent[auction.ID] = true
			notifyWatchers(ctx, app, auction, "ending_soon",
				"المزاد ينتهي قريبًا",
				fmt.Sprintf("ينتهي مزاد %s خلال دقائق، السعر الحالي %s", auction.Title, locale.FormatCompactPrice(auction.CurrentBid)))
		}
	}
}

func notifyWatchers(ctx context.Context, app *application, auction models.Auction, kind, title, body string) {
	watchers, err := app.pushRegistry.Watchers(ctx, auction.ID)
	if err != nil {
		app.errorLog.Printf("live ticker: watchers of %d: %v", auction.ID, err)
		return
	}

	n := push.Notification{
		Title: title,
		Body:  body,
		Link:  "/auctions/" + strconv.Itoa(auction.ID),
		Data: map[string]string{
			"kind":       kind,
			"auction_id": strconv.Itoa(auction.ID),
		},
	}
	for _, userID := range watchers {
		if err := app.pushRelay.Notify(ctx, userID, n); err != nil {
			app.errorLog.Printf("live ticker: notify user %d: %v", userID, err)
		}
	}
}

func mergeIDs(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, id := range a {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
