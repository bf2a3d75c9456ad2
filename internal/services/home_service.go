package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mazadWeb/internal/models"
)

// HomeAPI is the slice of the platform client the home page needs.
type HomeAPI interface {
	Auctions(ctx context.Context, filter models.AuctionFilter) (models.AuctionList, error)
	Properties(ctx context.Context, filter models.PropertyFilter) (models.PropertyList, error)
}

// HomeService builds the landing page view. The assembled view is
// cached briefly in redis; the live ticker keeps the countdowns honest
// between rebuilds.
type HomeService struct {
	API      HomeAPI
	Cache    *redis.Client
	CacheTTL time.Duration
	ErrorLog *log.Logger

	// Now is swapped in tests; nil means time.Now.
	Now func() time.Time
}

const homeCacheKey = "home:view"

const (
	homeLiveLimit     = 8
	homeUpcomingLimit = 4
	homeFeaturedLimit = 8
)

func (s *HomeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Home returns the cached view when fresh, otherwise assembles it from
// the platform.
func (s *HomeService) Home(ctx context.Context) (HomeView, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, homeCacheKey).Result(); err == nil {
			var view HomeView
			if err := json.Unmarshal([]byte(raw), &view); err == nil {
				return view, nil
			}
		}
	}

	view, err := s.build(ctx)
	if err != nil {
		return HomeView{}, err
	}

	if s.Cache != nil {
		raw, err := json.Marshal(view)
		if err == nil {
			if err := s.Cache.Set(ctx, homeCacheKey, raw, s.CacheTTL).Err(); err != nil {
				s.ErrorLog.Printf("cache home view: %v", err)
			}
		}
	}
	return view, nil
}

func (s *HomeService) build(ctx context.Context) (HomeView, error) {
	now := s.now()
	view := HomeView{GeneratedAt: now}

	live, err := s.API.Auctions(ctx, models.AuctionFilter{
		Status: models.AuctionStatusLive,
		Limit:  homeLiveLimit,
	})
	if err != nil {
		return HomeView{}, err
	}
	for _, a := range live.Auctions {
		view.LiveAuctions = append(view.LiveAuctions, newAuctionCard(a, now))
	}

	upcoming, err := s.API.Auctions(ctx, models.AuctionFilter{
		Status: models.AuctionStatusScheduled,
		Limit:  homeUpcomingLimit,
	})
	if err != nil {
		return HomeView{}, err
	}
	for _, a := range upcoming.Auctions {
		view.UpcomingAuctions = append(view.UpcomingAuctions, newAuctionCard(a, now))
	}

	featured, err := s.API.Properties(ctx, models.PropertyFilter{
		Status: models.PropertyStatusActive,
		Limit:  homeFeaturedLimit,
	})
	if err != nil {
		return HomeView{}, err
	}
	for _, p := range featured.Properties {
		view.Featured = append(view.Featured, newPropertyCard(p, now))
	}

	return view, nil
}
