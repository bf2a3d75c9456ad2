package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"mazadWeb/internal/config"
	"mazadWeb/internal/handlers"
	"mazadWeb/internal/platform"
	"mazadWeb/internal/push"
	"mazadWeb/internal/services"
	"mazadWeb/internal/session"
	"mazadWeb/internal/ws"
	"mazadWeb/utils"
)

// wsLogger adapts the standard logger pair to the hub's Logger interface.
type wsLogger struct {
	info *log.Logger
	err  *log.Logger
}

func (l wsLogger) Infof(format string, args ...interface{})  { l.info.Printf(format, args...) }
func (l wsLogger) Errorf(format string, args ...interface{}) { l.err.Printf(format, args...) }

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	platform      *platform.Client
	sessions      *session.Store
	sessionCookie *session.Cookie
	liveHub       *ws.LiveHub
	pushRegistry  *push.Registry
	pushRelay     *push.Relay
	auctions      *services.AuctionService

	accountHandler   *handlers.AccountHandler
	propertyHandler  *handlers.PropertyHandler
	auctionHandler   *handlers.AuctionHandler
	homeHandler      *handlers.HomeHandler
	dashboardHandler *handlers.DashboardHandler
	liveHandler      *handlers.LiveHandler
	pushHandler      *handlers.PushHandler
	healthHandler    *handlers.HealthHandler
}

func initializeApp(cfg config.Config, rdb *redis.Client, errorLog, infoLog *log.Logger) (*application, error) {
	client := platform.NewClient(&http.Client{Timeout: cfg.PlatformTimeout()}, cfg.Platform.BaseURL, cfg.Platform.TenantKey)

	sessions := session.NewStore(rdb, cfg.SessionTTL())
	sessionCookie, err := session.NewCookie(cfg.Session.Secret, cfg.Session.SecureCookie, cfg.SessionTTL())
	if err != nil {
		return nil, err
	}
	limiter := session.NewLimiter(rdb, cfg.Session.SignInMax, cfg.SignInWindow())

	uploader := utils.NewUploader(
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Region,
		cfg.Storage.Endpoint,
		cfg.Storage.Bucket,
		cfg.Storage.BaseURL,
	)

	tickets, err := utils.NewManager(cfg.Live.TicketSigningKey)
	if err != nil {
		return nil, err
	}

	liveHub := ws.NewLiveHub(wsLogger{info: infoLog, err: errorLog})

	registry := push.NewRegistry(rdb)
	relay, err := push.NewRelay(context.Background(), cfg.Push.CredentialsFile, registry, errorLog)
	if err != nil {
		return nil, err
	}

	// Services
	accountService := &services.AccountService{
		API:      client,
		Sessions: sessions,
		Limiter:  limiter,
		Uploader: uploader,
		ErrorLog: errorLog,
	}
	propertyService := &services.PropertyService{API: client, Uploader: uploader}
	auctionService := &services.AuctionService{API: client}
	if relay.Enabled() {
		auctionService.Alerts = registry
	}
	homeService := &services.HomeService{
		API:      client,
		Cache:    rdb,
		CacheTTL: cfg.HomeCacheTTL(),
		ErrorLog: errorLog,
	}

	app := &application{
		errorLog:      errorLog,
		infoLog:       infoLog,
		platform:      client,
		sessions:      sessions,
		sessionCookie: sessionCookie,
		liveHub:       liveHub,
		pushRegistry:  registry,
		pushRelay:     relay,
		auctions:      auctionService,

		accountHandler:  &handlers.AccountHandler{Service: accountService, Cookie: sessionCookie},
		propertyHandler: &handlers.PropertyHandler{Service: propertyService},
		auctionHandler:  &handlers.AuctionHandler{Service: auctionService},
		homeHandler:     &handlers.HomeHandler{Service: homeService},
		dashboardHandler: &handlers.DashboardHandler{
			Accounts:   accountService,
			Properties: propertyService,
			Auctions:   auctionService,
		},
		liveHandler: &handlers.LiveHandler{
			Hub:       liveHub,
			Tickets:   tickets,
			TicketTTL: cfg.TicketTTL(),
		},
		pushHandler:   &handlers.PushHandler{Registry: registry, Relay: relay},
		healthHandler: &handlers.HealthHandler{Redis: rdb, Hub: liveHub},
	}
	return app, nil
}
