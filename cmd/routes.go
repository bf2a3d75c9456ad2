package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"mazadWeb/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON, app.loadSession)
	authMiddleware := standardMiddleware.Append(app.requireSession)
	bidderMiddleware := authMiddleware.Append(app.requireRole(models.Role.CanBid))
	publisherMiddleware := authMiddleware.Append(app.requireRole(models.Role.CanPublish))

	mux := pat.New()

	// Account
	mux.Post("/account/sign_up", standardMiddleware.ThenFunc(app.accountHandler.SignUp))
	mux.Post("/account/sign_in", standardMiddleware.ThenFunc(app.accountHandler.SignIn))
	mux.Post("/account/sign_out", authMiddleware.ThenFunc(app.accountHandler.SignOut))
	mux.Post("/account/password/request", standardMiddleware.ThenFunc(app.accountHandler.PasswordResetRequest))
	mux.Post("/account/password/verify", standardMiddleware.ThenFunc(app.accountHandler.PasswordResetVerify))
	mux.Post("/account/password/reset", standardMiddleware.ThenFunc(app.accountHandler.PasswordResetConfirm))

	// Profile
	mux.Get("/profile", authMiddleware.ThenFunc(app.accountHandler.Profile))
	mux.Put("/profile", authMiddleware.ThenFunc(app.accountHandler.UpdateProfile))
	mux.Post("/profile/avatar", authMiddleware.ThenFunc(app.accountHandler.UpdateAvatar))
	mux.Get("/dashboard", authMiddleware.ThenFunc(app.dashboardHandler.Dashboard))

	// Pages
	mux.Get("/home", standardMiddleware.ThenFunc(app.homeHandler.Home))

	// Properties
	mux.Post("/properties", publisherMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Get("/properties/mine", authMiddleware.ThenFunc(app.propertyHandler.MyListings))
	mux.Get("/properties/:slug", standardMiddleware.ThenFunc(app.propertyHandler.PropertyBySlug))
	mux.Get("/properties", standardMiddleware.ThenFunc(app.propertyHandler.ListProperties))

	// Auctions
	mux.Get("/auctions/watchlist", authMiddleware.ThenFunc(app.auctionHandler.Watchlist))
	mux.Post("/auctions/:id/bid", bidderMiddleware.ThenFunc(app.auctionHandler.PlaceBid))
	mux.Post("/auctions/:id/watch", authMiddleware.ThenFunc(app.auctionHandler.Watch))
	mux.Del("/auctions/:id/watch", authMiddleware.ThenFunc(app.auctionHandler.Unwatch))
	mux.Get("/auctions/:id", standardMiddleware.ThenFunc(app.auctionHandler.AuctionByID))
	mux.Get("/auctions", standardMiddleware.ThenFunc(app.auctionHandler.ListAuctions))

	// Live ticker
	mux.Get("/live/ticket", authMiddleware.ThenFunc(app.liveHandler.Ticket))
	mux.Get("/ws/live", http.HandlerFunc(app.liveHandler.Serve))

	// Push
	mux.Post("/push/subscribe", authMiddleware.ThenFunc(app.pushHandler.Subscribe))
	mux.Del("/push/subscribe", authMiddleware.ThenFunc(app.pushHandler.Unsubscribe))

	mux.Get("/health", standardMiddleware.ThenFunc(app.healthHandler.Health))

	return mux
}
