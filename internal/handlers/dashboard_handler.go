package handlers

import (
	"net/http"

	"mazadWeb/internal/locale"
	"mazadWeb/internal/models"
	"mazadWeb/internal/services"
)

// DashboardHandler assembles the signed-in landing page: the profile
// card, the user's own listings and the auctions they follow.
type DashboardHandler struct {
	Accounts   *services.AccountService
	Properties *services.PropertyService
	Auctions   *services.AuctionService
}

type dashboardResponse struct {
	User       models.User               `json:"user"`
	RoleText   string                    `json:"role_text"`
	MyListings services.PropertyListView `json:"my_listings"`
	Watchlist  services.AuctionListView  `json:"watchlist"`
	CanPublish bool                      `json:"can_publish"`
	CanBid     bool                      `json:"can_bid"`
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	user, err := h.Accounts.Profile(r.Context(), sess)
	if err != nil {
		respondError(w, "Dashboard profile", err)
		return
	}

	resp := dashboardResponse{
		User:       user,
		RoleText:   locale.RoleLabel(string(user.Role)),
		CanPublish: user.Role.CanPublish(),
		CanBid:     user.Role.CanBid(),
	}

	// Sellers and agents see their listings; the block stays empty for
	// everyone else rather than erroring.
	if user.Role.CanPublish() {
		listings, err := h.Properties.MyListings(r.Context(), sess, 1, dashboardBlockLimit)
		if err != nil {
			respondError(w, "Dashboard listings", err)
			return
		}
		resp.MyListings = listings
	}

	watchlist, err := h.Auctions.Watchlist(r.Context(), sess)
	if err != nil {
		respondError(w, "Dashboard watchlist", err)
		return
	}
	resp.Watchlist = watchlist

	writeJSON(w, http.StatusOK, resp)
}

const dashboardBlockLimit = 6
