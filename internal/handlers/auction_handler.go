package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
	"mazadWeb/internal/services"
)

type AuctionHandler struct {
	Service *services.AuctionService
}

type bidResponse struct {
	Bid   models.Bid   `json:"bid"`
	Toast models.Toast `json:"toast"`
}

func (h *AuctionHandler) ListAuctions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.AuctionFilter{
		Status: q.Get("status"),
		Type:   q.Get("type"),
		City:   q.Get("city"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	view, err := h.Service.List(r.Context(), filter)
	if err != nil {
		respondError(w, "ListAuctions", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *AuctionHandler) AuctionByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("رقم المزاد غير صالح"))
		return
	}

	// Signed-in viewers get their bid permission reflected in the page.
	var viewer *models.User
	if sess, ok := sessionFrom(r); ok {
		viewer = &sess.User
	}

	page, err := h.Service.Page(r.Context(), id, viewer)
	if err != nil {
		respondError(w, "AuctionByID", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("رقم المزاد غير صالح"))
		return
	}

	var form forms.BidForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	bid, err := h.Service.PlaceBid(r.Context(), sess, id, form)
	if err != nil {
		respondError(w, "PlaceBid", err)
		return
	}

	writeJSON(w, http.StatusCreated, bidResponse{
		Bid:   bid,
		Toast: models.SuccessToast("تم تسجيل مزايدتك بنجاح"),
	})
}

func (h *AuctionHandler) Watch(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("رقم المزاد غير صالح"))
		return
	}

	if err := h.Service.Watch(r.Context(), sess, id); err != nil {
		respondError(w, "Watch", err)
		return
	}

	writeToast(w, http.StatusOK, models.SuccessToast("تمت إضافة المزاد إلى قائمة المتابعة"))
}

func (h *AuctionHandler) Unwatch(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("رقم المزاد غير صالح"))
		return
	}

	if err := h.Service.Unwatch(r.Context(), sess, id); err != nil {
		respondError(w, "Unwatch", err)
		return
	}

	writeToast(w, http.StatusOK, models.SuccessToast("تمت إزالة المزاد من قائمة المتابعة"))
}

func (h *AuctionHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	view, err := h.Service.Watchlist(r.Context(), sess)
	if err != nil {
		respondError(w, "Watchlist", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
