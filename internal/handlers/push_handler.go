package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"mazadWeb/internal/models"
	"mazadWeb/internal/push"
)

type PushHandler struct {
	Registry *push.Registry
	Relay    *push.Relay
}

type pushTokenRequest struct {
	Token string `json:"token"`
}

func (h *PushHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	if !h.Relay.Enabled() {
		respondError(w, "Subscribe", push.ErrDisabled)
		return
	}

	var req pushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	if err := h.Registry.Add(r.Context(), sess.User.ID, req.Token); err != nil {
		respondError(w, "Subscribe", err)
		return
	}

	writeToast(w, http.StatusOK, models.SuccessToast("تم تفعيل الإشعارات"))
}

func (h *PushHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	var req pushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Token) == "" {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	if err := h.Registry.Remove(r.Context(), sess.User.ID, req.Token); err != nil {
		respondError(w, "Unsubscribe", err)
		return
	}

	writeToast(w, http.StatusOK, models.SuccessToast("تم إيقاف الإشعارات"))
}
