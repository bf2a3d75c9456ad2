package handlers

import (
	"net/http"

	"mazadWeb/internal/services"
)

type HomeHandler struct {
	Service *services.HomeService
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.Service.Home(r.Context())
	if err != nil {
		respondError(w, "Home", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
