package handlers

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"mazadWeb/internal/ws"
)

type HealthHandler struct {
	Redis *redis.Client
	Hub   *ws.LiveHub
}

type healthResponse struct {
	Status      string `json:"status"`
	Redis       string `json:"redis"`
	LiveClients int    `json:"live_clients"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Redis: "ok"}
	if h.Hub != nil {
		resp.LiveClients = h.Hub.ClientCount()
	}

	status := http.StatusOK
	if err := h.Redis.Ping(r.Context()).Err(); err != nil {
		resp.Status = "degraded"
		resp.Redis = err.Error()
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
