package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"mazadWeb/internal/models"
	"mazadWeb/internal/ws"
	"mazadWeb/utils"
)

// LiveHandler hands browsers into the live ticker. The WebSocket
// handshake cannot carry the session cookie cross-origin, so clients
// first trade their session for a short-lived ticket and present it in
// the query string.
type LiveHandler struct {
	Hub       *ws.LiveHub
	Tickets   *utils.Manager
	TicketTTL time.Duration
}

type ticketResponse struct {
	Ticket    string `json:"ticket"`
	ExpiresIn int    `json:"expires_in"`
}

func (h *LiveHandler) Ticket(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	ticket, err := h.Tickets.NewTicket(sess.ID, h.TicketTTL)
	if err != nil {
		respondError(w, "Ticket", err)
		return
	}

	writeJSON(w, http.StatusOK, ticketResponse{
		Ticket:    ticket,
		ExpiresIn: int(h.TicketTTL.Seconds()),
	})
}

func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	connID, err := h.Tickets.ParseTicket(r.URL.Query().Get("ticket"))
	if err != nil {
		http.Error(w, "invalid ticket", http.StatusUnauthorized)
		return
	}

	h.Hub.ServeWS(w, r, connID, parseIDList(r.URL.Query().Get("auctions")))
}

// parseIDList reads "3,7,12" and drops anything that is not a number.
func parseIDList(raw string) []int {
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
