package health

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Status struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct {
	service string
}

func New(service string) *Handler { return &Handler{service: service} }

func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.check)
}

// check godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} health.Status
// @Router /health [get]
func (h *Handler) check(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Status{Status: "healthy", Service: h.service})
}
