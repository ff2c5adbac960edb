package handler

import (
	"context"
	"net/http"

	"github.com/passa-a-bola/passa-web/internal/api/middleware"
	"github.com/passa-a-bola/passa-web/internal/api/response"
	"github.com/passa-a-bola/passa-web/internal/filter"
	"github.com/passa-a-bola/passa-web/internal/model"
)

// Catalog supplies the collections served by the API
type Catalog interface {
	Players(ctx context.Context, token string) []model.Player
	Events(ctx context.Context, token string) []model.Event
	Tournaments(ctx context.Context, token string) []model.Tournament
	Stats(ctx context.Context, token string) model.Stats
}

// CatalogHandler serves players, events, tournaments and stats. The
// caller's token is forwarded to the remote API.
type CatalogHandler struct {
	catalog Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Players handles GET /api/v1/players
func (h *CatalogHandler) Players(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Players(r.Context(), middleware.GetToken(r.Context()))
	criteria := filter.PlayerCriteriaFromQuery(r.URL.Query())
	response.JSON(w, http.StatusOK, response.NewCollection(filter.Players(all, criteria), len(all)))
}

// Events handles GET /api/v1/events
func (h *CatalogHandler) Events(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Events(r.Context(), middleware.GetToken(r.Context()))
	criteria := filter.EventCriteriaFromQuery(r.URL.Query())
	response.JSON(w, http.StatusOK, response.NewCollection(filter.Events(all, criteria), len(all)))
}

// Tournaments handles GET /api/v1/tournaments
func (h *CatalogHandler) Tournaments(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Tournaments(r.Context(), middleware.GetToken(r.Context()))
	response.JSON(w, http.StatusOK, response.NewCollection(all, len(all)))
}

// Stats handles GET /api/v1/stats
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.catalog.Stats(r.Context(), middleware.GetToken(r.Context())))
}
