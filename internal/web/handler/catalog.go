package handler

import (
	"context"
	"net/http"

	"github.com/passa-a-bola/passa-web/internal/filter"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/web/middleware"
	"github.com/passa-a-bola/passa-web/internal/web/templates/pages"
)

// Catalog supplies the collections shown by the listing pages
type Catalog interface {
	Players(ctx context.Context, token string) []model.Player
	Events(ctx context.Context, token string) []model.Event
	Tournaments(ctx context.Context, token string) []model.Tournament
	Stats(ctx context.Context, token string) model.Stats
}

// CatalogHandler handles the dashboard and listing pages
type CatalogHandler struct {
	catalog Catalog
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Dashboard renders the stats and role sections
func (h *CatalogHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	render(w, r, http.StatusOK, pages.Dashboard(pages.DashboardData{
		PageData: pageData(r, "Painel"),
		Session:  sess,
		Stats:    h.catalog.Stats(r.Context(), sess.Token),
	}))
}

// Players renders the filtered players listing
func (h *CatalogHandler) Players(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetSession(r.Context()).Token
	criteria := filter.PlayerCriteriaFromQuery(r.URL.Query())
	all := h.catalog.Players(r.Context(), token)

	render(w, r, http.StatusOK, pages.Players(pages.PlayersData{
		PageData: pageData(r, "Jogadoras"),
		Players:  filter.Players(all, criteria),
		Total:    len(all),
		Criteria: criteria,
	}))
}

// Events renders the filtered events listing
func (h *CatalogHandler) Events(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetSession(r.Context()).Token
	criteria := filter.EventCriteriaFromQuery(r.URL.Query())
	all := h.catalog.Events(r.Context(), token)

	render(w, r, http.StatusOK, pages.Events(pages.EventsData{
		PageData: pageData(r, "Eventos"),
		Events:   filter.Events(all, criteria),
		Total:    len(all),
		Criteria: criteria,
	}))
}

// Tournaments renders the tournaments listing
func (h *CatalogHandler) Tournaments(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetSession(r.Context()).Token
	render(w, r, http.StatusOK, pages.Tournaments(pages.TournamentsData{
		PageData:    pageData(r, "Torneios"),
		Tournaments: h.catalog.Tournaments(r.Context(), token),
	}))
}
