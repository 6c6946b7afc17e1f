// Package http exposes the discovery controller over HTTP. The handler stays
// thin: parameter parsing, JSON encoding and request metrics only.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/uber-go/tally/v4"

	"github.com/okovalenko/filmfortoday/discovery/internal/controller/discovery"
	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

// Handler defines the HTTP handler for the discovery service.
type Handler struct {
	ctrl  *discovery.Controller
	scope tally.Scope
}

// New creates a new discovery HTTP handler. The scope may be tally.NoopScope.
func New(ctrl *discovery.Controller, scope tally.Scope) *Handler {
	return &Handler{ctrl: ctrl, scope: scope}
}

// Register attaches all discovery routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/recommendations", h.Recommendations)
	mux.HandleFunc("/search", h.Search)
	mux.HandleFunc("/search/suggest", h.Suggest)
	mux.HandleFunc("/facets", h.Facets)
	mux.HandleFunc("/films", h.FilmDetails)
}

// Recommendations handles GET /recommendations?userId=&moodTagId=.
func (h *Handler) Recommendations(w http.ResponseWriter, req *http.Request) {
	defer h.scope.Timer("recommendations_latency").Start().Stop()
	h.scope.Counter("recommendations_requests").Inc(1)
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID, err := strconv.ParseInt(req.FormValue("userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}
	var moodTagID *model.MoodTagID
	if raw := req.FormValue("moodTagId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid moodTagId", http.StatusBadRequest)
			return
		}
		tag := model.MoodTagID(id)
		moodTagID = &tag
	}

	rec, err := h.ctrl.Recommendations(req.Context(), model.UserID(userID), moodTagID)
	if err != nil {
		log.Printf("Repository get error: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, rec)
}

// Search handles GET /search with the optional facet query parameters.
func (h *Handler) Search(w http.ResponseWriter, req *http.Request) {
	defer h.scope.Timer("search_latency").Start().Stop()
	h.scope.Counter("search_requests").Inc(1)
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	filter, err := parseFacetFilter(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	films, err := h.ctrl.Search(req.Context(), filter)
	if err != nil {
		log.Printf("Repository get error: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, films)
}

// Suggest handles GET /search/suggest?q=.
func (h *Handler) Suggest(w http.ResponseWriter, req *http.Request) {
	h.scope.Counter("suggest_requests").Inc(1)
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	films, err := h.ctrl.Suggest(req.Context(), req.FormValue("q"))
	if err != nil {
		log.Printf("Repository get error: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, films)
}

// Facets handles GET /facets.
func (h *Handler) Facets(w http.ResponseWriter, req *http.Request) {
	h.scope.Counter("facets_requests").Inc(1)
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	facets, err := h.ctrl.Facets(req.Context())
	if err != nil {
		log.Printf("Repository get error: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, facets)
}

// FilmDetails handles GET /films?id=.
func (h *Handler) FilmDetails(w http.ResponseWriter, req *http.Request) {
	h.scope.Counter("film_details_requests").Inc(1)
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.ParseInt(req.FormValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	details, err := h.ctrl.FilmDetails(req.Context(), model.FilmID(id))
	if err != nil {
		if errors.Is(err, discovery.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("Repository get error: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, details)
}

func parseFacetFilter(req *http.Request) (model.FacetFilter, error) {
	var f model.FacetFilter
	if raw := req.FormValue("genre"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, errors.New("invalid genre")
		}
		f.GenreID = &v
	}
	if raw := req.FormValue("price_type"); raw != "" {
		// Unknown values still pass through: the composer fails open.
		p := model.PriceType(raw)
		f.PriceType = &p
	}
	if raw := req.FormValue("platform"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, errors.New("invalid platform")
		}
		f.PlatformID = &v
	}
	if raw := req.FormValue("q"); raw != "" {
		q := raw
		f.Query = &q
	}
	if raw := req.FormValue("year_from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return f, errors.New("invalid year_from")
		}
		f.YearFrom = &v
	}
	if raw := req.FormValue("year_to"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return f, errors.New("invalid year_to")
		}
		f.YearTo = &v
	}
	if raw := req.FormValue("country"); raw != "" {
		c := raw
		f.Country = &c
	}
	if raw := req.FormValue("duration_max"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return f, errors.New("invalid duration_max")
		}
		f.DurationMax = &v
	}
	if raw := req.FormValue("imdb_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("invalid imdb_min")
		}
		f.IMDBMin = &v
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Response encode error: %v\n", err)
	}
}
