// Package http exposes the film page controller over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	discoverymodel "github.com/okovalenko/filmfortoday/discovery/pkg/model"
	"github.com/okovalenko/filmfortoday/filmpage/internal/controller/filmpage"
	ratingmodel "github.com/okovalenko/filmfortoday/rating/pkg/model"
)

// Handler defines the HTTP handler for the film page service.
type Handler struct {
	ctrl *filmpage.Controller
}

// New creates a new film page HTTP handler.
func New(ctrl *filmpage.Controller) *Handler {
	return &Handler{ctrl}
}

// Handle serves GET /filmpage?filmId=&userId=.
func (h *Handler) Handle(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	filmID, err := strconv.ParseInt(req.FormValue("filmId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid filmId", http.StatusBadRequest)
		return
	}
	userID, err := strconv.ParseInt(req.FormValue("userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}

	page, err := h.ctrl.Get(req.Context(), discoverymodel.FilmID(filmID), ratingmodel.UserID(userID))
	if err != nil {
		if errors.Is(err, filmpage.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Printf("Gateway error: %v\n", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(page); err != nil {
		log.Printf("Response encode error: %v\n", err)
	}
}
