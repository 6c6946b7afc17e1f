// Package http exposes the rating controller over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/okovalenko/filmfortoday/rating/internal/controller/rating"
	"github.com/okovalenko/filmfortoday/rating/pkg/model"
)

// Handler defines the HTTP handler for the rating service.
type Handler struct {
	ctrl *rating.Controller
}

// New creates a new rating HTTP handler.
func New(ctrl *rating.Controller) *Handler {
	return &Handler{ctrl}
}

// Handle serves /rating: GET returns the user's stored rating, PUT stores a
// value, where value 0 clears the rating.
func (h *Handler) Handle(w http.ResponseWriter, req *http.Request) {
	userID, err := strconv.ParseInt(req.FormValue("userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}
	filmID, err := strconv.ParseInt(req.FormValue("filmId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid filmId", http.StatusBadRequest)
		return
	}

	switch req.Method {
	case http.MethodGet:
		v, err := h.ctrl.GetUserRating(req.Context(), model.UserID(userID), model.FilmID(filmID))
		if err != nil {
			if errors.Is(err, rating.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			log.Printf("Repository get error: %v\n", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("Response encode error: %v\n", err)
		}
	case http.MethodPut:
		v, err := strconv.Atoi(req.FormValue("value"))
		if err != nil {
			http.Error(w, "invalid value", http.StatusBadRequest)
			return
		}
		err = h.ctrl.SetRating(req.Context(), model.Rating{
			UserID: model.UserID(userID),
			FilmID: model.FilmID(filmID),
			Value:  model.RatingValue(v),
		})
		if err != nil {
			if errors.Is(err, rating.ErrInvalidRating) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("Repository put error: %v\n", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

type moodVotesRequest struct {
	MoodTagIDs []model.MoodTagID `json:"moodTagIds"`
}

// HandleMoodVotes serves /rating/moods: GET returns the user's tag set for a
// film, PUT replaces it wholesale.
func (h *Handler) HandleMoodVotes(w http.ResponseWriter, req *http.Request) {
	userID, err := strconv.ParseInt(req.FormValue("userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}
	filmID, err := strconv.ParseInt(req.FormValue("filmId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid filmId", http.StatusBadRequest)
		return
	}

	switch req.Method {
	case http.MethodGet:
		tags, err := h.ctrl.GetUserMoodTags(req.Context(), model.UserID(userID), model.FilmID(filmID))
		if err != nil {
			log.Printf("Repository get error: %v\n", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if err := json.NewEncoder(w).Encode(moodVotesRequest{MoodTagIDs: tags}); err != nil {
			log.Printf("Response encode error: %v\n", err)
		}
	case http.MethodPut:
		var body moodVotesRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		err := h.ctrl.ReplaceMoodVotes(req.Context(), model.UserID(userID), model.FilmID(filmID), body.MoodTagIDs)
		if err != nil {
			if errors.Is(err, rating.ErrTooManyMoodTags) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("Repository put error: %v\n", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
