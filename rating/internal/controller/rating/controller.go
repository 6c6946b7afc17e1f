package rating

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/okovalenko/filmfortoday/rating/internal/repository"
	"github.com/okovalenko/filmfortoday/rating/pkg/model"
)

// ErrNotFound is returned when the user has no rating for the film.
var ErrNotFound = errors.New("rating not found")

// ErrInvalidRating is returned for star values outside {0..5}.
var ErrInvalidRating = errors.New("invalid star rating")

// ErrTooManyMoodTags is returned when a vote set exceeds the per-film cap.
var ErrTooManyMoodTags = errors.New("too many mood tags")

type ratingRepository interface {
	Get(ctx context.Context, userID model.UserID, filmID model.FilmID) (model.RatingValue, error)
	Put(ctx context.Context, rating model.Rating) error
	Delete(ctx context.Context, userID model.UserID, filmID model.FilmID) error
	UserMoodTags(ctx context.Context, userID model.UserID, filmID model.FilmID) ([]model.MoodTagID, error)
	// ReplaceMoodVotes swaps the user's full vote set for the film in one
	// transaction so a partial set is never observable.
	ReplaceMoodVotes(ctx context.Context, userID model.UserID, filmID model.FilmID, tagIDs []model.MoodTagID) error
}

type ratingIngester interface {
	Ingest(ctx context.Context) (chan model.RatingEvent, error)
}

// Controller defines a rating service controller.
type Controller struct {
	repo     ratingRepository
	ingester ratingIngester
}

// New creates a rating service controller.
func New(repo ratingRepository, ingester ratingIngester) *Controller {
	return &Controller{repo, ingester}
}

// GetUserRating returns the user's stored star rating for a film.
func (c *Controller) GetUserRating(ctx context.Context, userID model.UserID, filmID model.FilmID) (model.RatingValue, error) {
	v, err := c.repo.Get(ctx, userID, filmID)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return 0, ErrNotFound
	}
	return v, err
}

// SetRating stores a star rating. The 0 sentinel deletes the stored rating
// and is never written as a row.
func (c *Controller) SetRating(ctx context.Context, rating model.Rating) error {
	if !rating.Value.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidRating, rating.Value)
	}
	if rating.Value.IsClear() {
		return c.repo.Delete(ctx, rating.UserID, rating.FilmID)
	}
	return c.repo.Put(ctx, rating)
}

// GetUserMoodTags returns the mood tag ids the user holds on a film.
func (c *Controller) GetUserMoodTags(ctx context.Context, userID model.UserID, filmID model.FilmID) ([]model.MoodTagID, error) {
	return c.repo.UserMoodTags(ctx, userID, filmID)
}

// ReplaceMoodVotes replaces the user's full mood vote set for a film. An
// empty set clears the votes. The per-film tag cap is enforced here.
func (c *Controller) ReplaceMoodVotes(ctx context.Context, userID model.UserID, filmID model.FilmID, tagIDs []model.MoodTagID) error {
	if len(tagIDs) > model.MaxMoodTagsPerFilm {
		return fmt.Errorf("%w: %d tags, cap is %d", ErrTooManyMoodTags, len(tagIDs), model.MaxMoodTagsPerFilm)
	}
	seen := make(map[model.MoodTagID]struct{}, len(tagIDs))
	deduped := make([]model.MoodTagID, 0, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}
	return c.repo.ReplaceMoodVotes(ctx, userID, filmID, deduped)
}

// StartIngestion consumes the rating event feed and applies each event to
// the repository. It blocks until the context is cancelled or the feed
// closes.
func (c *Controller) StartIngestion(ctx context.Context) error {
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		switch e.EventType {
		case model.RatingEventTypePut:
			if err := c.SetRating(ctx, e.Rating); err != nil {
				log.Println("Failed to apply rating event: " + err.Error())
			}
		case model.RatingEventTypeDelete:
			if err := c.repo.Delete(ctx, e.UserID, e.FilmID); err != nil {
				log.Println("Failed to apply rating event: " + err.Error())
			}
		}
	}
	return nil
}
