package model

// UserID uniquely identifies a registered user.
type UserID int64

// FilmID uniquely identifies a catalog film.
type FilmID int64

// MoodTagID uniquely identifies a mood tag.
type MoodTagID int64

// RatingValue is a star rating. Persisted values are 1 to 5; 0 is the clear
// sentinel that deletes the stored rating instead of being written.
type RatingValue int

// RatingValueClear requests deletion of an existing rating.
const RatingValueClear = RatingValue(0)

// MaxMoodTagsPerFilm caps how many mood tags one user may hold on one film.
const MaxMoodTagsPerFilm = 5

// IsValid reports whether the value is an accepted input: the clear sentinel
// or a star value 1 to 5.
func (v RatingValue) IsValid() bool {
	return v >= 0 && v <= 5
}

// IsClear reports whether the value requests deletion.
func (v RatingValue) IsClear() bool {
	return v == RatingValueClear
}

// Rating is one user's star rating of one film, unique per (user, film).
type Rating struct {
	UserID UserID      `json:"userId"`
	FilmID FilmID      `json:"filmId"`
	Value  RatingValue `json:"value"`
}

// RatingEventType defines the type of a rating event.
type RatingEventType string

const (
	RatingEventTypePut    = RatingEventType("put")
	RatingEventTypeDelete = RatingEventType("delete")
)

// RatingEvent is a rating mutation flowing through the event feed.
type RatingEvent struct {
	Rating
	ProviderID string          `json:"providerId"`
	EventType  RatingEventType `json:"eventType"`
}
