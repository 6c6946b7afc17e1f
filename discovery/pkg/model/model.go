package model

// FilmID uniquely identifies a catalog film.
type FilmID int64

// UserID uniquely identifies a registered user.
type UserID int64

// MoodTagID uniquely identifies a mood tag from the mood_tags dictionary.
type MoodTagID int64

// Film is a catalog entry as surfaced by discovery queries. ReleaseYear and
// Duration keep their raw catalog text ("2010", "2010-2012", "169 min"),
// numeric derivations happen in the facets package.
type Film struct {
	ID          FilmID  `json:"id"`
	Name        string  `json:"name"`
	PosterURL   string  `json:"image"`
	IMDBRating  float64 `json:"imdbRating,omitempty"`
	ReleaseYear string  `json:"releaseYear,omitempty"`
	Country     string  `json:"country,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	AvgRating   float64 `json:"avgRating,omitempty"`
	VoteCount   int     `json:"voteCount,omitempty"`
}

// RecommendationCandidate is a scored film produced by the item-based
// collaborative query. The score is an occurrence count across the peer set,
// it is never persisted.
type RecommendationCandidate struct {
	Film  Film `json:"film"`
	Score int  `json:"recommendationScore"`
}

// Recommendation is the final discovery output: a page title naming which
// branch of the fallback cascade produced the films.
type Recommendation struct {
	PageTitle string `json:"pageTitle"`
	Films     []Film `json:"films"`
}

// PriceType enumerates the mutually exclusive access categories a search can
// filter on. Values outside this set compose no predicate.
type PriceType string

const (
	PriceTypeSubscription = PriceType("subscription")
	PriceTypeFree         = PriceType("free")
	PriceTypeRent         = PriceType("rent")
)

// FacetFilter is the sparse search input. A nil field means "no constraint",
// never "zero constraint"; presence is what drives predicate composition.
type FacetFilter struct {
	GenreID     *int64
	PriceType   *PriceType
	PlatformID  *int64
	Query       *string
	YearFrom    *int
	YearTo      *int
	Country     *string
	DurationMax *int
	IMDBMin     *float64
}

// IsZero reports whether no facet is set, i.e. the filter matches everything.
func (f FacetFilter) IsZero() bool {
	return f.GenreID == nil && f.PriceType == nil && f.PlatformID == nil &&
		f.Query == nil && f.YearFrom == nil && f.YearTo == nil &&
		f.Country == nil && f.DurationMax == nil && f.IMDBMin == nil
}

// MoodTagCount carries per-film mood vote tallies for one tag: how many votes
// the tag received and how many mood votes the film holds in total.
type MoodTagCount struct {
	FilmID   FilmID
	TagCount int
	Total    int
}

// Genre is a dictionary row for the genre facet.
type Genre struct {
	ID   int64  `json:"genreId"`
	Name string `json:"name"`
}

// Platform is a dictionary row for the platform facet.
type Platform struct {
	ID   int64  `json:"platformId"`
	Name string `json:"name"`
}

// MoodTag is a dictionary row from the mood_tags table.
type MoodTag struct {
	ID    MoodTagID `json:"moodTagId"`
	Name  string    `json:"name"`
	Emoji string    `json:"emoji,omitempty"`
}

// DurationRange is the min/max film duration in minutes offered to the
// duration slider.
type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Facets is the full set of filter dictionaries offered by the search page.
type Facets struct {
	Genres    []Genre       `json:"genres"`
	Countries []string      `json:"countries"`
	Years     []int         `json:"years"`
	Duration  DurationRange `json:"duration"`
	Platforms []Platform    `json:"platforms"`
	MoodTags  []MoodTag     `json:"moodTags"`
}

// FilmMood is an aggregated mood tag for one film together with how often it
// was voted.
type FilmMood struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji,omitempty"`
	TagCount int    `json:"tagCount"`
}

// FilmPrice is one platform offer for a film.
type FilmPrice struct {
	Platform   string  `json:"platform"`
	AccessType string  `json:"accessType"`
	Price      float64 `json:"price,omitempty"`
}

// FilmRating is the aggregated community rating of one film.
type FilmRating struct {
	AvgRating float64 `json:"avgRating"`
	VoteCount int     `json:"voteCount"`
}

// FilmDetails bundles everything the film page shows about one catalog entry.
type FilmDetails struct {
	Film     Film        `json:"film"`
	Genres   []string    `json:"genres"`
	Prices   []FilmPrice `json:"prices"`
	Rating   FilmRating  `json:"rating"`
	TopMoods []FilmMood  `json:"topMoods"`
}
