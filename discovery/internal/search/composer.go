// Package search composes the filtered catalog query from a sparse facet set.
// Predicates are appended in one canonical facet order regardless of which
// facets are present, so the same filter always yields the same statement and
// parameter list.
package search

import (
	"strconv"
	"strings"

	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

// ResultLimit caps how many films a single search may return.
const ResultLimit = 1000

const (
	baseSelect = "SELECT f.id, f.name, f.poster_url, f.imdb_rating, f.release_year, f.country, f.duration, " +
		"COALESCE(AVG(r.rating), 0) AS avg_rating, COUNT(r.rating) AS vote_count " +
		"FROM films f"
	ratingsJoin  = "LEFT JOIN ratings r ON f.id = r.film_id"
	genreJoin    = "JOIN film_genre fg ON f.id = fg.film_id"
	platformJoin = "JOIN film_platform fp ON f.id = fp.film_id"

	groupBy = "GROUP BY f.id, f.name, f.poster_url, f.imdb_rating, f.release_year, f.country, f.duration"
	// Fixed result-order contract: community rating first, then vote count,
	// then recency. Films without ratings average to 0.
	orderBy = "ORDER BY avg_rating DESC, vote_count DESC, CAST(f.release_year AS SIGNED) DESC"
)

// Query is a composed search statement: the join list, the AND-combined WHERE
// predicates and their bound arguments, in matching order.
type Query struct {
	Joins []string
	Where []string
	Args  []interface{}
}

// Compose builds the predicate and parameter lists for the given filter.
// Facets are visited in the canonical order genre, access type, platform,
// free text, year-from, year-to, country, duration, rating-min; absent facets
// contribute nothing. An unrecognized price type composes no predicate.
func Compose(f model.FacetFilter) Query {
	q := Query{
		Joins: []string{ratingsJoin},
		Where: []string{},
		Args:  []interface{}{},
	}

	if f.GenreID != nil {
		q.Joins = append(q.Joins, genreJoin)
		q.where("fg.genre_id = ?", *f.GenreID)
	}

	needPlatformJoin := f.PlatformID != nil
	if f.PriceType != nil {
		switch *f.PriceType {
		case model.PriceTypeSubscription:
			needPlatformJoin = true
			q.where("fp.access_type = 'Subscription'")
		case model.PriceTypeFree:
			needPlatformJoin = true
			q.where("fp.access_type = 'Free'")
		case model.PriceTypeRent:
			needPlatformJoin = true
			q.where("(fp.access_type LIKE 'Rent%' OR fp.access_type LIKE 'Rental%')")
		}
		// Anything else falls open: the facet is ignored.
	}
	if needPlatformJoin {
		q.Joins = append(q.Joins, platformJoin)
	}
	if f.PlatformID != nil {
		q.where("fp.platform_id = ?", *f.PlatformID)
	}

	if f.Query != nil {
		q.where("f.normalized_name LIKE ?", "%"+strings.ToLower(*f.Query)+"%")
	}
	if f.YearFrom != nil {
		q.where("f.release_year >= ?", *f.YearFrom)
	}
	if f.YearTo != nil {
		q.where("f.release_year <= ?", *f.YearTo)
	}
	if f.Country != nil {
		q.where("f.country LIKE ?", "%"+*f.Country+"%")
	}
	if f.DurationMax != nil {
		q.where("CAST(REGEXP_SUBSTR(f.duration, '^[0-9]+') AS UNSIGNED) <= ?", *f.DurationMax)
	}
	if f.IMDBMin != nil {
		q.where("CAST(f.imdb_rating AS DECIMAL(3,1)) >= ?", *f.IMDBMin)
	}

	return q
}

func (q *Query) where(clause string, args ...interface{}) {
	q.Where = append(q.Where, clause)
	q.Args = append(q.Args, args...)
}

// SQL assembles the full statement for the composed query. An empty filter
// produces no WHERE clause and matches the whole catalog.
func (q Query) SQL() string {
	var b strings.Builder
	b.WriteString(baseSelect)
	for _, j := range q.Joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	if len(q.Where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.Where, " AND "))
	}
	b.WriteString(" ")
	b.WriteString(groupBy)
	b.WriteString(" ")
	b.WriteString(orderBy)
	b.WriteString(" LIMIT ")
	b.WriteString(strconv.Itoa(ResultLimit))
	return b.String()
}
