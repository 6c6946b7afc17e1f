package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

func int64Ptr(v int64) *int64          { return &v }
func intPtr(v int) *int                { return &v }
func strPtr(v string) *string          { return &v }
func floatPtr(v float64) *float64      { return &v }
func pricePtr(v model.PriceType) *model.PriceType { return &v }

func TestComposeEmptyFilterMatchesEverything(t *testing.T) {
	q := Compose(model.FacetFilter{})

	assert.Empty(t, q.Where)
	assert.Empty(t, q.Args)
	assert.Equal(t, []string{"LEFT JOIN ratings r ON f.id = r.film_id"}, q.Joins)
	assert.NotContains(t, q.SQL(), "WHERE")
}

func TestComposeSingleGenre(t *testing.T) {
	q := Compose(model.FacetFilter{GenreID: int64Ptr(5)})

	assert.Equal(t, []string{"fg.genre_id = ?"}, q.Where)
	assert.Equal(t, []interface{}{int64(5)}, q.Args)
	assert.Contains(t, q.Joins, "JOIN film_genre fg ON f.id = fg.film_id")
}

func TestComposeCanonicalOrder(t *testing.T) {
	f := model.FacetFilter{
		GenreID:     int64Ptr(3),
		PriceType:   pricePtr(model.PriceTypeSubscription),
		PlatformID:  int64Ptr(7),
		Query:       strPtr("Dune"),
		YearFrom:    intPtr(2000),
		YearTo:      intPtr(2020),
		Country:     strPtr("USA"),
		DurationMax: intPtr(150),
		IMDBMin:     floatPtr(7.5),
	}

	q := Compose(f)

	wantWhere := []string{
		"fg.genre_id = ?",
		"fp.access_type = 'Subscription'",
		"fp.platform_id = ?",
		"f.normalized_name LIKE ?",
		"f.release_year >= ?",
		"f.release_year <= ?",
		"f.country LIKE ?",
		"CAST(REGEXP_SUBSTR(f.duration, '^[0-9]+') AS UNSIGNED) <= ?",
		"CAST(f.imdb_rating AS DECIMAL(3,1)) >= ?",
	}
	if diff := cmp.Diff(wantWhere, q.Where); diff != "" {
		t.Errorf("predicate order mismatch (-want +got):\n%s", diff)
	}
	wantArgs := []interface{}{int64(3), int64(7), "%dune%", 2000, 2020, "%USA%", 150, 7.5}
	if diff := cmp.Diff(wantArgs, q.Args); diff != "" {
		t.Errorf("argument order mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeOrderIndependentOfPresentSubset(t *testing.T) {
	// Country and year-from only: country must still come after year-from.
	q := Compose(model.FacetFilter{
		Country:  strPtr("France"),
		YearFrom: intPtr(1990),
	})

	want := []string{"f.release_year >= ?", "f.country LIKE ?"}
	assert.Equal(t, want, q.Where)
	assert.Equal(t, []interface{}{1990, "%France%"}, q.Args)
}

func TestComposePriceTypes(t *testing.T) {
	tests := []struct {
		price      model.PriceType
		wantClause string
	}{
		{model.PriceTypeSubscription, "fp.access_type = 'Subscription'"},
		{model.PriceTypeFree, "fp.access_type = 'Free'"},
		{model.PriceTypeRent, "(fp.access_type LIKE 'Rent%' OR fp.access_type LIKE 'Rental%')"},
	}
	for _, tt := range tests {
		t.Run(string(tt.price), func(t *testing.T) {
			q := Compose(model.FacetFilter{PriceType: pricePtr(tt.price)})
			assert.Equal(t, []string{tt.wantClause}, q.Where)
			assert.Empty(t, q.Args, "access type predicates bind no parameters")
			assert.Contains(t, q.Joins, "JOIN film_platform fp ON f.id = fp.film_id")
		})
	}
}

func TestComposeUnknownPriceTypeFailsOpen(t *testing.T) {
	q := Compose(model.FacetFilter{PriceType: pricePtr(model.PriceType("premium"))})

	assert.Empty(t, q.Where)
	assert.Empty(t, q.Args)
	assert.NotContains(t, q.Joins, "JOIN film_platform fp ON f.id = fp.film_id")
}

func TestComposeFreeTextIsCaseInsensitive(t *testing.T) {
	q := Compose(model.FacetFilter{Query: strPtr("The GodFather")})

	assert.Equal(t, []string{"f.normalized_name LIKE ?"}, q.Where)
	assert.Equal(t, []interface{}{"%the godfather%"}, q.Args)
}

func TestComposeIsDeterministic(t *testing.T) {
	f := model.FacetFilter{
		GenreID: int64Ptr(2),
		YearTo:  intPtr(2015),
		IMDBMin: floatPtr(8),
	}

	first := Compose(f)
	second := Compose(f)

	assert.Equal(t, first.SQL(), second.SQL())
	assert.Equal(t, first.Args, second.Args)
}

func TestSQLShape(t *testing.T) {
	sql := Compose(model.FacetFilter{GenreID: int64Ptr(1)}).SQL()

	assert.Contains(t, sql, "LEFT JOIN ratings r ON f.id = r.film_id")
	assert.Contains(t, sql, "WHERE fg.genre_id = ?")
	assert.Contains(t, sql, "GROUP BY f.id")
	assert.Contains(t, sql, "ORDER BY avg_rating DESC, vote_count DESC, CAST(f.release_year AS SIGNED) DESC")
	assert.Contains(t, sql, "LIMIT 1000")
}
