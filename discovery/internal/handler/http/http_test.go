package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"

	"github.com/okovalenko/filmfortoday/discovery/internal/controller/discovery"
	"github.com/okovalenko/filmfortoday/discovery/internal/repository/memory"
	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.Repository) {
	t.Helper()
	repo := memory.New()
	ctrl := discovery.New(repo, repo, repo, repo, repo)
	h := New(ctrl, tally.NoopScope)
	mux := http.NewServeMux()
	h.Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, repo
}

func seedCatalog(repo *memory.Repository) {
	repo.SetDictionaries(
		[]model.Genre{{ID: 1, Name: "Drama"}},
		[]model.Platform{{ID: 1, Name: "Netflix"}},
		[]model.MoodTag{{ID: 1, Name: "cozy"}},
	)
	repo.AddFilm(model.Film{ID: 1, Name: "Heat", ReleaseYear: "1995", Country: "USA", Duration: "170 min"}, []int64{1}, nil)
	repo.AddFilm(model.Film{ID: 2, Name: "Amelie", ReleaseYear: "2001", Country: "France", Duration: "122 min"}, []int64{1}, nil)
}

func TestRecommendationsColdStart(t *testing.T) {
	srv, repo := newTestServer(t)
	seedCatalog(repo)
	repo.SetRating(99, 1, 5) // someone else's rating, user 7 stays cold

	resp, err := http.Get(srv.URL + "/recommendations?userId=7")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rec model.Recommendation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "Most popular on FilmForToday", rec.PageTitle)
	assert.NotEmpty(t, rec.Films)
}

func TestRecommendationsRejectsBadUserID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/recommendations?userId=abc")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchByCountry(t *testing.T) {
	srv, repo := newTestServer(t)
	seedCatalog(repo)

	resp, err := http.Get(srv.URL + "/search?country=France")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var films []model.Film
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&films))
	require.Len(t, films, 1)
	assert.Equal(t, "Amelie", films[0].Name)
}

func TestSearchRejectsMalformedFacet(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/search?year_from=nineteen")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFacetsPayload(t *testing.T) {
	srv, repo := newTestServer(t)
	seedCatalog(repo)

	resp, err := http.Get(srv.URL + "/facets")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var facets model.Facets
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&facets))
	assert.Equal(t, []string{"France", "USA"}, facets.Countries)
	assert.Equal(t, model.DurationRange{Min: 122, Max: 170}, facets.Duration)
}

func TestFilmDetailsNotFound(t *testing.T) {
	srv, repo := newTestServer(t)
	seedCatalog(repo)

	resp, err := http.Get(srv.URL + "/films?id=404")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/search", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
