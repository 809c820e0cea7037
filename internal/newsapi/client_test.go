package newsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key", srv.URL, 5*time.Second)
	c.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestEverythingMapsArticlesInOrder(t *testing.T) {
	payload := map[string]any{
		"status":       "ok",
		"totalResults": 2,
		"articles": []map[string]any{
			{
				"source":      map[string]any{"id": "reuters", "name": "Reuters"},
				"title":       "Fed Holds Rates Steady",
				"description": "The Federal Reserve kept interest rates unchanged.",
				"url":         "https://example.com/fed-rates",
				"publishedAt": "2026-03-09T12:00:00Z",
			},
			{
				"source":      map[string]any{"name": "BBC News"},
				"title":       "Storm Batters Coast",
				"description": "Heavy winds caused damage overnight.",
				"url":         "https://example.com/storm",
				"publishedAt": "2026-03-09T11:00:00Z",
			},
		},
	}

	var gotQuery map[string][]string
	var gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/everything", r.URL.Path)
		gotQuery = r.URL.Query()
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	})

	articles, err := client.Everything(context.Background(), "economy", 10)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	require.Equal(t, "test-key", gotKey)
	require.Equal(t, []string{"economy"}, gotQuery["q"])
	require.Equal(t, []string{"en"}, gotQuery["language"])
	require.Equal(t, []string{"2026-03-09"}, gotQuery["from"])
	require.Equal(t, []string{"publishedAt"}, gotQuery["sortBy"])
	require.Equal(t, []string{"10"}, gotQuery["pageSize"])

	first := articles[0]
	require.Equal(t, "Fed Holds Rates Steady", first.Title)
	require.Equal(t, "Reuters", first.Source)
	require.Equal(t, "The Federal Reserve kept interest rates unchanged.", first.Description)
	require.Equal(t, "https://example.com/fed-rates", first.URL)
	require.NotEmpty(t, first.ID)
	require.Equal(t, 2026, first.PublishedAt.Year())

	require.Equal(t, "Storm Batters Coast", articles[1].Title)
	require.Equal(t, "BBC News", articles[1].Source)
}

func TestEverythingDeterministicIDs(t *testing.T) {
	payload := map[string]any{
		"status": "ok",
		"articles": []map[string]any{
			{"title": "Same Story", "url": "https://example.com/a", "source": map[string]any{"name": "X"}},
		},
	}
	handler := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}

	first, err := newTestClient(t, handler).Everything(context.Background(), "q", 1)
	require.NoError(t, err)
	second, err := newTestClient(t, handler).Everything(context.Background(), "q", 1)
	require.NoError(t, err)

	require.Equal(t, first[0].ID, second[0].ID)
}

func TestEverythingAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"code":    "apiKeyInvalid",
			"message": "Your API key is invalid or incorrect.",
		})
	})

	articles, err := client.Everything(context.Background(), "economy", 10)
	require.Nil(t, articles)
	require.ErrorContains(t, err, "apiKeyInvalid")
	require.ErrorContains(t, err, "Your API key is invalid")
}

func TestEverythingNonSuccessStatusWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("{}"))
	})

	_, err := client.Everything(context.Background(), "economy", 10)
	require.ErrorContains(t, err, "newsapi request failed")
}

func TestEverythingEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "totalResults": 0, "articles": []any{}})
	})

	articles, err := client.Everything(context.Background(), "economy", 10)
	require.NoError(t, err)
	require.Empty(t, articles)
}
