package oreilly

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchWorks(t *testing.T) {
	ctx := context.Background()
	fields := []string{"isbn", "authors", "title", "description"}

	t.Run("sends query, limit and repeated fields", func(t *testing.T) {
		var gotQuery, gotLimit string
		var gotFields []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("query")
			gotLimit = r.URL.Query().Get("limit")
			gotFields = r.URL.Query()["fields"]
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"results": []}`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL(srv.URL)
		results, err := c.SearchWorks(ctx, "python", 200, fields)

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, "python", gotQuery)
		assert.Equal(t, "200", gotLimit)
		assert.Equal(t, fields, gotFields)
	})

	t.Run("decodes results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"total": 1,
				"results": [
					{
						"title": "Fluent Python",
						"isbn": "9781491946008",
						"description": "Clear, concise, and effective programming.",
						"authors": ["Luciano Ramalho"]
					}
				]
			}`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL(srv.URL)
		results, err := c.SearchWorks(ctx, "python", 200, fields)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Fluent Python", results[0].Title)
		assert.Equal(t, "9781491946008", results[0].ISBN)
		assert.Equal(t, []string{"Luciano Ramalho"}, results[0].Authors)
	})

	t.Run("missing isbn decodes to empty string", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results": [{"title": "No ISBN", "authors": ["A"]}]}`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL(srv.URL)
		results, err := c.SearchWorks(ctx, "python", 200, fields)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "", results[0].ISBN)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewClientWithBaseURL(srv.URL)
		_, err := c.SearchWorks(ctx, "python", 200, fields)

		assert.ErrorContains(t, err, "unexpected status code: 502")
	})

	t.Run("malformed body is a decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		c := NewClientWithBaseURL(srv.URL)
		_, err := c.SearchWorks(ctx, "python", 200, fields)

		assert.ErrorContains(t, err, "decode search response")
	})

	t.Run("unreachable host is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := NewClientWithBaseURL(srv.URL)
		_, err := c.SearchWorks(ctx, "python", 200, fields)

		assert.ErrorContains(t, err, "search request")
	})
}
