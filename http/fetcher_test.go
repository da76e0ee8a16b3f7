package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	maplehttp "github.com/fwojciec/maple/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("downloads the requested version", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"title":"theme"}`))
		}))
		defer srv.Close()

		body, err := maplehttp.NewFetcher(maplehttp.WithBaseURL(srv.URL+"/schema/themes/")).
			Fetch(context.Background(), "v0.1.0")

		require.NoError(t, err)
		assert.Equal(t, "/schema/themes/v0.1.0.json", gotPath)
		assert.JSONEq(t, `{"title":"theme"}`, string(body))
	})

	t.Run("defaults the version", func(t *testing.T) {
		t.Parallel()

		f := maplehttp.NewFetcher()

		assert.Equal(t, "https://zed.dev/schema/themes/v0.2.0.json", f.URL(""))
	})

	t.Run("rejects non-JSON bodies", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not found</html>"))
		}))
		defer srv.Close()

		_, err := maplehttp.NewFetcher(maplehttp.WithBaseURL(srv.URL)).Fetch(context.Background(), "")

		assert.ErrorIs(t, err, maplehttp.ErrNotJSON)
	})

	t.Run("returns error for non-200 status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := maplehttp.NewFetcher(maplehttp.WithBaseURL(srv.URL)).Fetch(context.Background(), "v9")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{}"))
		}))
		defer srv.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := maplehttp.NewFetcher(maplehttp.WithBaseURL(srv.URL), maplehttp.WithHTTPClient(srv.Client())).
			Fetch(ctx, "")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
