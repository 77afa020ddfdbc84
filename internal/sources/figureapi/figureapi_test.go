package figureapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtrack/figtrack/internal/transport"
	"github.com/figtrack/figtrack/pkg/catalogs"
	"github.com/figtrack/figtrack/pkg/errors"
)

const sampleResponse = `{
  "figures": [
    {
      "name": "Luigi",
      "character": "Luigi",
      "series": "Super Smash Bros.",
      "game_series": "Super Mario",
      "head": "00010000",
      "tail": "00000003",
      "type": "figure",
      "release": {"na": "2014-11-21", "eu": "2014-11-28"}
    }
  ]
}`

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	figures, err := New(srv.URL, transport.New(0)).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, figures, 1)

	luigi := figures[0]
	assert.Equal(t, "Luigi", luigi.Name)
	assert.Equal(t, "00010000", luigi.Head)
	assert.Equal(t, "2014-11-21", luigi.Release[catalogs.RegionNA])
	assert.False(t, luigi.IsPlaceholder())
}

func TestFetchAllServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, transport.New(0)).FetchAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsBackfill(err))
	assert.ErrorIs(t, err, errors.ErrSourceUnavailable)
}

func TestFetchAllMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, transport.New(0)).FetchAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsBackfill(err))
}
