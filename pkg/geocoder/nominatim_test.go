package geocoder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lintang-b-s/routesynth/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codeOf(t *testing.T, err error) error {
	t.Helper()
	var uerr *util.Error
	require.True(t, errors.As(err, &uerr))
	return uerr.Code()
}

func TestGeocodeLocation(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		switch gotQuery {
		case "Surabaya":
			_, _ = w.Write([]byte(`[{"lat":"-7.2459717","lon":"112.7378266","display_name":"Surabaya, East Java, Java, Indonesia"}]`))
		case "broken":
			_, _ = w.Write([]byte(`[{"lat":"north","lon":"112.7","display_name":"Broken"}]`))
		case "down":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, time.Second)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		loc, err := n.GeocodeLocation(ctx, "  Surabaya ")
		require.NoError(t, err)
		assert.Equal(t, "Surabaya", gotQuery)
		assert.Equal(t, "Surabaya", loc.GetName())
		assert.InDelta(t, -7.2459717, loc.GetLat(), 1e-9)
		assert.InDelta(t, 112.7378266, loc.GetLon(), 1e-9)
	})

	testCases := []struct {
		name     string
		query    string
		wantCode error
	}{
		{name: "empty name", query: "   ", wantCode: util.ErrBadParamInput},
		{name: "no result", query: "Atlantis", wantCode: util.ErrNotFound},
		{name: "bad coordinate", query: "broken", wantCode: util.ErrInternalServerError},
		{name: "service down", query: "down", wantCode: util.ErrInternalServerError},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.GeocodeLocation(ctx, tt.query)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, codeOf(t, err))
		})
	}
}
