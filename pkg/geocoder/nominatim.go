package geocoder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/util"
)

const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "routesynth/1.0"
)

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Nominatim. free-text place name -> Location via the nominatim /search endpoint.
type Nominatim struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatim(baseURL string, timeout time.Duration) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Nominatim{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GeocodeLocation. first match only. the returned name is the CityKey of the display name.
func (n *Nominatim) GeocodeLocation(ctx context.Context, name string) (da.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return da.Location{}, util.WrapErrorf(nil, util.ErrBadParamInput, "geocoder: empty place name")
	}

	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return da.Location{}, util.WrapErrorf(err, util.ErrInternalServerError, "geocoder: build request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return da.Location{}, util.WrapErrorf(err, util.ErrInternalServerError, "geocoder: call search service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return da.Location{}, util.WrapErrorf(nil, util.ErrInternalServerError,
			"geocoder: search service returned status %d", resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return da.Location{}, util.WrapErrorf(err, util.ErrInternalServerError, "geocoder: decode response")
	}
	if len(places) == 0 {
		return da.Location{}, util.WrapErrorf(nil, util.ErrNotFound, "geocoder: location %q not found", name)
	}

	lat, err := util.StringToFloat64(places[0].Lat)
	if err != nil {
		return da.Location{}, util.WrapErrorf(err, util.ErrInternalServerError, "geocoder: invalid latitude")
	}
	lon, err := util.StringToFloat64(places[0].Lon)
	if err != nil {
		return da.Location{}, util.WrapErrorf(err, util.ErrInternalServerError, "geocoder: invalid longitude")
	}
	return da.NewLocation(da.ExtractCityName(places[0].DisplayName), lat, lon), nil
}
