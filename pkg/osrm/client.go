package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lintang-b-s/routesynth/pkg"
	da "github.com/lintang-b-s/routesynth/pkg/datastructure"
	"github.com/lintang-b-s/routesynth/pkg/util"
)

const (
	DefaultBaseURL = "https://router.project-osrm.org"
	userAgent      = "routesynth/1.0"
	unnamedRoad    = "unnamed road"
)

type routeResponse struct {
	Code   string  `json:"code"`
	Routes []route `json:"routes"`
}

type route struct {
	Legs []leg `json:"legs"`
}

type leg struct {
	Steps []step `json:"steps"`
}

type step struct {
	Name string `json:"name"`
}

// Client. road names from an OSRM /route service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func routeParams(routeType pkg.RouteType) string {
	switch routeType {
	case pkg.SHORTEST:
		return "steps=true&overview=full&alternatives=false&geometries=geojson"
	case pkg.AVOID_TOLLS:
		return "steps=true&overview=full&exclude=toll"
	default:
		return "steps=true&overview=full"
	}
}

func (c *Client) routeURL(start, end da.Location, routeType pkg.RouteType) string {
	return fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?%s", c.baseURL,
		start.GetLon(), start.GetLat(), end.GetLon(), end.GetLat(), routeParams(routeType))
}

// LookupRoadSegments. step names of the first leg of the first route. empty names become
// "unnamed road", consecutive duplicates are collapsed.
func (c *Client) LookupRoadSegments(ctx context.Context, start, end da.Location,
	routeType pkg.RouteType) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.routeURL(start, end, routeType), nil)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "osrm: build request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "osrm: call route service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.WrapErrorf(nil, util.ErrInternalServerError, "osrm: route service returned status %d",
			resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "osrm: decode response")
	}
	return roadNames(body), nil
}

func roadNames(body routeResponse) []string {
	if len(body.Routes) == 0 || len(body.Routes[0].Legs) == 0 {
		return nil
	}
	names := make([]string, 0, len(body.Routes[0].Legs[0].Steps))
	for _, s := range body.Routes[0].Legs[0].Steps {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			name = unnamedRoad
		}
		if len(names) > 0 && names[len(names)-1] == name {
			continue
		}
		names = append(names, name)
	}
	return names
}
