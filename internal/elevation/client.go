package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/astroguard/backend/internal/cache"
	"github.com/astroguard/backend/internal/config"
	"github.com/astroguard/backend/internal/observability"
	"github.com/astroguard/backend/internal/units"
)

const userAgent = "AstroGuard/1.0 (education)"

// Client resolves terrain elevation for an impact site. USGS EPQS is the
// primary source, Open-Meteo the fallback; when both fail the site is
// treated as sea level (0 m), never an error, since elevation only refines
// the effect estimates.
type Client struct {
	httpClient   *http.Client
	cache        cache.Cache
	cacheTTL     time.Duration
	usgsURL      string
	openMeteoURL string
}

// NewClient builds an elevation client from configuration.
func NewClient(cfg *config.Config, c cache.Cache) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.UpstreamTimeoutSecs) * time.Second,
		},
		cache:        c,
		cacheTTL:     time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		usgsURL:      cfg.USGSElevationURL,
		openMeteoURL: cfg.OpenMeteoElevationURL,
	}
}

// Lookup returns the surface elevation in meters at a coordinate
// (negative below sea level).
func (c *Client) Lookup(ctx context.Context, lat, lon float64) float64 {
	key := cache.Key(fmt.Sprintf("elevation:%.4f:%.4f", lat, lon))
	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			observability.CacheEvents.WithLabelValues("hit").Inc()
			return units.ToFloat(string(body), 0)
		}
		observability.CacheEvents.WithLabelValues("miss").Inc()
	}

	elev, ok := c.lookupUSGS(ctx, lat, lon)
	if !ok {
		elev, ok = c.lookupOpenMeteo(ctx, lat, lon)
	}
	if !ok {
		log.Printf("[ELEVATION] All providers failed for (%.4f, %.4f), assuming sea level", lat, lon)
		elev = 0
	}

	if c.cache != nil {
		if err := c.cache.Set(key, []byte(fmt.Sprintf("%g", elev)), c.cacheTTL); err != nil {
			log.Printf("[CACHE] Failed to store elevation: %v", err)
		}
	}

	return elev
}

func (c *Client) fetch(ctx context.Context, api, url string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.UpstreamRequests.WithLabelValues(api, "error").Inc()
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observability.UpstreamRequests.WithLabelValues(api, "error").Inc()
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.UpstreamRequests.WithLabelValues(api, "error").Inc()
		return nil, false
	}
	observability.UpstreamRequests.WithLabelValues(api, "ok").Inc()
	return body, true
}

func (c *Client) lookupUSGS(ctx context.Context, lat, lon float64) (float64, bool) {
	url := fmt.Sprintf("%s?x=%g&y=%g&units=Meters&output=json", c.usgsURL, lon, lat)
	body, ok := c.fetch(ctx, "usgs", url)
	if !ok {
		return 0, false
	}

	var payload struct {
		Service struct {
			Query struct {
				Elevation interface{} `json:"Elevation"`
			} `json:"Elevation_Query"`
		} `json:"USGS_Elevation_Point_Query_Service"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, false
	}
	if payload.Service.Query.Elevation == nil {
		return 0, false
	}

	return units.ToFloat(payload.Service.Query.Elevation, 0), true
}

func (c *Client) lookupOpenMeteo(ctx context.Context, lat, lon float64) (float64, bool) {
	url := fmt.Sprintf("%s?latitude=%g&longitude=%g", c.openMeteoURL, lat, lon)
	body, ok := c.fetch(ctx, "open-meteo", url)
	if !ok {
		return 0, false
	}

	var payload struct {
		Elevation []interface{} `json:"elevation"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, false
	}
	if len(payload.Elevation) == 0 {
		return 0, false
	}

	return units.ToFloat(payload.Elevation[0], 0), true
}
