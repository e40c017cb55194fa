package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/astroguard/backend/internal/cache"
	"github.com/astroguard/backend/internal/config"
	"github.com/astroguard/backend/internal/observability"
	"github.com/astroguard/backend/internal/physics"
	"github.com/astroguard/backend/internal/units"
)

const userAgent = "AstroGuard/1.0 (education)"

// Client talks to the JPL Sentry, SBDB and NASA NeoWs APIs. Responses are
// cached and all outbound calls share one rate limiter, since the default
// DEMO_KEY has a very small request budget.
type Client struct {
	httpClient *http.Client
	cache      cache.Cache
	limiter    *rate.Limiter
	cacheTTL   time.Duration

	apiKey        string
	sentryURL     string
	sbdbURL       string
	neoURL        string
	lookaheadDays int
}

// NewClient builds a NASA API client from configuration.
func NewClient(cfg *config.Config, c cache.Cache) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.UpstreamTimeoutSecs) * time.Second,
		},
		cache:         c,
		limiter:       rate.NewLimiter(rate.Limit(cfg.UpstreamRateLimitRPS), cfg.UpstreamRateBurst),
		cacheTTL:      time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		apiKey:        cfg.NASAAPIKey,
		sentryURL:     cfg.SentryAPIURL,
		sbdbURL:       cfg.SBDBAPIURL,
		neoURL:        cfg.NeoAPIURL,
		lookaheadDays: cfg.NEOLookaheadDays,
	}
}

// Asteroid is a summary entry from the Sentry risk list.
type Asteroid struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DiameterKm        float64 `json:"diameter"`
	VelocityKms       float64 `json:"velocity"`
	ImpactProbability float64 `json:"impact_probability"`
	PalermoScale      float64 `json:"palermo_scale"`
}

// AsteroidDetails carries SBDB orbital elements normalized to SI plus the
// physical parameters the simulation needs.
type AsteroidDetails struct {
	Designation string
	Name        string
	Elements    physics.OrbitalElements
	DiameterM   float64
	VelocityMS  float64
}

// getJSON fetches a URL through the rate limiter and cache and decodes the
// body into out.
func (c *Client) getJSON(ctx context.Context, api, url string, out interface{}) error {
	key := cache.Key(url)
	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			observability.CacheEvents.WithLabelValues("hit").Inc()
			return json.Unmarshal(body, out)
		}
		observability.CacheEvents.WithLabelValues("miss").Inc()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.UpstreamRequests.WithLabelValues(api, "error").Inc()
		return fmt.Errorf("fetch %s: %w", api, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		observability.UpstreamRequests.WithLabelValues(api, "error").Inc()
		return fmt.Errorf("fetch %s: unexpected status %d", api, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.UpstreamRequests.WithLabelValues(api, "error").Inc()
		return fmt.Errorf("read %s response: %w", api, err)
	}
	observability.UpstreamRequests.WithLabelValues(api, "ok").Inc()

	if c.cache != nil {
		if err := c.cache.Set(key, body, c.cacheTTL); err != nil {
			log.Printf("[CACHE] Failed to store %s response: %v", api, err)
		}
	}

	return json.Unmarshal(body, out)
}

// PotentiallyHazardous returns the first five objects on the Sentry risk
// list. Sentry reports numbers as strings, so every field goes through the
// tolerant normalizer.
func (c *Client) PotentiallyHazardous(ctx context.Context) ([]Asteroid, error) {
	var payload struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := c.getJSON(ctx, "sentry", c.sentryURL, &payload); err != nil {
		return nil, err
	}

	asteroids := make([]Asteroid, 0, 5)
	for _, neo := range payload.Data {
		if len(asteroids) == 5 {
			break
		}
		des, _ := neo["des"].(string)
		name := des
		if name == "" {
			name = "Unknown"
		}
		asteroids = append(asteroids, Asteroid{
			ID:                des,
			Name:              name,
			DiameterKm:        units.ToFloat(neo["diameter"], 0.1),
			VelocityKms:       units.ToFloat(neo["v_inf"], 15),
			ImpactProbability: units.ToFloat(neo["ip"], 0),
			PalermoScale:      units.ToFloat(neo["ps"], 0),
		})
	}

	return asteroids, nil
}

// sbdbResponse mirrors the loosely typed SBDB payload: every numeric field
// arrives as a string.
type sbdbResponse struct {
	Object struct {
		Fullname string `json:"fullname"`
	} `json:"object"`
	OrbitalData  map[string]interface{} `json:"orbital_data"`
	PhysicalData map[string]interface{} `json:"physical_data"`
}

// Lookup fetches SBDB orbital and physical data for a designation and
// normalizes it to SI units: AU to meters, degrees to radians, km to
// meters, km/s to m/s. Missing fields take the documented defaults
// (1 AU orbit, 0.1 km body at 20 km/s).
func (c *Client) Lookup(ctx context.Context, designation string) (*AsteroidDetails, error) {
	var payload sbdbResponse
	url := fmt.Sprintf("%s?des=%s", c.sbdbURL, designation)
	if err := c.getJSON(ctx, "sbdb", url, &payload); err != nil {
		return nil, err
	}

	return detailsFromSBDB(designation, &payload), nil
}

func detailsFromSBDB(designation string, payload *sbdbResponse) *AsteroidDetails {
	orbital := payload.OrbitalData
	physical := payload.PhysicalData

	name := payload.Object.Fullname
	if name == "" {
		name = designation
	}

	a := units.AUToMeters(orbital["semi_major_axis"])
	if a == 0 {
		a = units.AUInMeters
	}
	e := units.ToFloat(orbital["eccentricity"], 0.1)

	return &AsteroidDetails{
		Designation: designation,
		Name:        name,
		Elements: physics.OrbitalElements{
			A:     a,
			E:     e,
			I:     units.DegToRad(orbital["inclination"]),
			Omega: units.DegToRad(orbital["longitude_of_ascending_node"]),
			W:     units.DegToRad(orbital["argument_of_periapsis"]),
			M:     units.DegToRad(orbital["mean_anomaly"]),
		},
		DiameterM:  units.KmToMeters(physical["diameter"], 0.1),
		VelocityMS: units.KmsToMs(physical["v_inf"], 20.0),
	}
}

// FallbackDetails returns the fixed stand-in object used when SBDB is
// unreachable: a 100 m body at 20 km/s on a mildly eccentric 1.5 AU orbit.
func FallbackDetails(designation string) *AsteroidDetails {
	return &AsteroidDetails{
		Designation: designation,
		Name:        designation,
		Elements: physics.OrbitalElements{
			A: 1.5 * units.AUInMeters,
			E: 0.1,
		},
		DiameterM:  100,
		VelocityMS: 20000,
	}
}
