package nasa

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/astroguard/backend/internal/units"
)

// CloseApproach is one upcoming near-Earth-object pass.
type CloseApproach struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	CloseApproachDate      string  `json:"close_approach_date"`
	EpochCloseApproach     int64   `json:"epoch_date_close_approach"`
	MissDistanceKm         float64 `json:"miss_distance_km"`
	MissDistanceLunar      float64 `json:"miss_distance_lunar"`
	VelocityKmS            float64 `json:"velocity_km_s"`
	DiameterMinM           float64 `json:"diameter_min_m"`
	DiameterMaxM           float64 `json:"diameter_max_m"`
	AvgDiameterM           float64 `json:"avg_diameter_m"`
	IsPotentiallyHazardous bool    `json:"is_potentially_hazardous"`
	RiskLevel              string  `json:"risk_level"`
	NasaJplURL             string  `json:"nasa_jpl_url"`
}

// CloseApproachFeed is the close-approach window served to clients.
type CloseApproachFeed struct {
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Approaches []CloseApproach `json:"close_approaches"`
}

type neoFeedResponse struct {
	NearEarthObjects map[string][]struct {
		ID                     string `json:"id"`
		Name                   string `json:"name"`
		NasaJplURL             string `json:"nasa_jpl_url"`
		IsPotentiallyHazardous bool   `json:"is_potentially_hazardous_asteroid"`
		EstimatedDiameter      struct {
			Meters struct {
				Min float64 `json:"estimated_diameter_min"`
				Max float64 `json:"estimated_diameter_max"`
			} `json:"meters"`
		} `json:"estimated_diameter"`
		CloseApproachData []struct {
			CloseApproachDateFull  string `json:"close_approach_date_full"`
			EpochDateCloseApproach int64  `json:"epoch_date_close_approach"`
			MissDistance           struct {
				Kilometers string `json:"kilometers"`
				Lunar      string `json:"lunar"`
			} `json:"miss_distance"`
			RelativeVelocity struct {
				KilometersPerSecond string `json:"kilometers_per_second"`
			} `json:"relative_velocity"`
		} `json:"close_approach_data"`
	} `json:"near_earth_objects"`
}

// riskLevel buckets a pass by hazard flag and lunar-distance proximity.
func riskLevel(hazardous bool, lunarDistance float64) string {
	switch {
	case hazardous && lunarDistance < 1:
		return "extreme"
	case hazardous && lunarDistance < 5:
		return "high"
	case lunarDistance < 10:
		return "moderate"
	default:
		return "low"
	}
}

// CloseApproaches fetches the NeoWs feed for the configured lookahead
// window and flattens it into a date-sorted list of passes.
func (c *Client) CloseApproaches(ctx context.Context) (*CloseApproachFeed, error) {
	start := time.Now()
	end := start.AddDate(0, 0, c.lookaheadDays)
	startDate := start.Format("2006-01-02")
	endDate := end.Format("2006-01-02")

	url := fmt.Sprintf("%s?start_date=%s&end_date=%s&api_key=%s", c.neoURL, startDate, endDate, c.apiKey)

	var payload neoFeedResponse
	if err := c.getJSON(ctx, "neows", url, &payload); err != nil {
		return nil, err
	}

	feed := &CloseApproachFeed{
		StartDate:  startDate,
		EndDate:    endDate,
		Approaches: make([]CloseApproach, 0, 32),
	}

	for _, neos := range payload.NearEarthObjects {
		for _, neo := range neos {
			for _, approach := range neo.CloseApproachData {
				lunar := units.ToFloat(approach.MissDistance.Lunar, 0)
				minD := neo.EstimatedDiameter.Meters.Min
				maxD := neo.EstimatedDiameter.Meters.Max

				feed.Approaches = append(feed.Approaches, CloseApproach{
					ID:                     neo.ID,
					Name:                   neo.Name,
					CloseApproachDate:      approach.CloseApproachDateFull,
					EpochCloseApproach:     approach.EpochDateCloseApproach,
					MissDistanceKm:         units.ToFloat(approach.MissDistance.Kilometers, 0),
					MissDistanceLunar:      lunar,
					VelocityKmS:            units.ToFloat(approach.RelativeVelocity.KilometersPerSecond, 0),
					DiameterMinM:           minD,
					DiameterMaxM:           maxD,
					AvgDiameterM:           (minD + maxD) / 2,
					IsPotentiallyHazardous: neo.IsPotentiallyHazardous,
					RiskLevel:              riskLevel(neo.IsPotentiallyHazardous, lunar),
					NasaJplURL:             neo.NasaJplURL,
				})
			}
		}
	}

	sort.Slice(feed.Approaches, func(i, j int) bool {
		return feed.Approaches[i].EpochCloseApproach < feed.Approaches[j].EpochCloseApproach
	})

	return feed, nil
}

// DemoCloseApproaches is the fixed fallback feed served when NeoWs is
// unreachable, so demo frontends keep rendering.
func DemoCloseApproaches() *CloseApproachFeed {
	return &CloseApproachFeed{
		StartDate: "2026-02-05",
		EndDate:   "2026-02-12",
		Approaches: []CloseApproach{
			{
				ID: "demo-1", Name: "2024 AA (Demo)",
				CloseApproachDate: "2026-Feb-06 12:30", EpochCloseApproach: 1738843800000,
				MissDistanceKm: 3500000, MissDistanceLunar: 9.1, VelocityKmS: 12.5,
				DiameterMinM: 100, DiameterMaxM: 220, AvgDiameterM: 160,
				IsPotentiallyHazardous: false, RiskLevel: "low",
				NasaJplURL: "https://ssd.jpl.nasa.gov/",
			},
			{
				ID: "demo-2", Name: "2025 BX3 (Demo)",
				CloseApproachDate: "2026-Feb-08 08:15", EpochCloseApproach: 1739001300000,
				MissDistanceKm: 1200000, MissDistanceLunar: 3.1, VelocityKmS: 18.2,
				DiameterMinM: 250, DiameterMaxM: 560, AvgDiameterM: 405,
				IsPotentiallyHazardous: true, RiskLevel: "high",
				NasaJplURL: "https://ssd.jpl.nasa.gov/",
			},
			{
				ID: "demo-3", Name: "2026 CY7 (Demo)",
				CloseApproachDate: "2026-Feb-11 16:45", EpochCloseApproach: 1739288700000,
				MissDistanceKm: 7800000, MissDistanceLunar: 20.3, VelocityKmS: 8.7,
				DiameterMinM: 50, DiameterMaxM: 110, AvgDiameterM: 80,
				IsPotentiallyHazardous: false, RiskLevel: "low",
				NasaJplURL: "https://ssd.jpl.nasa.gov/",
			},
		},
	}
}
