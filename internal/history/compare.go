package history

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// hiroshimaEnergyMt is the reference-bomb yield used for equivalence counts.
const hiroshimaEnergyMt = 0.015

// ComparisonResult relates a simulated impact to its closest catalog entry.
type ComparisonResult struct {
	ClosestImpact       Impact  `json:"closest_impact"`
	EnergyRatio         float64 `json:"energy_ratio"`
	ComparisonText      string  `json:"comparison_text"`
	HiroshimaEquivalent float64 `json:"hiroshima_equivalent"`
	HiroshimaText       string  `json:"hiroshima_text"`
}

var englishPrinter = message.NewPrinter(language.English)

// ClosestComparison finds the catalog entry whose energy is nearest to the
// simulated energy in ratio terms. The distance metric is |ratio-1|, which
// stays below 1 for any candidate larger than the input but grows without
// bound for smaller ones, so ties lean toward candidates at or above the
// simulated energy. craterKm is accepted for symmetry with the route layer
// but does not affect the match.
//
// Returns nil when energyMt is not positive.
func ClosestComparison(energyMt, craterKm float64) *ComparisonResult {
	if energyMt <= 0 {
		return nil
	}

	var closest *Impact
	minDiff := math.Inf(1)
	for i := range catalog {
		candidate := &catalog[i]
		if candidate.EnergyMt <= 0 {
			continue
		}
		ratio := energyMt / candidate.EnergyMt
		diff := math.Abs(ratio - 1)
		if ratio <= 1 {
			diff = math.Abs(1 - ratio)
		}
		if diff < minDiff {
			minDiff = diff
			closest = candidate
		}
	}
	if closest == nil {
		closest = &catalog[0]
	}

	ratio := 0.0
	if closest.EnergyMt > 0 {
		ratio = energyMt / closest.EnergyMt
	}

	equivalent := energyMt / hiroshimaEnergyMt

	return &ComparisonResult{
		ClosestImpact:       *closest,
		EnergyRatio:         ratio,
		ComparisonText:      comparisonText(ratio, closest.Name),
		HiroshimaEquivalent: equivalent,
		HiroshimaText:       englishPrinter.Sprintf("Equivalent to %d Hiroshima bombs", int64(equivalent)),
	}
}

// comparisonText buckets the energy ratio into a human-readable sentence.
func comparisonText(ratio float64, name string) string {
	switch {
	case ratio < 0.01:
		return fmt.Sprintf("much smaller than %s", name)
	case ratio < 0.1:
		return fmt.Sprintf("about 1/%d the energy of %s", int(1/ratio), name)
	case ratio < 0.5:
		return fmt.Sprintf("about %.0f%% the energy of %s", ratio*100, name)
	case ratio < 2:
		return fmt.Sprintf("comparable to %s", name)
	case ratio < 10:
		return fmt.Sprintf("about %.1fx %s", ratio, name)
	case ratio < 100:
		return fmt.Sprintf("about %dx %s", int(ratio), name)
	default:
		return fmt.Sprintf("vastly larger than %s", name)
	}
}
