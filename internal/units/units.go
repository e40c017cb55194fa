package units

import (
	"math"
	"strconv"
	"strings"
)

// AUInMeters is one astronomical unit in meters.
const AUInMeters = 149597870700.0

// ToFloat converts a loosely typed value to a float64, returning def on any
// failure. Upstream catalogs (JPL SBDB in particular) report numbers as
// strings, so every ingestion boundary goes through here instead of ad hoc
// parsing.
func ToFloat(value interface{}, def float64) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// AUToMeters converts a value in astronomical units to meters.
// Unparseable input converts as 0.
func AUToMeters(value interface{}) float64 {
	return ToFloat(value, 0) * AUInMeters
}

// DegToRad converts a value in degrees to radians.
// Unparseable input converts as 0.
func DegToRad(value interface{}) float64 {
	return ToFloat(value, 0) * math.Pi / 180
}

// KmToMeters converts a value in kilometers to meters, with a default in km.
func KmToMeters(value interface{}, defKm float64) float64 {
	return ToFloat(value, defKm) * 1000
}

// KmsToMs converts a value in km/s to m/s, with a default in km/s.
func KmsToMs(value interface{}, defKms float64) float64 {
	return ToFloat(value, defKms) * 1000
}
