package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/astroguard/backend/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		TrajectorySamples: 10,
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	if resp["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", resp["status"])
	}
	if resp["service"] != "astroguard-api" {
		t.Errorf("service field = %v, want astroguard-api", resp["service"])
	}
}

func TestGetHistoricalImpacts(t *testing.T) {
	router := gin.New()
	router.GET("/historical-impacts", GetHistoricalImpacts)

	req := httptest.NewRequest("GET", "/historical-impacts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	resp := decode(t, w)
	impacts, ok := resp["impacts"].([]interface{})
	if !ok {
		t.Fatalf("impacts field missing or wrong type: %T", resp["impacts"])
	}
	if len(impacts) != 8 {
		t.Errorf("catalog size = %d, want 8", len(impacts))
	}
}

func TestCompareToHistorical(t *testing.T) {
	router := gin.New()
	router.POST("/historical-impacts/compare", CompareToHistorical)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantImpact string
	}{
		{
			name:       "tunguska scale event",
			body:       gin.H{"energy_mt": 15, "crater_km": 0},
			wantStatus: http.StatusOK,
			wantImpact: "Tunguska Event",
		},
		{
			name:       "energy as string",
			body:       gin.H{"energy_mt": "15"},
			wantStatus: http.StatusOK,
			wantImpact: "Tunguska Event",
		},
		{
			name:       "zero energy rejected",
			body:       gin.H{"energy_mt": 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing energy rejected",
			body:       gin.H{"crater_km": 1.2},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/historical-impacts/compare", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			resp := decode(t, w)
			if tt.wantStatus == http.StatusOK {
				if resp["closest_impact"] == nil {
					t.Fatal("closest_impact missing")
				}
				impact := resp["closest_impact"].(map[string]interface{})
				if impact["name"] != tt.wantImpact {
					t.Errorf("closest impact = %v, want %v", impact["name"], tt.wantImpact)
				}
				if resp["hiroshima_equivalent"].(float64) <= 0 {
					t.Error("hiroshima_equivalent should be positive")
				}
			} else if resp["success"] != false {
				t.Errorf("success = %v, want false", resp["success"])
			}
		})
	}
}

func TestSimulateMultiImpactValidation(t *testing.T) {
	router := gin.New()
	router.POST("/simulate/multi", SimulateMultiImpact(testConfig()))

	six := make([]gin.H, 6)
	for i := range six {
		six[i] = gin.H{"asteroidId": "x"}
	}

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "empty list", body: gin.H{"asteroids": []gin.H{}}},
		{name: "missing list", body: gin.H{}},
		{name: "six asteroids", body: gin.H{"asteroids": six}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/simulate/multi", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			resp := decode(t, w)
			if resp["error"] != "Please provide 1-5 asteroids" {
				t.Errorf("error = %v", resp["error"])
			}
		})
	}
}

func TestSimulateMultiImpact(t *testing.T) {
	router := gin.New()
	router.POST("/simulate/multi", SimulateMultiImpact(testConfig()))

	body := gin.H{"asteroids": []gin.H{
		{"asteroidId": "a", "diameter": 0.5, "velocity": 25},
		{"name": "second", "mitigationDeltaV": 100},
	}}
	w := postJSON(t, router, "/simulate/multi", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)

	results := resp["individual_results"].([]interface{})
	if len(results) != 2 {
		t.Fatalf("individual_results = %d entries, want 2", len(results))
	}
	first := results[0].(map[string]interface{})
	if first["asteroid_id"] != "a" {
		t.Errorf("first asteroid_id = %v", first["asteroid_id"])
	}
	if first["impact_energy_mt"].(float64) <= 0 {
		t.Error("first event should carry positive energy")
	}
	second := results[1].(map[string]interface{})
	if second["asteroid_id"] != "asteroid-1" {
		t.Errorf("default asteroid_id = %v, want asteroid-1", second["asteroid_id"])
	}
	if second["asteroid_name"] != "second" {
		t.Errorf("asteroid_name = %v", second["asteroid_name"])
	}

	trajectories := resp["trajectories"].([]interface{})
	if len(trajectories) != 2 {
		t.Fatalf("trajectories = %d entries, want 2", len(trajectories))
	}
	tr := trajectories[0].(map[string]interface{})
	if tr["color"] != displayColors[0] {
		t.Errorf("color = %v, want %v", tr["color"], displayColors[0])
	}
	orig := tr["original_trajectory"].([]interface{})
	if len(orig) != testConfig().TrajectorySamples {
		t.Errorf("trajectory samples = %d, want %d", len(orig), testConfig().TrajectorySamples)
	}

	combined := resp["combined_effects"].(map[string]interface{})
	if combined["impact_count"].(float64) != 2 {
		t.Errorf("impact_count = %v, want 2", combined["impact_count"])
	}
	if combined["total_energy_mt"].(float64) <= 0 {
		t.Error("total_energy_mt should be positive")
	}
}
