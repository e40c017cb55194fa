package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect establishes a connection to PostgreSQL.
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// SimulationRecord is one completed single-impact simulation.
type SimulationRecord struct {
	ID               int       `db:"id" json:"id"`
	AsteroidID       string    `db:"asteroid_id" json:"asteroid_id"`
	AsteroidName     string    `db:"asteroid_name" json:"asteroid_name"`
	ImpactLat        float64   `db:"impact_lat" json:"impact_lat"`
	ImpactLon        float64   `db:"impact_lon" json:"impact_lon"`
	MitigationDeltaV float64   `db:"mitigation_delta_v" json:"mitigation_delta_v"`
	EnergyMt         float64   `db:"energy_mt" json:"energy_mt"`
	CraterKm         float64   `db:"crater_km" json:"crater_km"`
	SeismicMagnitude float64   `db:"seismic_magnitude" json:"seismic_magnitude"`
	FireballKm       float64   `db:"fireball_km" json:"fireball_km"`
	TsunamiRisk      bool      `db:"tsunami_risk" json:"tsunami_risk"`
	TargetType       string    `db:"target_type" json:"target_type"`
	MissDistanceKm   float64   `db:"miss_distance_km" json:"miss_distance_km"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// Store persists simulation history. A nil *Store disables persistence.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// SaveSimulation records a completed simulation.
func (s *Store) SaveSimulation(ctx context.Context, rec *SimulationRecord) error {
	query := `
		INSERT INTO simulations (
			asteroid_id, asteroid_name, impact_lat, impact_lon,
			mitigation_delta_v, energy_mt, crater_km, seismic_magnitude,
			fireball_km, tsunami_risk, target_type, miss_distance_km
		) VALUES (
			:asteroid_id, :asteroid_name, :impact_lat, :impact_lon,
			:mitigation_delta_v, :energy_mt, :crater_km, :seismic_magnitude,
			:fireball_km, :tsunami_risk, :target_type, :miss_distance_km
		)`
	_, err := s.db.NamedExecContext(ctx, query, rec)
	return err
}

// RecentSimulations returns the newest simulations, most recent first.
func (s *Store) RecentSimulations(ctx context.Context, limit int) ([]SimulationRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	records := []SimulationRecord{}
	err := s.db.SelectContext(ctx, &records,
		`SELECT * FROM simulations ORDER BY created_at DESC LIMIT $1`, limit)
	return records, err
}
