package repos

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/dusk/internal/models"
)

// history only covers the current run, everything is cleared on start up
const initSchema = `
  CREATE TABLE IF NOT EXISTS reading (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    cycle_id VARCHAR(36),
    sensor_id TEXT,
    category TEXT,
    value INTEGER,
    last_updated TEXT,
    recorded_at TIMESTAMP
  );

  CREATE TABLE IF NOT EXISTS actuation (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    cycle_id VARCHAR(36),
    group_id TEXT,
    group_name TEXT,
    on_state INTEGER,
    recorded_at TIMESTAMP
  );

  DELETE FROM reading;
  DELETE FROM actuation;
`

type Actuation struct {
	CycleID    string
	GroupID    string
	GroupName  string
	On         bool
	RecordedAt time.Time
}

type HistoryRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewHistoryRepo(logger *log.Logger, db *sql.DB) (*HistoryRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising history schema: %w", err)
	}

	return &HistoryRepo{logger: logger, db: db}, nil
}

func (r *HistoryRepo) RecordReadings(cycleID string, at time.Time, readings []models.SensorReading) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error recording readings for cycle (%s): %w", cycleID, err)
	}
	for _, reading := range readings {
		_, err := tx.Exec(
			`INSERT INTO reading 
      (cycle_id, sensor_id, category, value, last_updated, recorded_at) 
     VALUES ($1, $2, $3, $4, $5, $6);`,
			cycleID,
			reading.ID,
			reading.Category.String(),
			reading.Value,
			reading.Timestamp,
			at.UTC(),
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("Error recording reading (%s) for cycle (%s): %w", reading.ID, cycleID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Error recording readings for cycle (%s): %w", cycleID, err)
	}
	return nil
}

func (r *HistoryRepo) GetCycleReadings(cycleID string) ([]models.SensorReading, error) {
	rows, err := r.db.Query(`
    SELECT sensor_id, category, value, last_updated 
    FROM reading 
    WHERE cycle_id = $1 
    ORDER BY id`, cycleID)
	if err != nil {
		return nil, fmt.Errorf("Error reading readings for cycle (%s): %w", cycleID, err)
	}
	defer rows.Close()

	categories := map[string]models.Category{}
	for _, c := range models.AllCategories {
		categories[c.String()] = c
	}

	readings := []models.SensorReading{}
	for rows.Next() {
		var (
			reading  models.SensorReading
			category string
		)
		if err := rows.Scan(&reading.ID, &category, &reading.Value, &reading.Timestamp); err != nil {
			return nil, fmt.Errorf("Error reading readings for cycle (%s): %w", cycleID, err)
		}
		reading.Category = categories[category]
		readings = append(readings, reading)
	}

	return readings, rows.Err()
}

func (r *HistoryRepo) RecordActuation(cycleID string, at time.Time, group models.GroupState, on bool) error {
	_, err := r.db.Exec(
		`INSERT INTO actuation 
      (cycle_id, group_id, group_name, on_state, recorded_at) 
     VALUES ($1, $2, $3, $4, $5);`,
		cycleID, group.ID, group.Name, on, at.UTC())
	if err != nil {
		return fmt.Errorf("Error recording actuation of group (%s) for cycle (%s): %w", group.Name, cycleID, err)
	}
	return nil
}

// GetLastActuation returns the most recent switch of the group, nil if it
// hasn't been switched since start up.
func (r *HistoryRepo) GetLastActuation(groupID string) (*Actuation, error) {
	row := r.db.QueryRow(`
    SELECT cycle_id, group_id, group_name, on_state, recorded_at 
    FROM actuation 
    WHERE group_id = $1 
    ORDER BY id DESC 
    LIMIT 1`, groupID)

	var a Actuation
	err := row.Scan(&a.CycleID, &a.GroupID, &a.GroupName, &a.On, &a.RecordedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("Error reading last actuation of group (%s): %w", groupID, err)
	}
	return &a, nil
}
