package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/forja-fit/forja/internal/models"
)

func (s *Storage) CreateCatalogExercise(ex models.CatalogExercise) error {
	ctx := context.Background()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO catalog_exercises
			(id, name, equipment, primary_muscle, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				equipment = excluded.equipment,
				primary_muscle = excluded.primary_muscle,
				description = excluded.description`,
		ex.ID,
		ex.Name,
		ex.Equipment,
		ex.PrimaryMuscle,
		ex.Description,
		ex.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Storage) GetCatalogExerciseByName(name string) (*models.CatalogExercise, error) {
	return s.scanCatalogRow(s.DB.QueryRow(
		`SELECT id, name, equipment, primary_muscle, description, created_at
		FROM catalog_exercises WHERE name = ?`,
		name,
	))
}

func (s *Storage) GetCatalogExerciseByID(id string) (*models.CatalogExercise, error) {
	return s.scanCatalogRow(s.DB.QueryRow(
		`SELECT id, name, equipment, primary_muscle, description, created_at
		FROM catalog_exercises WHERE id = ?`,
		id,
	))
}

// NameAndEquipment is the display lookup used when rendering a session;
// the engine never persists what it returns.
func (s *Storage) NameAndEquipment(catalogID string) (name, equipment string, err error) {
	err = s.DB.QueryRow(
		`SELECT name, equipment FROM catalog_exercises WHERE id = ?`,
		catalogID,
	).Scan(&name, &equipment)
	if err == sql.ErrNoRows {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to look up catalog exercise: %w", err)
	}
	return name, equipment, nil
}

func (s *Storage) CatalogExerciseExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM catalog_exercises WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check catalog existence: %w", err)
	}

	return exists, nil
}

func (s *Storage) scanCatalogRow(row *sql.Row) (*models.CatalogExercise, error) {
	var ex models.CatalogExercise
	var createdAt string

	err := row.Scan(
		&ex.ID,
		&ex.Name,
		&ex.Equipment,
		&ex.PrimaryMuscle,
		&ex.Description,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &ex, nil
}
