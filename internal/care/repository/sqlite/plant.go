package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"plant-care-management/internal/model"

	repo "plant-care-management/internal/care/repository"
)

const plantColumns = `id, user_id, name, type_name, watering_interval_days, fertilizing_interval_days, is_active, created_at, updated_at`

func scanPlant(row interface{ Scan(...any) error }) (model.Plant, error) {
	var (
		p      model.Plant
		active int
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.TypeName,
		&p.WateringIntervalDays, &p.FertilizingIntervalDays,
		&active, &p.CreatedAt, &p.UpdatedAt,
	)
	p.IsActive = active == 1
	return p, err
}

// GetPlant retrieves a single plant owned by the scope user.
// Returns zero-value Plant (ID == "") when not found.
func (r *implRepository) GetPlant(ctx context.Context, sc model.Scope, id string) (model.Plant, error) {
	query := fmt.Sprintf(`SELECT %s FROM plants WHERE id = ? AND user_id = ? LIMIT 1`, plantColumns)

	p, err := scanPlant(r.db.QueryRowContext(ctx, query, id, sc.UserID))
	if err == sql.ErrNoRows {
		return model.Plant{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPlant"), err)
		return model.Plant{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPlants returns the scope user's plants ordered by name.
func (r *implRepository) ListPlants(ctx context.Context, sc model.Scope, opt repo.ListPlantsOptions) ([]model.Plant, error) {
	query := fmt.Sprintf(`SELECT %s FROM plants WHERE user_id = ?`, plantColumns)
	args := []any{sc.UserID}
	if opt.ActiveOnly {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPlants"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var plants []model.Plant
	for rows.Next() {
		p, scanErr := scanPlant(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

// SetInterval updates the configured interval for one care kind.
func (r *implRepository) SetInterval(ctx context.Context, sc model.Scope, opt repo.SetIntervalOptions) error {
	column := "watering_interval_days"
	if opt.Kind == model.CareKindFertilizing {
		column = "fertilizing_interval_days"
	}

	query := fmt.Sprintf(`UPDATE plants SET %s = ?, updated_at = ? WHERE id = ? AND user_id = ?`, column)
	res, err := r.db.ExecContext(ctx, query, opt.IntervalDays, time.Now().UTC(), opt.PlantID, sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetInterval"), err)
		return repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo.ErrFailedToUpdate
	}
	return nil
}
