package sqlite

import (
	"context"
	"strings"
	"time"

	"plant-care-management/internal/model"

	repo "plant-care-management/internal/care/repository"
)

// CreateCareEvent inserts a care event row and returns the created entity.
func (r *implRepository) CreateCareEvent(ctx context.Context, sc model.Scope, opt repo.CreateCareEventOptions) (model.CareEvent, error) {
	const query = `
		INSERT INTO care_events (id, plant_id, user_id, kind, performed_at, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.PlantID, sc.UserID, string(opt.Kind), opt.PerformedAt, opt.Note, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCareEvent"), err)
		return model.CareEvent{}, repo.ErrFailedToInsert
	}

	return model.CareEvent{
		ID:          opt.ID,
		PlantID:     opt.PlantID,
		UserID:      sc.UserID,
		Kind:        opt.Kind,
		PerformedAt: opt.PerformedAt,
		Note:        opt.Note,
		CreatedAt:   now,
	}, nil
}

// ListCareEvents returns a plant's history for one kind, ascending by time.
func (r *implRepository) ListCareEvents(ctx context.Context, sc model.Scope, opt repo.ListCareEventsOptions) ([]model.CareEvent, error) {
	query := `
		SELECT id, plant_id, user_id, kind, performed_at, note, created_at
		FROM care_events
		WHERE user_id = ? AND plant_id = ? AND kind = ?
		ORDER BY performed_at ASC`
	args := []any{sc.UserID, opt.PlantID, string(opt.Kind)}

	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCareEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.CareEvent
	for rows.Next() {
		var e model.CareEvent
		if scanErr := rows.Scan(&e.ID, &e.PlantID, &e.UserID, &e.Kind, &e.PerformedAt, &e.Note, &e.CreatedAt); scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// LatestCareEvents returns the most recent event per (plant, kind) for the
// given plants.
func (r *implRepository) LatestCareEvents(ctx context.Context, sc model.Scope, plantIDs []string) ([]model.CareEvent, error) {
	if len(plantIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(plantIDs)), ", ")
	query := `
		SELECT ce.id, ce.plant_id, ce.user_id, ce.kind, ce.performed_at, ce.note, ce.created_at
		FROM care_events ce
		JOIN (
			SELECT plant_id, kind, MAX(performed_at) AS performed_at
			FROM care_events
			WHERE user_id = ?
			GROUP BY plant_id, kind
		) latest
		ON ce.plant_id = latest.plant_id AND ce.kind = latest.kind AND ce.performed_at = latest.performed_at
		WHERE ce.user_id = ? AND ce.plant_id IN (` + placeholders + `)`

	args := []any{sc.UserID, sc.UserID}
	for _, id := range plantIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LatestCareEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.CareEvent
	for rows.Next() {
		var e model.CareEvent
		if scanErr := rows.Scan(&e.ID, &e.PlantID, &e.UserID, &e.Kind, &e.PerformedAt, &e.Note, &e.CreatedAt); scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
