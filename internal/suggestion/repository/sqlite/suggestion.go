package sqlite

import (
	"context"
	"database/sql"
	"time"

	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"

	repo "plant-care-management/internal/suggestion/repository"
)

const suggestionColumns = `s.id, s.plant_id, p.name, s.user_id, s.care_kind,
	s.current_interval_days, s.suggested_interval_days, s.confidence_score,
	s.state, s.detected_at, s.resolved_at, s.created_at`

func scanSuggestion(row interface{ Scan(...any) error }) (suggestion.ScheduleSuggestion, error) {
	var (
		s          suggestion.ScheduleSuggestion
		confidence sql.NullFloat64
		resolvedAt sql.NullTime
	)
	err := row.Scan(
		&s.ID, &s.PlantID, &s.PlantName, &s.UserID, &s.Kind,
		&s.CurrentIntervalDays, &s.SuggestedIntervalDays, &confidence,
		&s.State, &s.DetectedAt, &resolvedAt, &s.CreatedAt,
	)
	if err != nil {
		return suggestion.ScheduleSuggestion{}, err
	}
	if confidence.Valid {
		s.ConfidenceScore = &confidence.Float64
	}
	if resolvedAt.Valid {
		s.ResolvedAt = &resolvedAt.Time
	}
	return s, nil
}

// CreateSuggestion inserts a pending suggestion row.
func (r *implRepository) CreateSuggestion(ctx context.Context, sc model.Scope, opt repo.CreateSuggestionOptions) (suggestion.ScheduleSuggestion, error) {
	const query = `
		INSERT INTO schedule_suggestions
			(id, plant_id, user_id, care_kind, current_interval_days, suggested_interval_days,
			 confidence_score, state, detected_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	var confidence any
	if opt.ConfidenceScore != nil {
		confidence = *opt.ConfidenceScore
	}

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.PlantID, sc.UserID, string(opt.Kind),
		opt.CurrentIntervalDays, opt.SuggestedIntervalDays,
		confidence, string(suggestion.StatePending), opt.DetectedAt, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSuggestion"), err)
		return suggestion.ScheduleSuggestion{}, repo.ErrFailedToInsert
	}

	return r.GetSuggestion(ctx, sc, opt.ID)
}

// GetSuggestion retrieves one suggestion owned by the scope user.
// Returns the zero value when not found.
func (r *implRepository) GetSuggestion(ctx context.Context, sc model.Scope, id string) (suggestion.ScheduleSuggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM schedule_suggestions s
		JOIN plants p ON p.id = s.plant_id
		WHERE s.id = ? AND s.user_id = ?
		LIMIT 1`

	s, err := scanSuggestion(r.db.QueryRowContext(ctx, query, id, sc.UserID))
	if err == sql.ErrNoRows {
		return suggestion.ScheduleSuggestion{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSuggestion"), err)
		return suggestion.ScheduleSuggestion{}, repo.ErrFailedToGet
	}
	return s, nil
}

// ListSuggestions returns suggestions newest-first with optional filters.
func (r *implRepository) ListSuggestions(ctx context.Context, sc model.Scope, opt repo.ListSuggestionsOptions) ([]suggestion.ScheduleSuggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM schedule_suggestions s
		JOIN plants p ON p.id = s.plant_id
		WHERE s.user_id = ?`
	args := []any{sc.UserID}

	if opt.PlantID != "" {
		query += ` AND s.plant_id = ?`
		args = append(args, opt.PlantID)
	}
	if opt.Kind != "" {
		query += ` AND s.care_kind = ?`
		args = append(args, string(opt.Kind))
	}
	if opt.State != "" {
		query += ` AND s.state = ?`
		args = append(args, string(opt.State))
	}
	query += ` ORDER BY s.detected_at DESC`
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSuggestions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var suggestions []suggestion.ScheduleSuggestion
	for rows.Next() {
		s, scanErr := scanSuggestion(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}

// ResolveSuggestion flips a pending suggestion to the target state.
// The WHERE state = 'pending' guard makes the transition at-most-once even
// under concurrent duplicate requests.
func (r *implRepository) ResolveSuggestion(ctx context.Context, sc model.Scope, opt repo.ResolveSuggestionOptions) (bool, error) {
	const query = `
		UPDATE schedule_suggestions
		SET state = ?, resolved_at = ?
		WHERE id = ? AND user_id = ? AND state = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(opt.State), opt.ResolvedAt, opt.ID, sc.UserID, string(suggestion.StatePending),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ResolveSuggestion"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}

// HasRecentDismissal reports whether the same proposed value for the pair
// was dismissed at or after the given instant.
func (r *implRepository) HasRecentDismissal(ctx context.Context, sc model.Scope, opt repo.DismissalLookupOptions) (bool, error) {
	const query = `
		SELECT COUNT(*)
		FROM schedule_suggestions
		WHERE user_id = ? AND plant_id = ? AND care_kind = ?
			AND suggested_interval_days = ? AND state = ? AND resolved_at >= ?`

	var count int
	err := r.db.QueryRowContext(ctx, query,
		sc.UserID, opt.PlantID, string(opt.Kind),
		opt.SuggestedIntervalDays, string(suggestion.StateDismissed), opt.Since,
	).Scan(&count)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("HasRecentDismissal"), err)
		return false, repo.ErrFailedToGet
	}
	return count > 0, nil
}
