package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aurelia-backend/internal/recommendations"
	"aurelia-backend/internal/shared/telemetry"
)

// PGStore implements Store using the recommendation_slots table.
type PGStore struct {
	DB *sql.DB
}

func (s *PGStore) Save(ctx context.Context, visitorID string, result recommendations.Result) error {
	if visitorID == "" {
		return ErrVisitorRequired
	}
	raw, err := Encode(result)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO recommendation_slots (visitor_id, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (visitor_id) DO UPDATE SET
  payload = EXCLUDED.payload,
  updated_at = now()`
	if _, err := s.DB.ExecContext(ctx, query, visitorID, string(raw)); err != nil {
		return fmt.Errorf("save slot: %w", err)
	}
	return nil
}

func (s *PGStore) Load(ctx context.Context, visitorID string) (recommendations.Result, bool, error) {
	const query = `
SELECT payload
FROM recommendation_slots
WHERE visitor_id = $1
LIMIT 1`
	var payload sql.NullString
	err := s.DB.QueryRowContext(ctx, query, visitorID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recommendations.Result{}, false, nil
		}
		return recommendations.Result{}, false, fmt.Errorf("load slot: %w", err)
	}
	if !payload.Valid {
		return recommendations.Result{}, false, nil
	}
	result, ok := Decode([]byte(payload.String))
	if !ok {
		telemetry.Warn("results.malformed_slot", map[string]any{"store": "postgres", "visitor_id": visitorID})
	}
	return result, ok, nil
}

func (s *PGStore) Clear(ctx context.Context, visitorID string) error {
	const query = `DELETE FROM recommendation_slots WHERE visitor_id = $1`
	if _, err := s.DB.ExecContext(ctx, query, visitorID); err != nil {
		return fmt.Errorf("clear slot: %w", err)
	}
	return nil
}

var _ Store = (*PGStore)(nil)
