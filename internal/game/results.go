// internal/game/results.go
package game

import (
	"context"

	"github.com/google/uuid"

	"github.com/floriography/tussie/internal/database"
)

// recordResults persists cumulative scores, skipping silently when the
// service runs without a database (tests, local play).
func recordResults(ctx context.Context, gameID uuid.UUID, scores map[uuid.UUID]int) error {
	if database.DB == nil {
		return nil
	}
	return database.RecordFinalScores(ctx, gameID, scores)
}
