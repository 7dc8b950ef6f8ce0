// internal/database/game.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordFinalScores upserts a finished game and each player's cumulative
// score after the last round has been tallied.
func RecordFinalScores(ctx context.Context, gameID uuid.UUID, scores map[uuid.UUID]int) error {
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		upsertGame := `
			INSERT INTO games (id, status)
			VALUES ($1, 'completed')
			ON CONFLICT (id) DO UPDATE SET status = 'completed'
		`
		if _, e := tx.Exec(ctx, upsertGame, gameID); e != nil {
			return e
		}

		for playerID, score := range scores {
			q := `
				INSERT INTO game_results (game_id, player_id, score)
				VALUES ($1, $2, $3)
				ON CONFLICT (game_id, player_id)
				DO UPDATE SET score=$3
			`
			if _, e := tx.Exec(ctx, q, gameID, playerID, score); e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tx upsert game or results: %w", err)
	}
	return nil
}

// InsertGameAction appends one historian record to the game_actions table,
// creating the games row on first sight of a game id.
func InsertGameAction(ctx context.Context, gameID uuid.UUID, actionIndex int, actorID uuid.UUID, actionType string, payload []byte, timestamp int64) error {
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		upsertGame := `
			INSERT INTO games (id, status)
			VALUES ($1, 'in_progress')
			ON CONFLICT (id) DO NOTHING
		`
		if _, err := tx.Exec(ctx, upsertGame, gameID); err != nil {
			return err
		}

		q := `
			INSERT INTO game_actions (game_id, action_index, actor_user_id, action_type, payload, ts)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (game_id, action_index) DO NOTHING
		`
		_, err := tx.Exec(ctx, q, gameID, actionIndex, actorID, actionType, payload, timestamp)
		return err
	})
}
