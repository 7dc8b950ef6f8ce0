// internal/handlers/game.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/floriography/tussie/internal/game"
)

type createGameRequest struct {
	Nickname string `json:"nickname"`
}

// CreateGameHandler creates a new in-memory game with the requesting user
// seated as its creator and returns the game id. Users without a valid token
// are minted an ephemeral guest account on the fly.
func (s *GameServer) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Nickname == "" {
		http.Error(w, "invalid payload: nickname is required", http.StatusBadRequest)
		return
	}

	userID, err := EnsureEphemeralUser(w, r)
	if err != nil {
		s.Logf("failed to resolve user for game create: %v", err)
		http.Error(w, "authentication failed", http.StatusForbidden)
		return
	}

	g := game.NewTussieGame(userID, req.Nickname, serverRandInt)
	s.GameStore.AddGame(g)
	s.Logf("game %s created by %s (%s)", g.ID, req.Nickname, userID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"game_id": g.ID,
	})
}
