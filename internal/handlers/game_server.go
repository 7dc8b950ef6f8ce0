// internal/handlers/game_server.go
package handlers

import (
	"log"
	"math/rand"

	"github.com/floriography/tussie/internal/game"
)

// GameServer holds the in-memory store of running games, shared by the HTTP
// and WebSocket handlers.
type GameServer struct {
	GameStore *game.GameStore
	Logf      func(f string, v ...interface{})
}

func NewGameServer() *GameServer {
	return &GameServer{
		GameStore: game.NewGameStore(),
		Logf:      log.Printf,
	}
}

// serverRandInt feeds deck shuffles for games hosted by this process.
func serverRandInt(limit int) int {
	return rand.Intn(limit)
}
