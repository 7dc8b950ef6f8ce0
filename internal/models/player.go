// internal/models/player.go
package models

import (
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// PlayerInfo is one seat's canonical state. Hand order is insertion order and
// is never sorted; adjacency scoring depends on it.
type PlayerInfo struct {
	ID    uuid.UUID  `json:"id"`
	Score int        `json:"score"`
	Hand  []HandCard `json:"hand"`

	// DrawnCards holds up to two cards drawn this turn (or via pink larkspur),
	// visible to the owner only, pending an offer or swap decision.
	DrawnCards []Card `json:"drawnCards"`

	// DiscardedCards are cards removed from play this round by special-card
	// effects. They still count toward before-scoring phase derivation.
	DiscardedCards []Card `json:"discardedCards"`

	Connected bool            `json:"connected"`
	Conn      *websocket.Conn `json:"-"`
}

// HoldsCard reports whether the named card is currently in the player's hand.
func (p *PlayerInfo) HoldsCard(name CardName) bool {
	for _, hc := range p.Hand {
		if hc.Card.Name() == name {
			return true
		}
	}
	return false
}
