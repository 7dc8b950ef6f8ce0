// internal/game/phase.go
package game

import "github.com/floriography/tussie/internal/models"

// Phase is the current stage of a game. It is always derived from primitive
// state (round number, hands, resolution flags) and never stored, so it can
// not drift out of sync with the data it reflects.
type Phase string

const (
	PhaseLobby         Phase = "LOBBY"
	PhasePlayerTurns   Phase = "PLAYER_TURNS"
	PhaseBeforeScoring Phase = "BEFORE_SCORING"
	PhaseRoundRecap    Phase = "ROUND_RECAP"
	PhaseGameOver      Phase = "GAME_OVER"
)

// beforeScoringNames are the cards whose effects must resolve after hands are
// full but before the round is scored.
var beforeScoringNames = []models.CardName{models.PinkLarkspur, models.Snapdragon, models.Marigold}

// phase derives the current phase. Assumes lock is held.
func (g *TussieGame) phase() Phase {
	if g.Round < 0 {
		return PhaseLobby
	}
	if g.Round == 3 {
		return PhaseGameOver
	}
	if !g.handsFull() {
		return PhasePlayerTurns
	}
	if g.countBeforeScoringPresent() > g.BeforeScoring.resolvedCount() {
		return PhaseBeforeScoring
	}
	return PhaseRoundRecap
}

// handsFull reports whether every player has finished drafting. A marigold
// holder counts as finished even below 4 cards: the marigold effect discards
// down to 3, and the hand must not reopen for drafting afterwards.
func (g *TussieGame) handsFull() bool {
	for _, p := range g.Players {
		if len(p.Hand) >= 4 {
			continue
		}
		if !p.HoldsCard(models.Marigold) {
			return false
		}
	}
	return len(g.Players) > 0
}

// countBeforeScoringPresent counts occurrences of the three before-scoring
// cards across every player's hand and discarded cards this round.
//
// Counting discarded cards means a before-scoring card removed by another
// card's effect (marigold discarding a snapdragon, larkspur replacing a
// marigold) still demands resolution even though nobody holds it. See
// DESIGN.md before changing this.
func (g *TussieGame) countBeforeScoringPresent() int {
	count := 0
	for _, p := range g.Players {
		for _, hc := range p.Hand {
			for _, name := range beforeScoringNames {
				if hc.Card.Name() == name {
					count++
				}
			}
		}
		for _, c := range p.DiscardedCards {
			for _, name := range beforeScoringNames {
				if c.Name() == name {
					count++
				}
			}
		}
	}
	return count
}

// BeforeScoringFlags is the per-round resolution ledger for the three special
// pre-scoring effects. Only one copy of each card exists per deck, so a single
// flag per card suffices.
type BeforeScoringFlags struct {
	PinkLarkspurHasDrawn bool `json:"pinkLarkspurHasDrawn"`
	PinkLarkspurResolved bool `json:"pinkLarkspurResolved"`
	SnapdragonResolved   bool `json:"snapdragonResolved"`
	MarigoldResolved     bool `json:"marigoldResolved"`
}

func (f BeforeScoringFlags) resolvedCount() int {
	count := 0
	for _, resolved := range []bool{f.PinkLarkspurResolved, f.SnapdragonResolved, f.MarigoldResolved} {
		if resolved {
			count++
		}
	}
	return count
}
