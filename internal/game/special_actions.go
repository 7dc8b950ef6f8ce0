// internal/game/special_actions.go
package game

import (
	"github.com/google/uuid"

	"github.com/floriography/tussie/internal/models"
)

// The three before-scoring effects resolve independently, in any order, each
// by its holder only. Every handler gates on the BEFORE_SCORING phase and on
// the actor holding the relevant card, flips the matching resolution flag,
// then re-derives the phase: the resolution that clears the last outstanding
// effect triggers scoring immediately.

// PinkLarkspurDraw is step one of the pink larkspur effect: the holder draws
// two cards to pick a replacement from.
func (g *TussieGame) PinkLarkspurDraw(userID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.phase() != PhaseBeforeScoring {
		return ErrIllegalOperation
	}
	player := g.getPlayerByID(userID)
	if player == nil || !player.HoldsCard(models.PinkLarkspur) {
		return ErrInvalidAction
	}
	if g.BeforeScoring.PinkLarkspurResolved || g.BeforeScoring.PinkLarkspurHasDrawn {
		return ErrIllegalOperation
	}
	if len(g.Deck) < 2 {
		return ErrIllegalOperation
	}

	player.DrawnCards = []models.Card{g.popDeck(), g.popDeck()}
	g.BeforeScoring.PinkLarkspurHasDrawn = true
	g.logAction(userID, "pink_larkspur_draw", nil)
	g.pushState()
	return nil
}

// PinkLarkspurSwap is step two: one drawn card replaces one hand card. The
// replaced card keeps its slot's keepsake flag and moves to the discard list;
// the unchosen drawn card leaves play.
func (g *TussieGame) PinkLarkspurSwap(userID uuid.UUID, cardToPick, cardToReplace models.CardName) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.phase() != PhaseBeforeScoring {
		return ErrIllegalOperation
	}
	player := g.getPlayerByID(userID)
	if player == nil || !player.HoldsCard(models.PinkLarkspur) {
		return ErrInvalidAction
	}
	if g.BeforeScoring.PinkLarkspurResolved || !g.BeforeScoring.PinkLarkspurHasDrawn {
		return ErrIllegalOperation
	}

	pickIdx := -1
	for i, c := range player.DrawnCards {
		if c.Name() == cardToPick {
			pickIdx = i
		}
	}
	replaceIdx := -1
	for i, hc := range player.Hand {
		if hc.Card.Name() == cardToReplace {
			replaceIdx = i
		}
	}
	if pickIdx < 0 || replaceIdx < 0 {
		return ErrInvalidSelection
	}

	replaced := player.Hand[replaceIdx].Card
	player.Hand[replaceIdx].Card = player.DrawnCards[pickIdx]
	player.DiscardedCards = append(player.DiscardedCards, replaced)
	player.DrawnCards = []models.Card{}
	g.BeforeScoring.PinkLarkspurResolved = true
	g.logAction(userID, "pink_larkspur_swap", map[string]interface{}{
		"picked":   string(cardToPick),
		"replaced": string(cardToReplace),
	})
	g.resolveIfDone()
	g.pushState()
	return nil
}

// SnapdragonSwitch toggles the bouquet/keepsake zone of up to two named hand
// cards. An empty selection resolves the effect without switching anything.
func (g *TussieGame) SnapdragonSwitch(userID uuid.UUID, cardsToSwitch []models.CardName) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.phase() != PhaseBeforeScoring {
		return ErrIllegalOperation
	}
	player := g.getPlayerByID(userID)
	if player == nil || !player.HoldsCard(models.Snapdragon) {
		return ErrInvalidAction
	}
	if g.BeforeScoring.SnapdragonResolved {
		return ErrIllegalOperation
	}
	if len(cardsToSwitch) > 2 {
		return ErrInvalidSelection
	}
	indices := make([]int, 0, len(cardsToSwitch))
	for _, name := range cardsToSwitch {
		idx := -1
		for i, hc := range player.Hand {
			if hc.Card.Name() == name {
				idx = i
			}
		}
		if idx < 0 {
			return ErrInvalidSelection
		}
		indices = append(indices, idx)
	}

	for _, idx := range indices {
		player.Hand[idx].IsKeepsake = !player.Hand[idx].IsKeepsake
	}
	g.BeforeScoring.SnapdragonResolved = true
	g.logAction(userID, "snapdragon_switch", map[string]interface{}{"count": len(indices)})
	g.resolveIfDone()
	g.pushState()
	return nil
}

// MarigoldDiscard removes one other card from the holder's hand. Marigold
// itself may not be chosen.
func (g *TussieGame) MarigoldDiscard(userID uuid.UUID, cardToDiscard models.CardName) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.phase() != PhaseBeforeScoring {
		return ErrIllegalOperation
	}
	player := g.getPlayerByID(userID)
	if player == nil || !player.HoldsCard(models.Marigold) {
		return ErrInvalidAction
	}
	if g.BeforeScoring.MarigoldResolved {
		return ErrIllegalOperation
	}
	if cardToDiscard == models.Marigold {
		return ErrInvalidSelection
	}
	idx := -1
	for i, hc := range player.Hand {
		if hc.Card.Name() == cardToDiscard {
			idx = i
		}
	}
	if idx < 0 {
		return ErrInvalidSelection
	}

	discarded := player.Hand[idx].Card
	player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	player.DiscardedCards = append(player.DiscardedCards, discarded)
	g.BeforeScoring.MarigoldResolved = true
	g.logAction(userID, "marigold_discard", map[string]interface{}{"discarded": string(cardToDiscard)})
	g.resolveIfDone()
	g.pushState()
	return nil
}

// resolveIfDone scores the round if the last outstanding before-scoring
// effect just resolved. Assumes lock is held.
func (g *TussieGame) resolveIfDone() {
	if g.phase() == PhaseRoundRecap {
		g.processRecap()
	}
}
