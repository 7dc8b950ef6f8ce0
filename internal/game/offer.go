// internal/game/offer.go
package game

import (
	"github.com/google/uuid"

	"github.com/floriography/tussie/internal/models"
)

// DrawForOffer pops the top two deck cards into the acting player's drawn
// cards. Only the player whose turn it is may draw, and only once per turn.
func (g *TussieGame) DrawForOffer(userID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Round < 0 {
		return ErrNotStarted
	}
	if g.Turn != userID {
		return ErrNotYourTurn
	}
	if g.phase() != PhasePlayerTurns || g.Offer != nil {
		return ErrIllegalOperation
	}
	player := g.getPlayerByID(userID)
	if len(player.DrawnCards) > 0 {
		return ErrIllegalOperation
	}
	if len(g.Deck) < 2 {
		return ErrIllegalOperation
	}

	player.DrawnCards = []models.Card{g.popDeck(), g.popDeck()}
	g.logAction(userID, "draw_for_offer", map[string]interface{}{"deckSize": len(g.Deck)})
	g.pushState()
	return nil
}

// MakeOffer splits the two drawn cards: the named card goes face-up, the
// other face-down. The offer then waits on the chooser.
func (g *TussieGame) MakeOffer(userID uuid.UUID, faceupCard models.CardName) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Round < 0 {
		return ErrNotStarted
	}
	if g.Turn != userID {
		return ErrNotYourTurn
	}
	// Drafting only. Without this gate a pink larkspur holder who still owns
	// the turn could launder their before-scoring draws into an offer.
	if g.phase() != PhasePlayerTurns {
		return ErrIllegalOperation
	}
	player := g.getPlayerByID(userID)
	if len(player.DrawnCards) != 2 {
		return ErrIllegalOperation
	}

	faceupIdx := -1
	for i := range player.DrawnCards {
		if player.DrawnCards[i].Name() == faceupCard {
			faceupIdx = i
			break
		}
	}
	if faceupIdx < 0 {
		return ErrCardNotValid
	}

	g.Offer = &models.Offer{
		FaceupCard:   player.DrawnCards[faceupIdx],
		FacedownCard: player.DrawnCards[1-faceupIdx],
	}
	player.DrawnCards = []models.Card{}
	g.logAction(userID, "make_offer", map[string]interface{}{"faceup": string(faceupCard)})
	g.pushState()
	return nil
}

// SelectOffer is the chooser's half of the split: the chosen card joins the
// chooser's bouquet, and the rejected card is forced on the offerer as a
// keepsake. The chooser is always the seat after the offerer, wrapping.
func (g *TussieGame) SelectOffer(userID uuid.UUID, faceup bool) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Offer == nil {
		return ErrOfferNotMade
	}
	turnIdx := g.playerIndex(g.Turn)
	chooser := g.Players[(turnIdx+1)%len(g.Players)]
	if chooser.ID != userID {
		return ErrNotYourTurn
	}
	offerer := g.Players[turnIdx]

	if faceup {
		chooser.Hand = append(chooser.Hand, models.HandCard{Card: g.Offer.FaceupCard, IsKeepsake: false})
		offerer.Hand = append(offerer.Hand, models.HandCard{Card: g.Offer.FacedownCard, IsKeepsake: true})
	} else {
		chooser.Hand = append(chooser.Hand, models.HandCard{Card: g.Offer.FacedownCard, IsKeepsake: true})
		offerer.Hand = append(offerer.Hand, models.HandCard{Card: g.Offer.FaceupCard, IsKeepsake: false})
	}
	g.Offer = nil
	g.logAction(userID, "select_offer", map[string]interface{}{"faceup": faceup})

	// Rotation always advances one seat past the offerer, regardless of who
	// chose. If this selection filled the last hand the round resolves
	// instead: straight to scoring, or into before-scoring effects first.
	switch g.phase() {
	case PhasePlayerTurns:
		g.Turn = g.Players[(turnIdx+1)%len(g.Players)].ID
	case PhaseRoundRecap:
		g.processRecap()
	}
	g.pushState()
	return nil
}

// popDeck removes and returns the top deck card. Assumes lock is held and the
// deck is non-empty.
func (g *TussieGame) popDeck() models.Card {
	card := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return card
}
