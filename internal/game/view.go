// internal/game/view.go
package game

import (
	"github.com/google/uuid"

	"github.com/floriography/tussie/internal/models"
)

// PlayerState is the game as seen by one player. Canonical state always
// carries full card details; hiding a card is a masking transform applied
// here, never a property of the stored card.
type PlayerState struct {
	Round         int                `json:"round"`
	Turn          string             `json:"turn"`
	Nickname      string             `json:"nickname"`
	Phase         Phase              `json:"status"`
	BeforeScoring BeforeScoringFlags `json:"beforeScoring"`
	Offer         *models.Offer      `json:"offer,omitempty"`
	Players       []PlayerView       `json:"players"`
}

// PlayerView is one seat as seen by the requesting player.
type PlayerView struct {
	ID             uuid.UUID         `json:"id"`
	Nickname       string            `json:"name"`
	Score          int               `json:"score"`
	Hand           []models.HandCard `json:"hand"`
	DrawnCards     []models.Card     `json:"drawnCards"`
	DiscardedCards []models.Card     `json:"discardedCards"`
}

// GetPlayerState projects the game for one viewer:
//   - the viewer's own seat is unmasked;
//   - opponents' drawn cards are always masked, and their keepsakes are
//     masked except during the round recap, when all hands are revealed;
//   - the offer's face-down card is masked for everyone, the offerer
//     included, until the chooser reveals it by deciding.
func (g *TussieGame) GetPlayerState(viewerID uuid.UUID) PlayerState {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	phase := g.phase()
	state := PlayerState{
		Round:         g.Round,
		Turn:          g.NicknameOf[g.Turn],
		Nickname:      g.NicknameOf[viewerID],
		Phase:         phase,
		BeforeScoring: g.BeforeScoring,
	}

	if g.Offer != nil {
		state.Offer = &models.Offer{
			FaceupCard:   g.Offer.FaceupCard,
			FacedownCard: g.Offer.FacedownCard.Masked(),
		}
	}

	state.Players = make([]PlayerView, len(g.Players))
	for i, p := range g.Players {
		view := PlayerView{
			ID:             p.ID,
			Nickname:       g.NicknameOf[p.ID],
			Score:          p.Score,
			DiscardedCards: append([]models.Card{}, p.DiscardedCards...),
		}
		if p.ID == viewerID {
			view.Hand = append([]models.HandCard{}, p.Hand...)
			view.DrawnCards = append([]models.Card{}, p.DrawnCards...)
		} else {
			view.Hand = maskHand(p.Hand, phase)
			view.DrawnCards = make([]models.Card, len(p.DrawnCards))
			for j, c := range p.DrawnCards {
				view.DrawnCards[j] = c.Masked()
			}
		}
		state.Players[i] = view
	}
	return state
}

// maskHand hides an opponent's keepsakes. Bouquet cards are public by the
// game's core asymmetry, and everything is revealed for the recap.
func maskHand(hand []models.HandCard, phase Phase) []models.HandCard {
	masked := make([]models.HandCard, len(hand))
	for i, hc := range hand {
		if hc.IsKeepsake && phase != PhaseRoundRecap {
			masked[i] = models.HandCard{Card: hc.Card.Masked(), IsKeepsake: true}
		} else {
			masked[i] = hc
		}
	}
	return masked
}
