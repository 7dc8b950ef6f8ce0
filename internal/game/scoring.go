// internal/game/scoring.go
package game

import "github.com/floriography/tussie/internal/models"

// scoreForCard computes one card's points within its holder's final hand:
// the card's hearts plus its per-name rule evaluated over the whole hand.
// Hand order matters only for FORGET_ME_NOT, which reads its immediate
// neighbors. Cards without a listed rule (and the before-scoring cards, whose
// effects act on the hand rather than the total) score hearts only.
func scoreForCard(handCard models.HandCard, hand []models.HandCard) int {
	details := handCard.Card.Details
	score := details.NumHearts

	switch details.Name {
	case models.RedRose:
		for _, hc := range hand {
			score += hc.Card.Details.NumHearts
		}
	case models.RedTulip:
		score += countColorOrOrchid(hand, models.ColorRed)
	case models.PinkRose:
		score += countColorOrOrchid(hand, models.ColorPink)
	case models.Violet:
		score += countColorOrOrchid(hand, models.ColorPurple)
	case models.Amaryllis:
		for _, hc := range hand {
			if !hc.IsKeepsake {
				score++
			}
		}
	case models.Gardenia:
		for _, hc := range hand {
			if hc.IsKeepsake {
				score++
			}
		}
	case models.Daisy:
		for _, hc := range hand {
			if hc.Card.Details.NumHearts == 0 && hc.Card.Details.Name != models.Daisy {
				score++
			}
		}
	case models.Peony:
		bouquet := 0
		for _, hc := range hand {
			if !hc.IsKeepsake {
				bouquet++
			}
		}
		if bouquet == 2 {
			score += 2
		}
	case models.ForgetMeNot:
		idx := -1
		for i, hc := range hand {
			if hc.Card.Details.Name == models.ForgetMeNot {
				idx = i
				break
			}
		}
		if idx > 0 {
			score += hand[idx-1].Card.Details.NumHearts
		}
		if idx >= 0 && idx < len(hand)-1 {
			score += hand[idx+1].Card.Details.NumHearts
		}
	case models.Hyacinth:
		heartless := true
		for _, hc := range hand {
			if hc.Card.Details.NumHearts != 0 {
				heartless = false
				break
			}
		}
		if heartless {
			score += 3
		}
	case models.Carnation:
		colors := map[models.Color]bool{}
		whiteCount := 0
		hasOrchid := false
		for _, hc := range hand {
			colors[hc.Card.Details.Color] = true
			if hc.Card.Details.Color == models.ColorWhite {
				whiteCount++
			}
			if hc.Card.Details.Name == models.Orchid {
				hasOrchid = true
			}
		}
		score += len(colors)
		if len(colors) < 4 && whiteCount > 1 && hasOrchid {
			score++
		}
	}
	return score
}

// countColorOrOrchid counts hand cards of the given color, with ORCHID
// counting as a wildcard match.
func countColorOrOrchid(hand []models.HandCard, color models.Color) int {
	count := 0
	for _, hc := range hand {
		if hc.Card.Details.Color == color || hc.Card.Details.Name == models.Orchid {
			count++
		}
	}
	return count
}
