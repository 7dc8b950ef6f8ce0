// internal/game/deck.go
package game

import "github.com/floriography/tussie/internal/models"

// RandInt supplies randomness to the engine: it must return a uniform integer
// in [0, limit). The engine never seeds or stores a generator; the hosting
// layer passes one in wherever a deck is built.
type RandInt func(limit int) int

// cardIDLimit bounds the opaque random ids assigned to cards. Kept inside
// int32 range so the limit fits an int on 32-bit platforms.
const cardIDLimit = 1 << 30

// catalog returns the fixed 17-card list in printed order. Rule text is
// display-only; the scoring engine keys off names.
func catalog() []models.CardDetails {
	return []models.CardDetails{
		{Name: models.Camellia, Color: models.ColorRed, NumHearts: 1, RuleText: "No effect"},
		{Name: models.RedRose, Color: models.ColorRed, NumHearts: 0, RuleText: "+1 point for each of your hearts"},
		{Name: models.RedTulip, Color: models.ColorRed, NumHearts: 0, RuleText: "+1 point for each of your red cards, including this one"},
		{Name: models.Amaryllis, Color: models.ColorRed, NumHearts: 0, RuleText: "+1 point for each card in your bouquet"},
		{Name: models.Gardenia, Color: models.ColorWhite, NumHearts: 0, RuleText: "+1 point for each of your keepsakes"},
		{Name: models.Daisy, Color: models.ColorWhite, NumHearts: 0, RuleText: "+1 point for each of your other cards without a heart"},
		{Name: models.Orchid, Color: models.ColorWhite, NumHearts: 1, RuleText: "This card counts as any of one color"},
		{Name: models.Peony, Color: models.ColorPink, NumHearts: 1, RuleText: "+2 points if you have exactly two cards in your bouquet"},
		{Name: models.Phlox, Color: models.ColorPink, NumHearts: 2, RuleText: "No effect"},
		{Name: models.PinkRose, Color: models.ColorPink, NumHearts: 0, RuleText: "+1 point for each of your pink cards, including this one"},
		{Name: models.PinkLarkspur, Color: models.ColorPink, NumHearts: 0, RuleText: "Before scoring, you may draw two cards. If you do, you must replace one of your cards with one of them"},
		{Name: models.ForgetMeNot, Color: models.ColorPurple, NumHearts: 1, RuleText: "+1 point for each heart on your cards adjacent to this one"},
		{Name: models.Violet, Color: models.ColorPurple, NumHearts: 0, RuleText: "+1 point for each of your purple cards, including this one"},
		{Name: models.Snapdragon, Color: models.ColorPurple, NumHearts: 1, RuleText: "Before scoring, you may change up to 2 of your cards, each from bouquet to keepsakes or keepsakes to bouquet"},
		{Name: models.Honeysuckle, Color: models.ColorYellow, NumHearts: 1, RuleText: "+1 point for each card adjacent to this one in your bouquet"},
		{Name: models.Carnation, Color: models.ColorYellow, NumHearts: 0, RuleText: "+1 point for each of your different color cards"},
		{Name: models.Marigold, Color: models.ColorYellow, NumHearts: 2, RuleText: "Before scoring, you must discard one of your other cards"},
	}
}

// NewDeck builds a shuffled deck containing one of each catalog card. The
// random source is consumed in a fixed pattern: one draw per card for its id
// (17 draws in catalog order), then a Fisher-Yates pass (16 draws,
// randInt(i+1) for i = 16..1). Top of deck is the end of the slice.
func NewDeck(randInt RandInt) []models.Card {
	defs := catalog()
	deck := make([]models.Card, len(defs))
	for i := range defs {
		details := defs[i]
		deck[i] = models.Card{ID: randInt(cardIDLimit), Details: &details}
	}
	for i := len(deck) - 1; i > 0; i-- {
		j := randInt(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}
