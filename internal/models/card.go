// internal/models/card.go
package models

// CardName identifies one of the 17 fixed cards in the deck. Card comparisons
// in game logic are always by name; each deck contains exactly one of each.
type CardName string

const (
	Camellia     CardName = "CAMELLIA"
	RedRose      CardName = "RED_ROSE"
	RedTulip     CardName = "RED_TULIP"
	Amaryllis    CardName = "AMARYLLIS"
	Gardenia     CardName = "GARDENIA"
	Daisy        CardName = "DAISY"
	Orchid       CardName = "ORCHID"
	Peony        CardName = "PEONY"
	Phlox        CardName = "PHLOX"
	PinkRose     CardName = "PINK_ROSE"
	PinkLarkspur CardName = "PINK_LARKSPUR"
	ForgetMeNot  CardName = "FORGET_ME_NOT"
	Violet       CardName = "VIOLET"
	Snapdragon   CardName = "SNAPDRAGON"
	Honeysuckle  CardName = "HONEYSUCKLE"
	Carnation    CardName = "CARNATION"
	Marigold     CardName = "MARIGOLD"

	// Hyacinth has a scoring rule but is not part of the current deck list.
	Hyacinth CardName = "HYACINTH"
)

// Color is a card's printed color.
type Color string

const (
	ColorRed    Color = "RED"
	ColorWhite  Color = "WHITE"
	ColorPink   Color = "PINK"
	ColorPurple Color = "PURPLE"
	ColorYellow Color = "YELLOW"
)

// CardDetails is the face of a card. RuleText is display-only; scoring logic
// keys off Name, Color and NumHearts.
type CardDetails struct {
	Name      CardName `json:"name"`
	Color     Color    `json:"color"`
	NumHearts int      `json:"numHearts"`
	RuleText  string   `json:"ruleText"`
}

// Card pairs an opaque per-deck id with its face. In canonical game state
// Details is always non-nil; a nil Details means the card is face-down to the
// viewer and only appears in projected views. The id exists for stable client
// list keys and carries no game meaning.
type Card struct {
	ID      int          `json:"id"`
	Details *CardDetails `json:"details,omitempty"`
}

// Masked returns a copy of the card with its face hidden.
func (c Card) Masked() Card {
	return Card{ID: c.ID}
}

// Name returns the card's name, or "" for a masked card.
func (c Card) Name() CardName {
	if c.Details == nil {
		return ""
	}
	return c.Details.Name
}

// HandCard is a card in a player's permanent collection, tagged with the zone
// it occupies: bouquet (public) or keepsake (private).
type HandCard struct {
	Card       Card `json:"card"`
	IsKeepsake bool `json:"isKeepsake"`
}

// Offer is one player's split of their two drawn cards, awaiting the next
// player's choice.
type Offer struct {
	FaceupCard   Card `json:"faceupCard"`
	FacedownCard Card `json:"facedownCard"`
}
