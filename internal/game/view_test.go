// internal/game/view_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floriography/tussie/internal/models"
)

func TestViewMasksOpponentKeepsakes(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setHand(t, g, ids[0], models.Camellia, models.Phlox)
	setHand(t, g, ids[1], models.Daisy, models.Orchid)
	g.Mu.Lock()
	g.Players[0].Hand[1].IsKeepsake = true
	g.Players[1].Hand[0].IsKeepsake = true
	g.Mu.Unlock()

	state := g.GetPlayerState(ids[0])

	// Own seat is fully visible.
	own := state.Players[0]
	require.NotNil(t, own.Hand[1].Card.Details)
	assert.Equal(t, models.Phlox, own.Hand[1].Card.Name())

	// Opponent's keepsake is face-down, their bouquet is public.
	opp := state.Players[1]
	assert.Nil(t, opp.Hand[0].Card.Details, "opponent keepsake must be masked")
	assert.True(t, opp.Hand[0].IsKeepsake, "the zone itself stays visible")
	assert.NotZero(t, opp.Hand[0].Card.ID, "masking keeps the stable id")
	require.NotNil(t, opp.Hand[1].Card.Details)
	assert.Equal(t, models.Orchid, opp.Hand[1].Card.Name())
}

func TestViewMasksOpponentDrawnCards(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setDeck(t, g, models.Camellia, models.Phlox)
	require.NoError(t, g.DrawForOffer(ids[0]))

	own := g.GetPlayerState(ids[0]).Players[0]
	require.Len(t, own.DrawnCards, 2)
	assert.NotNil(t, own.DrawnCards[0].Details, "drawer sees their own draws")

	other := g.GetPlayerState(ids[1]).Players[0]
	require.Len(t, other.DrawnCards, 2)
	for _, c := range other.DrawnCards {
		assert.Nil(t, c.Details)
	}
}

func TestViewMasksOfferFacedownForEveryone(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setDeck(t, g, models.Camellia, models.Phlox)
	require.NoError(t, g.DrawForOffer(ids[0]))
	require.NoError(t, g.MakeOffer(ids[0], models.Phlox))

	for _, viewer := range ids {
		state := g.GetPlayerState(viewer)
		require.NotNil(t, state.Offer)
		assert.Equal(t, models.Phlox, state.Offer.FaceupCard.Name())
		assert.Nil(t, state.Offer.FacedownCard.Details,
			"the face-down card is hidden from the offerer too")
	}
}

func TestViewRevealsAllDuringRecap(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	setHand(t, g, ids[1], models.Violet, models.Gardenia, models.Peony, models.Honeysuckle)
	g.Mu.Lock()
	g.Players[1].Hand[0].IsKeepsake = true
	g.Mu.Unlock()

	state := g.GetPlayerState(ids[0])
	require.Equal(t, PhaseRoundRecap, state.Phase)
	opp := state.Players[1]
	require.NotNil(t, opp.Hand[0].Card.Details, "recap reveals keepsakes")
	assert.Equal(t, models.Violet, opp.Hand[0].Card.Name())
}

func TestViewDoesNotMutateCanonicalState(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setHand(t, g, ids[0], models.Camellia)
	setHand(t, g, ids[1], models.Daisy)
	g.Mu.Lock()
	g.Players[1].Hand[0].IsKeepsake = true
	g.Mu.Unlock()

	_ = g.GetPlayerState(ids[0])

	g.Mu.Lock()
	defer g.Mu.Unlock()
	require.NotNil(t, g.Players[1].Hand[0].Card.Details,
		"masking is a projection, never applied to stored cards")
}
