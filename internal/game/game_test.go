// internal/game/game_test.go
package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floriography/tussie/internal/models"
)

// identityRand returns limit-1 for every call, which makes the Fisher-Yates
// pass a no-op: NewDeck yields the catalog in printed order.
func identityRand(limit int) int { return limit - 1 }

var testCardID int

// mkCard builds a card from the catalog entry for the given name.
func mkCard(t *testing.T, name models.CardName) models.Card {
	t.Helper()
	for _, d := range catalog() {
		if d.Name == name {
			details := d
			testCardID++
			return models.Card{ID: testCardID, Details: &details}
		}
	}
	t.Fatalf("card %s not in catalog", name)
	return models.Card{}
}

// setDeck replaces the deck with the given cards. The last name is the top.
func setDeck(t *testing.T, g *TussieGame, names ...models.CardName) {
	t.Helper()
	g.Mu.Lock()
	defer g.Mu.Unlock()
	g.Deck = make([]models.Card, len(names))
	for i, name := range names {
		g.Deck[i] = mkCard(t, name)
	}
}

// setHand replaces a player's hand, all cards in the bouquet.
func setHand(t *testing.T, g *TussieGame, userID uuid.UUID, names ...models.CardName) {
	t.Helper()
	g.Mu.Lock()
	defer g.Mu.Unlock()
	p := g.getPlayerByID(userID)
	require.NotNil(t, p)
	p.Hand = make([]models.HandCard, len(names))
	for i, name := range names {
		p.Hand[i] = models.HandCard{Card: mkCard(t, name)}
	}
}

// setupStartedGame creates a game with numPlayers seats and starts it. The
// creator (index 0) holds the first turn.
func setupStartedGame(t *testing.T, numPlayers int) (*TussieGame, []uuid.UUID) {
	t.Helper()
	ids := make([]uuid.UUID, numPlayers)
	for i := range ids {
		ids[i] = uuid.New()
	}
	g := NewTussieGame(ids[0], "P0", identityRand)
	for i := 1; i < numPlayers; i++ {
		require.NoError(t, g.Join(ids[i], "P"+string(rune('0'+i))))
	}
	require.NoError(t, g.Start(ids[0]))
	return g, ids
}

func statusOf(g *TussieGame, viewer uuid.UUID) Phase {
	return g.GetPlayerState(viewer).Phase
}

func TestLobbyAndStart(t *testing.T) {
	creator := uuid.New()
	g := NewTussieGame(creator, "alice", identityRand)

	assert.Equal(t, PhaseLobby, statusOf(g, creator))
	assert.Equal(t, -1, g.GetPlayerState(creator).Round)

	// Cannot start alone.
	require.ErrorIs(t, g.Start(creator), ErrNotEnoughPlayers)

	bob := uuid.New()
	require.NoError(t, g.Join(bob, "bob"))

	// Outsiders cannot start.
	require.ErrorIs(t, g.Start(uuid.New()), ErrInvalidAction)

	require.NoError(t, g.Start(bob))
	state := g.GetPlayerState(bob)
	assert.Equal(t, PhasePlayerTurns, state.Phase)
	assert.Equal(t, 0, state.Round)
	assert.Equal(t, "alice", state.Turn, "creator holds the first turn")

	require.ErrorIs(t, g.Start(bob), ErrGameStarted)
}

func TestJoinValidation(t *testing.T) {
	creator := uuid.New()
	g := NewTussieGame(creator, "alice", identityRand)

	require.ErrorIs(t, g.Join(creator, "alice again"), ErrAlreadyJoined)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.Join(uuid.New(), "guest"))
	}
	// Fifth seat does not exist.
	require.ErrorIs(t, g.Join(uuid.New(), "late"), ErrIllegalOperation)

	g2, _ := setupStartedGame(t, 2)
	require.ErrorIs(t, g2.Join(uuid.New(), "late"), ErrGameStarted)
}

func TestDrawForOfferValidation(t *testing.T) {
	creator := uuid.New()
	g := NewTussieGame(creator, "alice", identityRand)
	require.ErrorIs(t, g.DrawForOffer(creator), ErrNotStarted)

	g2, ids := setupStartedGame(t, 2)
	require.ErrorIs(t, g2.DrawForOffer(ids[1]), ErrNotYourTurn)

	require.NoError(t, g2.DrawForOffer(ids[0]))
	require.ErrorIs(t, g2.DrawForOffer(ids[0]), ErrIllegalOperation, "no second draw in one turn")

	// Deck too small to draw.
	g3, ids3 := setupStartedGame(t, 2)
	setDeck(t, g3, models.Camellia)
	require.ErrorIs(t, g3.DrawForOffer(ids3[0]), ErrIllegalOperation)
}

func TestOfferRoundTrip(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setDeck(t, g, models.Daisy, models.Camellia, models.Phlox) // top is PHLOX

	require.NoError(t, g.DrawForOffer(ids[0]))
	state := g.GetPlayerState(ids[0])
	require.Len(t, state.Players[0].DrawnCards, 2)
	assert.Equal(t, models.Phlox, state.Players[0].DrawnCards[0].Name())
	assert.Equal(t, models.Camellia, state.Players[0].DrawnCards[1].Name())

	// The face-up card must be one of the two drawn.
	require.ErrorIs(t, g.MakeOffer(ids[0], models.Orchid), ErrCardNotValid)
	require.ErrorIs(t, g.MakeOffer(ids[1], models.Phlox), ErrNotYourTurn)

	require.NoError(t, g.MakeOffer(ids[0], models.Phlox))
	state = g.GetPlayerState(ids[0])
	require.NotNil(t, state.Offer)
	assert.Equal(t, models.Phlox, state.Offer.FaceupCard.Name())
	assert.Empty(t, state.Players[0].DrawnCards, "drawn cards move into the offer")

	// Only the next seat chooses.
	require.ErrorIs(t, g.SelectOffer(ids[0], true), ErrNotYourTurn)

	require.NoError(t, g.SelectOffer(ids[1], true))
	g.Mu.Lock()
	p0, p1 := g.Players[0], g.Players[1]
	require.Len(t, p1.Hand, 1)
	assert.Equal(t, models.Phlox, p1.Hand[0].Card.Name())
	assert.False(t, p1.Hand[0].IsKeepsake, "chosen card joins the bouquet")
	require.Len(t, p0.Hand, 1)
	assert.Equal(t, models.Camellia, p0.Hand[0].Card.Name())
	assert.True(t, p0.Hand[0].IsKeepsake, "rejected card is forced as a keepsake")
	assert.Nil(t, g.Offer)
	assert.Equal(t, ids[1], g.Turn, "turn advances past the offerer")
	g.Mu.Unlock()
}

func TestSelectOfferFacedown(t *testing.T) {
	g2, ids2 := setupStartedGame(t, 2)
	setDeck(t, g2, models.Camellia, models.Phlox)
	require.NoError(t, g2.DrawForOffer(ids2[0]))
	require.NoError(t, g2.MakeOffer(ids2[0], models.Phlox))
	require.NoError(t, g2.SelectOffer(ids2[1], false))

	g2.Mu.Lock()
	defer g2.Mu.Unlock()
	p0, p1 := g2.Players[0], g2.Players[1]
	assert.Equal(t, models.Camellia, p1.Hand[0].Card.Name())
	assert.True(t, p1.Hand[0].IsKeepsake)
	assert.Equal(t, models.Phlox, p0.Hand[0].Card.Name())
	assert.False(t, p0.Hand[0].IsKeepsake)
}

func TestSelectOfferWithoutOffer(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	require.ErrorIs(t, g.SelectOffer(ids[1], true), ErrOfferNotMade)
}

func TestTurnRotationThreePlayers(t *testing.T) {
	g, ids := setupStartedGame(t, 3)

	runTurn := func(offerer int) {
		setDeck(t, g, models.Camellia, models.Phlox)
		require.NoError(t, g.DrawForOffer(ids[offerer]))
		require.NoError(t, g.MakeOffer(ids[offerer], models.Phlox))
		chooser := (offerer + 1) % 3
		require.NoError(t, g.SelectOffer(ids[chooser], true))
	}

	runTurn(0)
	g.Mu.Lock()
	assert.Equal(t, ids[1], g.Turn)
	g.Mu.Unlock()
	runTurn(1)
	g.Mu.Lock()
	assert.Equal(t, ids[2], g.Turn)
	g.Mu.Unlock()
	runTurn(2)
	g.Mu.Lock()
	assert.Equal(t, ids[0], g.Turn, "rotation wraps back to the first seat")
	g.Mu.Unlock()
}

func TestFullRoundScoresOnLastSelection(t *testing.T) {
	g, ids := setupStartedGame(t, 2)

	// 4 turns of 2 cards each fills both hands with plain one-heart cards.
	for turn := 0; turn < 4; turn++ {
		offerer := turn % 2
		setDeck(t, g, models.Camellia, models.Camellia)
		require.NoError(t, g.DrawForOffer(ids[offerer]))
		require.NoError(t, g.MakeOffer(ids[offerer], models.Camellia))
		require.NoError(t, g.SelectOffer(ids[(offerer+1)%2], true))
	}

	state := g.GetPlayerState(ids[0])
	assert.Equal(t, PhaseRoundRecap, state.Phase)
	for _, pv := range state.Players {
		require.Len(t, pv.Hand, 4)
		assert.Equal(t, 4, pv.Score, "four camellias are worth one heart each")
	}
}

func TestAdvanceRound(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	require.ErrorIs(t, g.AdvanceRound(ids[0], identityRand), ErrIllegalOperation,
		"advance is only legal from the recap")

	// Force a recap: both hands full, no before-scoring cards.
	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	setHand(t, g, ids[1], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	require.Equal(t, PhaseRoundRecap, statusOf(g, ids[0]))

	require.NoError(t, g.AdvanceRound(ids[1], identityRand))
	g.Mu.Lock()
	assert.Equal(t, 1, g.Round)
	assert.Equal(t, ids[1], g.Turn, "first turn rotates each round")
	assert.Len(t, g.Deck, 17, "fresh deck every round")
	for _, p := range g.Players {
		assert.Empty(t, p.Hand)
		assert.Empty(t, p.DrawnCards)
		assert.Empty(t, p.DiscardedCards)
	}
	g.Mu.Unlock()
}

func TestGameOverAndPlayAgain(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	require.ErrorIs(t, g.PlayAgain(ids[0], identityRand), ErrIllegalOperation)

	g.Mu.Lock()
	g.Round = 2
	g.Players[0].Score = 11
	g.Players[1].Score = 9
	g.Mu.Unlock()
	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	setHand(t, g, ids[1], models.Camellia, models.Phlox, models.Daisy, models.Orchid)

	require.NoError(t, g.AdvanceRound(ids[0], identityRand))
	assert.Equal(t, PhaseGameOver, statusOf(g, ids[0]))

	require.NoError(t, g.PlayAgain(ids[1], identityRand))
	state := g.GetPlayerState(ids[0])
	assert.Equal(t, PhaseLobby, state.Phase)
	assert.Equal(t, -1, state.Round)
	for _, pv := range state.Players {
		assert.Zero(t, pv.Score)
		assert.Empty(t, pv.Hand)
	}
	g.Mu.Lock()
	assert.Equal(t, ids[0], g.Turn, "turn resets to the first seat")
	g.Mu.Unlock()
}
