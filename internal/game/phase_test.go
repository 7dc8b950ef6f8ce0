// internal/game/phase_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floriography/tussie/internal/models"
)

func TestPhaseWhileDrafting(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	assert.Equal(t, PhasePlayerTurns, statusOf(g, ids[0]))

	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	assert.Equal(t, PhasePlayerTurns, statusOf(g, ids[0]), "still drafting while any hand is short")
}

func TestPhaseBeforeScoringThenRecap(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	setHand(t, g, ids[1], models.Snapdragon, models.Camellia, models.Phlox, models.Daisy)

	assert.Equal(t, PhaseBeforeScoring, statusOf(g, ids[0]))

	require.NoError(t, g.SnapdragonSwitch(ids[1], nil))
	assert.Equal(t, PhaseRoundRecap, statusOf(g, ids[0]))
}

func TestMarigoldHolderCountsAsDone(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	setHand(t, g, ids[1], models.Marigold, models.Camellia, models.Phlox, models.Daisy)

	require.Equal(t, PhaseBeforeScoring, statusOf(g, ids[0]))
	require.NoError(t, g.MarigoldDiscard(ids[1], models.Daisy))

	// The holder sits at three cards now; the hand must not reopen for
	// drafting.
	assert.Equal(t, PhaseRoundRecap, statusOf(g, ids[0]))
	require.ErrorIs(t, g.DrawForOffer(ids[0]), ErrIllegalOperation)
}

// A before-scoring card removed from a hand by another effect still counts as
// present, so the round cannot slip into the recap with its effect
// unresolved. With no holder left it also can never resolve; clients avoid
// the dead end by resolving the removing effect last.
func TestDiscardedBeforeScoringCardStillCounts(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	setHand(t, g, ids[1], models.Marigold, models.Snapdragon, models.Camellia, models.Phlox)

	require.Equal(t, PhaseBeforeScoring, statusOf(g, ids[0]))
	require.NoError(t, g.MarigoldDiscard(ids[1], models.Snapdragon))

	assert.Equal(t, PhaseBeforeScoring, statusOf(g, ids[0]),
		"discarded snapdragon still demands resolution")
	require.ErrorIs(t, g.SnapdragonSwitch(ids[1], nil), ErrInvalidAction,
		"nobody holds the snapdragon anymore")
}

func TestResolvedFlagsResetOnAdvance(t *testing.T) {
	g, ids := setupStartedGame(t, 2)
	setHand(t, g, ids[0], models.Camellia, models.Phlox, models.Daisy, models.Orchid)
	setHand(t, g, ids[1], models.Snapdragon, models.Camellia, models.Phlox, models.Daisy)
	require.NoError(t, g.SnapdragonSwitch(ids[1], nil))
	require.NoError(t, g.AdvanceRound(ids[0], identityRand))

	g.Mu.Lock()
	defer g.Mu.Unlock()
	assert.Equal(t, BeforeScoringFlags{}, g.BeforeScoring)
}
