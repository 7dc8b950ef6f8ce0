// internal/game/game.go
package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/floriography/tussie/internal/cache"
	"github.com/floriography/tussie/internal/models"
)

// maxPlayers caps the lobby. The deck holds 17 cards; a fourth player already
// leaves only one spare after drafting.
const maxPlayers = 4

// TussieGame holds the entire authoritative state for one game session.
// Actions mutate it one at a time under Mu; the engine itself never blocks,
// spawns turn timers, or touches the network.
type TussieGame struct {
	ID uuid.UUID

	// NicknameOf maps a user id to the display name chosen at join time.
	NicknameOf map[uuid.UUID]string

	// Deck's top is the end of the slice; drawing pops from the end.
	Deck []models.Card

	// Round is -1 in the lobby, 0..2 during play, 3 when the game is over.
	Round int

	// Turn is the user whose turn it is to draw and offer.
	Turn uuid.UUID

	// Offer is non-nil only between one player's offer and the chooser's
	// selection.
	Offer *models.Offer

	BeforeScoring BeforeScoringFlags

	// Players is in seating order, fixed once the game starts. Turn rotation
	// walks this order.
	Players []*models.PlayerInfo

	Mu sync.Mutex

	// PushStateFn, when set, is invoked after every successful action so the
	// transport can send each player their masked view. Called with the lock
	// held; implementations must not call back into the game synchronously.
	PushStateFn func()

	actionIndex int
}

// NewTussieGame creates a session in the lobby phase with the creator seated
// first. The creator also holds the first turn once the game starts.
func NewTussieGame(creatorID uuid.UUID, nickname string, randInt RandInt) *TussieGame {
	id, _ := uuid.NewRandom()
	g := &TussieGame{
		ID:         id,
		NicknameOf: map[uuid.UUID]string{creatorID: nickname},
		Deck:       NewDeck(randInt),
		Round:      -1,
		Turn:       creatorID,
		Players: []*models.PlayerInfo{
			newPlayer(creatorID),
		},
	}
	g.logAction(creatorID, "game_create", map[string]interface{}{"nickname": nickname})
	return g
}

func newPlayer(userID uuid.UUID) *models.PlayerInfo {
	return &models.PlayerInfo{
		ID:             userID,
		Hand:           []models.HandCard{},
		DrawnCards:     []models.Card{},
		DiscardedCards: []models.Card{},
	}
}

// Join seats a new player during the lobby phase.
func (g *TussieGame) Join(userID uuid.UUID, nickname string) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.getPlayerByID(userID) != nil {
		return ErrAlreadyJoined
	}
	if g.Round >= 0 {
		return ErrGameStarted
	}
	if len(g.Players) >= maxPlayers {
		return ErrIllegalOperation
	}
	g.Players = append(g.Players, newPlayer(userID))
	g.NicknameOf[userID] = nickname
	g.logAction(userID, "game_join", map[string]interface{}{"nickname": nickname})
	g.pushState()
	return nil
}

// Start begins round 0. Any seated player may start once at least two have
// joined.
func (g *TussieGame) Start(userID uuid.UUID) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.getPlayerByID(userID) == nil {
		return ErrInvalidAction
	}
	if g.Round >= 0 {
		return ErrGameStarted
	}
	if len(g.Players) < 2 {
		return ErrNotEnoughPlayers
	}
	g.Round = 0
	log.Printf("Game %s started with %d players.", g.ID, len(g.Players))
	g.logAction(userID, "game_start", map[string]interface{}{"players": len(g.Players)})
	g.pushState()
	return nil
}

// AdvanceRound moves from a round recap to the next round (or to game over
// after round 2): fresh deck, cleared hands, turn rotated one seat.
func (g *TussieGame) AdvanceRound(userID uuid.UUID, randInt RandInt) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.getPlayerByID(userID) == nil {
		return ErrInvalidAction
	}
	if g.phase() != PhaseRoundRecap {
		return ErrIllegalOperation
	}

	g.Round++
	g.Deck = NewDeck(randInt)
	g.Offer = nil
	g.BeforeScoring = BeforeScoringFlags{}
	turnIdx := g.playerIndex(g.Turn)
	g.Turn = g.Players[(turnIdx+1)%len(g.Players)].ID
	for _, p := range g.Players {
		p.Hand = []models.HandCard{}
		p.DrawnCards = []models.Card{}
		p.DiscardedCards = []models.Card{}
	}
	g.logAction(userID, "round_advance", map[string]interface{}{"round": g.Round})
	g.pushState()
	return nil
}

// PlayAgain resets a finished game back to the lobby, keeping seats, scores
// zeroed and nicknames intact.
func (g *TussieGame) PlayAgain(userID uuid.UUID, randInt RandInt) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.getPlayerByID(userID) == nil {
		return ErrInvalidAction
	}
	if g.phase() != PhaseGameOver {
		return ErrIllegalOperation
	}

	g.Round = -1
	g.Deck = NewDeck(randInt)
	g.Offer = nil
	g.BeforeScoring = BeforeScoringFlags{}
	g.Turn = g.Players[0].ID
	for _, p := range g.Players {
		p.Score = 0
		p.Hand = []models.HandCard{}
		p.DrawnCards = []models.Card{}
		p.DiscardedCards = []models.Card{}
	}
	g.logAction(userID, "game_play_again", nil)
	g.pushState()
	return nil
}

// processRecap scores every player's final hand once, at the moment the phase
// transitions into ROUND_RECAP. Assumes lock is held.
func (g *TussieGame) processRecap() {
	scores := map[uuid.UUID]int{}
	for _, p := range g.Players {
		roundScore := 0
		for _, hc := range p.Hand {
			roundScore += scoreForCard(hc, p.Hand)
		}
		p.Score += roundScore
		scores[p.ID] = roundScore
	}
	log.Printf("Game %s: round %d scored.", g.ID, g.Round)
	g.logAction(uuid.Nil, "round_recap", map[string]interface{}{"round": g.Round})

	if g.Round == 2 {
		// Final round: results become durable once the host advances to
		// GAME_OVER, but record them now while the hands are intact.
		g.persistFinalScores()
	}
}

// persistFinalScores upserts cumulative scores asynchronously. Assumes lock is
// held; the snapshot is taken before the goroutine starts.
func (g *TussieGame) persistFinalScores() {
	final := make(map[uuid.UUID]int, len(g.Players))
	for _, p := range g.Players {
		final[p.ID] = p.Score
	}
	go func(gameID uuid.UUID, scores map[uuid.UUID]int) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recordResults(ctx, gameID, scores); err != nil {
			log.Printf("Game %s: failed to persist results: %v", gameID, err)
		}
	}(g.ID, final)
}

// getPlayerByID finds a seat by user id. Assumes lock is held.
func (g *TussieGame) getPlayerByID(userID uuid.UUID) *models.PlayerInfo {
	for _, p := range g.Players {
		if p.ID == userID {
			return p
		}
	}
	return nil
}

// playerIndex returns the seat index for a user id, or -1. Assumes lock is held.
func (g *TussieGame) playerIndex(userID uuid.UUID) int {
	for i, p := range g.Players {
		if p.ID == userID {
			return i
		}
	}
	return -1
}

// pushState asks the transport to resend masked views. Assumes lock is held.
func (g *TussieGame) pushState() {
	if g.PushStateFn != nil {
		g.PushStateFn()
	}
}

// logAction sends the action details to the historian service via Redis.
// Assumes lock is held.
func (g *TussieGame) logAction(actorID uuid.UUID, actionType string, payload map[string]interface{}) {
	g.actionIndex++
	if payload == nil {
		payload = make(map[string]interface{})
	}
	record := cache.GameActionRecord{
		GameID:        g.ID,
		ActionIndex:   g.actionIndex,
		ActorUserID:   actorID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	go func(rec cache.GameActionRecord) {
		if cache.Rdb == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.PublishGameAction(ctx, rec); err != nil {
			log.Printf("Error publishing game action %d for game %s: %v", rec.ActionIndex, rec.GameID, err)
		}
	}(record)
}
