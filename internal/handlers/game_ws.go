// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/floriography/tussie/internal/game"
	"github.com/floriography/tussie/internal/models"
)

// GameMessage is the structure for incoming WebSocket messages. Which fields
// are read depends on the action type; unused fields are ignored.
type GameMessage struct {
	Type string `json:"type"`

	// Nickname is the display name for join messages.
	Nickname string `json:"nickname,omitempty"`

	// Card names the primary card of an action: the face-up card of an offer,
	// the drawn card kept by a pink larkspur swap, or the card a marigold
	// holder discards.
	Card string `json:"card,omitempty"`

	// Replace names the hand card given up during a pink larkspur swap.
	Replace string `json:"replace,omitempty"`

	// Cards lists the hand cards whose zone a snapdragon holder flips.
	Cards []string `json:"cards,omitempty"`

	// Faceup is the chooser's pick when selecting from an offer.
	Faceup bool `json:"faceup,omitempty"`
}

// stateMessage wraps a per-player masked view for delivery to one client.
type stateMessage struct {
	Type  string           `json:"type"`
	State game.PlayerState `json:"state"`
}

// GameWSHandler upgrades the HTTP connection to WebSocket for a specific game
// instance. It authenticates the user (minting a guest if needed), registers
// the connection, and runs the read loop that routes game messages to the
// engine. Players who have not yet joined may connect and send a join message.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameIDStr := chi.URLParam(r, "game_id")
		gameID, err := uuid.Parse(gameIDStr)
		if err != nil {
			http.Error(w, "Invalid game_id format", http.StatusBadRequest)
			return
		}

		g, ok := gs.GameStore.GetGame(gameID)
		if !ok {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for game %s: %v", gameID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		if c.Subprotocol() != "game" {
			logger.Warnf("Client for game %s connected with invalid subprotocol: %s", gameID, c.Subprotocol())
			c.Close(BadSubprotocolError, "Client must use the 'game' subprotocol.")
			return
		}

		userID, err := EnsureEphemeralUser(w, r)
		if err != nil {
			logger.Warnf("User authentication failed for game %s: %v", gameID, err)
			c.Close(InvalidAuthTokenError, "Authentication failed.")
			return
		}
		logger.Infof("User %s connected to game %s from %s", userID, gameID, r.RemoteAddr)

		// Register the push function once per game instance. It is invoked by
		// the engine with the game lock held, so the actual sends are deferred
		// to a goroutine.
		g.Mu.Lock()
		if g.PushStateFn == nil {
			g.PushStateFn = createPushStateFunc(g, logger)
		}
		g.Mu.Unlock()

		// Seated players (including reconnects) get their connection attached
		// and an immediate state snapshot. Everyone else joins via a message.
		attachConn(g, userID, c)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		readGameMessages(ctx, c, g, userID, logger)

		logger.Infof("Player %s WebSocket read loop exited for game %s.", userID, gameID)
		detachConn(g, userID, c)
	}
}

// attachConn binds the connection to the user's seat, if they have one, and
// sends them their current view.
func attachConn(g *game.TussieGame, userID uuid.UUID, c *websocket.Conn) {
	seated := false
	g.Mu.Lock()
	for _, p := range g.Players {
		if p.ID == userID {
			p.Conn = c
			p.Connected = true
			seated = true
			break
		}
	}
	g.Mu.Unlock()
	if seated {
		sendPlayerState(g, userID, c)
	}
}

// detachConn marks the seat disconnected, but only if it still owns this
// connection. A newer connection for the same user must not be clobbered.
func detachConn(g *game.TussieGame, userID uuid.UUID, c *websocket.Conn) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	for _, p := range g.Players {
		if p.ID == userID && p.Conn == c {
			p.Conn = nil
			p.Connected = false
			break
		}
	}
}

// sendPlayerState sends one player their masked view of the game.
func sendPlayerState(g *game.TussieGame, userID uuid.UUID, c *websocket.Conn) {
	state := g.GetPlayerState(userID)
	sendWsMessage(c, stateMessage{Type: "state", State: state})
}

// createPushStateFunc returns a function suitable for TussieGame.PushStateFn.
// It is called while the game lock is held, so it only spawns a goroutine;
// the goroutine snapshots the connected seats and sends each player their own
// masked view.
func createPushStateFunc(g *game.TussieGame, logger *logrus.Logger) func() {
	return func() {
		go func() {
			type target struct {
				id   uuid.UUID
				conn *websocket.Conn
			}
			var targets []target
			g.Mu.Lock()
			for _, p := range g.Players {
				if p.Connected && p.Conn != nil {
					targets = append(targets, target{id: p.ID, conn: p.Conn})
				}
			}
			g.Mu.Unlock()

			for _, t := range targets {
				state := g.GetPlayerState(t.id)
				msgBytes, err := json.Marshal(stateMessage{Type: "state", State: state})
				if err != nil {
					logger.Errorf("Failed to marshal state for player %s in game %s: %v", t.id, g.ID, err)
					continue
				}
				writeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				err = t.conn.Write(writeCtx, websocket.MessageText, msgBytes)
				cancel()
				if err != nil {
					logger.Warnf("Failed to write state to player %s in game %s: %v", t.id, g.ID, err)
				}
			}
		}()
	}
}

// readGameMessages continuously reads messages from a client's WebSocket
// connection, unmarshals them, and routes them to the engine. Engine methods
// take the game lock themselves; action errors are reported back to the
// sender and never broadcast.
func readGameMessages(ctx context.Context, c *websocket.Conn, g *game.TussieGame, userID uuid.UUID, logger *logrus.Logger) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("WebSocket closed normally for user %s in game %s.", userID, g.ID)
			} else if strings.Contains(err.Error(), "context canceled") {
				logger.Infof("WebSocket context canceled for user %s in game %s.", userID, g.ID)
			} else {
				logger.Warnf("Error reading from WebSocket for user %s in game %s: %v (Status: %d)", userID, g.ID, err, status)
			}
			return
		}

		if msgType != websocket.MessageText {
			logger.Warnf("Received non-text message type %d from user %s in game %s. Ignoring.", msgType, userID, g.ID)
			continue
		}

		var msg GameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid JSON received from user %s in game %s: %v. Data: %s", userID, g.ID, err, string(data))
			sendWsError(c, "Invalid JSON format.")
			continue
		}

		logger.Debugf("Received action '%s' from user %s in game %s.", msg.Type, userID, g.ID)

		var actErr error
		switch msg.Type {
		case "join":
			actErr = g.Join(userID, msg.Nickname)
			if actErr == nil {
				attachConn(g, userID, c)
			}
		case "start":
			actErr = g.Start(userID)
		case "draw_for_offer":
			actErr = g.DrawForOffer(userID)
		case "make_offer":
			actErr = g.MakeOffer(userID, models.CardName(msg.Card))
		case "select_offer":
			actErr = g.SelectOffer(userID, msg.Faceup)
		case "pink_larkspur_draw":
			actErr = g.PinkLarkspurDraw(userID)
		case "pink_larkspur_swap":
			actErr = g.PinkLarkspurSwap(userID, models.CardName(msg.Card), models.CardName(msg.Replace))
		case "snapdragon":
			names := make([]models.CardName, len(msg.Cards))
			for i, n := range msg.Cards {
				names[i] = models.CardName(n)
			}
			actErr = g.SnapdragonSwitch(userID, names)
		case "marigold":
			actErr = g.MarigoldDiscard(userID, models.CardName(msg.Card))
		case "advance_round":
			actErr = g.AdvanceRound(userID, serverRandInt)
		case "play_again":
			actErr = g.PlayAgain(userID, serverRandInt)
		case "ping":
			logger.Tracef("Received ping from user %s, sending pong.", userID)
			sendWsMessage(c, map[string]string{"type": "pong"})
			continue
		default:
			logger.Warnf("Unknown action type '%s' from user %s in game %s.", msg.Type, userID, g.ID)
			sendWsError(c, fmt.Sprintf("Unknown action type: %s", msg.Type))
			continue
		}

		if actErr != nil {
			logger.Debugf("Action '%s' from user %s rejected in game %s: %v", msg.Type, userID, g.ID, actErr)
			sendWsError(c, actErr.Error())
		}

		select {
		case <-ctx.Done():
			logger.Infof("Context canceled after processing message for user %s in game %s.", userID, g.ID)
			return
		default:
		}
	}
}

// sendWsMessage marshals a message and sends it to the WebSocket client with
// a write timeout.
func sendWsMessage(c *websocket.Conn, message interface{}) {
	if c == nil {
		log.Println("Error: Attempted to send WebSocket message on nil connection.")
		return
	}
	msgBytes, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling WebSocket message: %v", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = c.Write(writeCtx, websocket.MessageText, msgBytes)
	if err != nil {
		status := websocket.CloseStatus(err)
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
			log.Printf("Error writing WebSocket message: %v (Status: %d)", err, status)
		}
		// Let the read loop handle connection closure detection.
	}
}

// sendWsError sends a structured error message to the client.
func sendWsError(c *websocket.Conn, errorMsg string) {
	sendWsMessage(c, map[string]interface{}{
		"type":    "error",
		"message": errorMsg,
	})
}
