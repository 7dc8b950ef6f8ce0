// internal/handlers/ws_codes.go
package handlers

// Custom WebSocket close codes used by the game handlers. These give clients
// a more specific reason for closure than the standard codes.
const (
	BadSubprotocolError   = 3000 // Client connected with an unsupported subprotocol.
	InvalidAuthTokenError = 3001 // Provided auth token was invalid and no guest could be minted.
	InvalidUserIDError    = 3002 // User ID derived from token was malformed or invalid.
	InvalidGameIDError    = 3003 // Target game ID in the WS URL does not exist or is invalid.
)
