package handlers

import "strings"

// extractTokenFromCookie pulls the auth_token value out of a raw Cookie
// header, or returns empty if not present.
func extractTokenFromCookie(cookie string) string {
	parts := strings.Split(cookie, "auth_token=")
	if len(parts) < 2 {
		return ""
	}
	token := parts[1]
	if idx := strings.Index(token, ";"); idx != -1 {
		token = token[:idx]
	}
	return token
}
