// Package auth implements the platform's session token scheme. Tokens are
// opaque strings of the form "token_<userID>", a fixed wire contract with
// the browser client, which persists them in local storage. They are not a
// security boundary and must never be treated as one.
package auth

import "strings"

const tokenPrefix = "token_"

// Token returns the session token for a user id.
func Token(userID string) string {
	return tokenPrefix + userID
}

// UserID extracts the user id from a session token. The second return is
// false when the string is not a well-formed token.
func UserID(token string) (string, bool) {
	id, ok := strings.CutPrefix(token, tokenPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
