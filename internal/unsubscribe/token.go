// Package unsubscribe generates and checks the HMAC tokens embedded in
// unsubscribe links, so the endpoint can mutate list state without any
// session or login.
package unsubscribe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Token returns the hex HMAC-SHA256 over the normalized email address.
func Token(secret, email string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(normalize(email)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether token is valid for email. Comparison is
// constant-time.
func Verify(secret, email, token string) bool {
	expected := Token(secret, email)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(token)))
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
