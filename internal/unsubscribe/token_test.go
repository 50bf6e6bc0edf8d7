package unsubscribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token := Token("secret", "runner@example.com")

	assert.True(t, Verify("secret", "runner@example.com", token))
}

func TestTokenNormalizesEmail(t *testing.T) {
	token := Token("secret", "Runner@Example.COM ")

	assert.True(t, Verify("secret", "runner@example.com", token))
}

func TestVerifyRejectsTampering(t *testing.T) {
	token := Token("secret", "runner@example.com")

	assert.False(t, Verify("secret", "other@example.com", token))
	assert.False(t, Verify("wrong-secret", "runner@example.com", token))
	assert.False(t, Verify("secret", "runner@example.com", token+"00"))
	assert.False(t, Verify("secret", "runner@example.com", ""))
}
