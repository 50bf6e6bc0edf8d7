package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, m.Verify(token))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Issue()
	require.NoError(t, err)

	assert.ErrorIs(t, NewManager("secret-b").Verify(token), ErrInvalidSession)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	assert.ErrorIs(t, m.Verify("not-a-jwt"), ErrInvalidSession)
	assert.ErrorIs(t, m.Verify(""), ErrInvalidSession)
}

func TestTokensAreUniquePerSession(t *testing.T) {
	m := NewManager("test-secret")

	a, err := m.Issue()
	require.NoError(t, err)
	b, err := m.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
