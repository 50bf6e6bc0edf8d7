package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverTaken(string) (bool, error) { return false, nil }

func TestGenerateReferralCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "first name token", input: "Anna Larsen", want: "ANNASPEED"},
		{name: "single name", input: "usain", want: "USAINSPEED"},
		{name: "strips non-alphanumerics", input: "Jean-Luc Picard", want: "JEANLUCSPEED"},
		{name: "digits survive", input: "Ole123 Hansen", want: "OLE123SPEED"},
		{name: "empty name falls back", input: "", want: "TRACKSPEED"},
		{name: "symbols-only name falls back", input: "@!! ??", want: "TRACKSPEED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateReferralCode(tt.input, neverTaken)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateReferralCodeSkipsCollisions(t *testing.T) {
	taken := map[string]bool{"ANNASPEED": true, "ANNASPEED2": true}
	exists := func(code string) (bool, error) { return taken[code], nil }

	got, err := GenerateReferralCode("Anna", exists)
	require.NoError(t, err)
	assert.Equal(t, "ANNASPEED3", got)
}

func TestGenerateReferralCodePropagatesLookupError(t *testing.T) {
	lookupErr := assert.AnError
	exists := func(string) (bool, error) { return false, lookupErr }

	_, err := GenerateReferralCode("Anna", exists)
	assert.ErrorIs(t, err, lookupErr)
}
