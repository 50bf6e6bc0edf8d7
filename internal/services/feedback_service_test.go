package services

import (
	"testing"

	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoterHash(t *testing.T) {
	a := VoterHash("salt", "203.0.113.7")

	assert.Len(t, a, 64)
	assert.Equal(t, a, VoterHash("salt", "203.0.113.7"))
	assert.NotEqual(t, a, VoterHash("salt", "203.0.113.8"))
	assert.NotEqual(t, a, VoterHash("other-salt", "203.0.113.7"))
}

func TestVoteDuplicateFingerprintRejected(t *testing.T) {
	db := newTestDB(t, &models.FeedbackPost{}, &models.FeedbackVote{})
	svc := NewFeedbackService(db)

	post, err := svc.CreatePost(dto.CreateFeedbackPostRequest{Title: "Start detection fires late"})
	require.NoError(t, err)

	hash := VoterHash("salt", "203.0.113.7")
	require.NoError(t, svc.Vote(post.ID, hash))

	err = svc.Vote(post.ID, hash)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	var stored models.FeedbackPost
	require.NoError(t, db.First(&stored, "id = ?", post.ID).Error)
	assert.Equal(t, 1, stored.VoteCount, "duplicate must not change the stored count")

	// A different fingerprint on the same post still counts.
	require.NoError(t, svc.Vote(post.ID, VoterHash("salt", "203.0.113.8")))
	require.NoError(t, db.First(&stored, "id = ?", post.ID).Error)
	assert.Equal(t, 2, stored.VoteCount)
}
