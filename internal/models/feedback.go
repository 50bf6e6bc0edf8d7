package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackPost is a public feature-request / bug-report board entry.
type FeedbackPost struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	Body         string         `gorm:"type:text" json:"body"`
	Category     string         `gorm:"size:30;index" json:"category"`
	Status       string         `gorm:"size:20;not null;default:'open';index" json:"status"`
	AuthorName   string         `gorm:"size:80" json:"author_name"`
	VoteCount    int            `gorm:"default:0" json:"vote_count"`
	CommentCount int            `gorm:"default:0" json:"comment_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// FeedbackComment is a comment on a board post.
type FeedbackComment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID     uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorName string    `gorm:"size:80" json:"author_name"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedbackVote deduplicates votes per post by a salted hash of the client
// IP. Not a strong identity, just enough to stop casual ballot stuffing.
type FeedbackVote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_votes_post_voter" json:"post_id"`
	VoterHash string    `gorm:"size:64;not null;uniqueIndex:idx_feedback_votes_post_voter" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
