package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("feedback post not found")
	ErrAlreadyVoted = errors.New("already voted on this post")
)

// VoterHash fingerprints a voter as the salted SHA-256 of the client IP.
// Deliberately weak identity, it only stops casual repeat votes.
func VoterHash(salt, ip string) string {
	sum := sha256.Sum256([]byte(salt + "|" + ip))
	return hex.EncodeToString(sum[:])
}

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

func (s *FeedbackService) CreatePost(req dto.CreateFeedbackPostRequest) (*models.FeedbackPost, error) {
	post := models.FeedbackPost{
		Title:      req.Title,
		Body:       req.Body,
		Category:   req.Category,
		AuthorName: req.AuthorName,
		Status:     "open",
	}
	if post.AuthorName == "" {
		post.AuthorName = "Anonymous"
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns the board sorted by votes ("top", the default) or
// recency ("new").
func (s *FeedbackService) ListPosts(sort string, page, limit int) ([]models.FeedbackPost, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	order := "vote_count DESC, created_at DESC"
	if sort == "new" {
		order = "created_at DESC"
	}

	var total int64
	if err := s.db.Model(&models.FeedbackPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.FeedbackPost
	err := s.db.Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (s *FeedbackService) GetPost(id uuid.UUID) (*models.FeedbackPost, error) {
	var post models.FeedbackPost
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *FeedbackService) AddComment(postID uuid.UUID, req dto.CreateFeedbackCommentRequest) (*models.FeedbackComment, error) {
	if _, err := s.GetPost(postID); err != nil {
		return nil, err
	}

	comment := models.FeedbackComment{
		PostID:     postID,
		AuthorName: req.AuthorName,
		Body:       req.Body,
	}
	if comment.AuthorName == "" {
		comment.AuthorName = "Anonymous"
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	s.db.Model(&models.FeedbackPost{}).Where("id = ?", postID).
		Update("comment_count", gorm.Expr("comment_count + 1"))

	return &comment, nil
}

func (s *FeedbackService) ListComments(postID uuid.UUID) ([]models.FeedbackComment, error) {
	var comments []models.FeedbackComment
	err := s.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// Vote records one vote per fingerprint per post. A duplicate returns
// ErrAlreadyVoted and leaves the stored count unchanged.
func (s *FeedbackService) Vote(postID uuid.UUID, voterHash string) error {
	if _, err := s.GetPost(postID); err != nil {
		return err
	}

	var existing models.FeedbackVote
	err := s.db.Where("post_id = ? AND voter_hash = ?", postID, voterHash).First(&existing).Error
	if err == nil {
		return ErrAlreadyVoted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	vote := models.FeedbackVote{PostID: postID, VoterHash: voterHash}
	if err := s.db.Create(&vote).Error; err != nil {
		// The unique index closes the race between the check and the insert.
		return ErrAlreadyVoted
	}

	return s.db.Model(&models.FeedbackPost{}).Where("id = ?", postID).
		Update("vote_count", gorm.Expr("vote_count + 1")).Error
}
