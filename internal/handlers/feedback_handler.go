package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sondregut/trackspeed-site/internal/config"
	"github.com/sondregut/trackspeed-site/internal/dto"
	"github.com/sondregut/trackspeed-site/internal/services"
)

type FeedbackHandler struct {
	cfg      *config.Config
	feedback *services.FeedbackService
}

func NewFeedbackHandler(cfg *config.Config, feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{cfg: cfg, feedback: feedback}
}

func (h *FeedbackHandler) ListPosts(c *fiber.Ctx) error {
	posts, total, err := h.feedback.ListPosts(
		c.Query("sort", "top"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 25),
	)
	if err != nil {
		slog.Error("feedback list failed", "error", err)
		return internalError(c)
	}
	return c.JSON(fiber.Map{"posts": posts, "total": total})
}

func (h *FeedbackHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreateFeedbackPostRequest
	if !parseBody(c, &req) {
		return nil
	}

	post, err := h.feedback.CreatePost(req)
	if err != nil {
		slog.Error("feedback create failed", "error", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *FeedbackHandler) ListComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	comments, err := h.feedback.ListComments(postID)
	if err != nil {
		slog.Error("comment list failed", "post_id", postID, "error", err)
		return internalError(c)
	}
	return c.JSON(comments)
}

func (h *FeedbackHandler) AddComment(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	var req dto.CreateFeedbackCommentRequest
	if !parseBody(c, &req) {
		return nil
	}

	comment, err := h.feedback.AddComment(postID, req)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("comment create failed", "post_id", postID, "error", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// Vote records one vote per salted-IP fingerprint per post.
func (h *FeedbackHandler) Vote(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	voterHash := services.VoterHash(h.cfg.VoteSalt, c.IP())
	if err := h.feedback.Vote(postID, voterHash); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyVoted):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			slog.Error("vote failed", "post_id", postID, "error", err)
			return internalError(c)
		}
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
