package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sondregut/trackspeed-site/internal/dto"
)

var validate = validator.New()

// parseBody unmarshals and validates a request body, replying 400 itself on
// failure. Returns false when the caller should stop.
func parseBody(c *fiber.Ctx, out interface{}) bool {
	if err := c.BodyParser(out); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
		return false
	}
	if err := validate.Struct(out); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
		return false
	}
	return true
}
