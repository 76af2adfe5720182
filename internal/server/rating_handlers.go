package server

import (
	"ladle/internal/middleware"
	"ladle/internal/models"
	"ladle/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RateRecipe handles POST /recipes/:id/rate. Every submission appends a
// new rating row; users may rate the same recipe repeatedly and every
// vote counts toward the average.
func (s *Server) RateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Rating *int `json:"rating"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// The payload is checked before the recipe is looked up, so a bad
	// rating on a missing recipe reports 400, not 404.
	if req.Rating == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("rating is required"))
	}
	if verr := validation.ValidateRating(*req.Rating); verr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(verr.Error()))
	}

	if _, err := s.recipeRepo.GetByID(c.Context(), recipeID); err != nil {
		return respondRepoError(c, err)
	}

	rating := &models.Rating{
		UserID:   userID,
		RecipeID: recipeID,
		Rating:   *req.Rating,
	}
	if err := s.ratingRepo.Create(c.Context(), rating); err != nil {
		return respondRepoError(c, err)
	}

	middleware.RatingsSubmitted.Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "rating saved",
	})
}
