package server

import (
	"time"

	"ladle/internal/models"
	"ladle/internal/repository"
	"ladle/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const defaultDifficulty = "medium"

// ListRecipes handles GET /recipes?tag=&search=.
// Both filters are optional; when both are supplied a recipe must match
// both. Results are newest first. No authentication required.
func (s *Server) ListRecipes(c *fiber.Ctx) error {
	filter := repository.RecipeFilter{
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}

	summaries, err := s.recipeRepo.List(c.Context(), filter)
	if err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(summaries)
}

// GetRecipe handles GET /recipes/:id. The rating aggregate is computed
// at read time and is 0 / 0 votes for an unrated recipe.
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	detail, err := s.recipeRepo.GetDetail(c.Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}

	agg, err := s.ratingRepo.Aggregate(c.Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	detail.AvgRating = agg.AvgRating
	detail.Votes = agg.Votes

	return c.JSON(detail)
}

// CreateRecipe handles POST /recipes.
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Ingredients string `json:"ingredients"`
		Steps       string `json:"steps"`
		Tags        string `json:"tags"`
		Difficulty  string `json:"difficulty"`
		PrepTime    *int   `json:"prep_time"`
		CookTime    *int   `json:"cook_time"`
		Servings    *int   `json:"servings"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Description == "" || req.Ingredients == "" || req.Steps == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("title, description, ingredients, and steps are required"))
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Tags:        req.Tags,
		Difficulty:  defaultDifficulty,
		Servings:    1,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if req.Difficulty != "" {
		recipe.Difficulty = req.Difficulty
	}
	if req.PrepTime != nil {
		if err := validation.ValidateDuration("prep_time", *req.PrepTime); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		recipe.PrepTime = *req.PrepTime
	}
	if req.CookTime != nil {
		if err := validation.ValidateDuration("cook_time", *req.CookTime); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		recipe.CookTime = *req.CookTime
	}
	if req.Servings != nil {
		if err := validation.ValidateServings(*req.Servings); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		recipe.Servings = *req.Servings
	}

	if err := s.recipeRepo.Create(c.Context(), recipe); err != nil {
		return respondRepoError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      recipe.ID,
		"message": "recipe created",
	})
}

// UpdateRecipe handles PUT /recipes/:id. Only the owner may update, and
// exactly the supplied fields are written.
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Ingredients *string `json:"ingredients"`
		Steps       *string `json:"steps"`
		Tags        *string `json:"tags"`
		Difficulty  *string `json:"difficulty"`
		PrepTime    *int    `json:"prep_time"`
		CookTime    *int    `json:"cook_time"`
		Servings    *int    `json:"servings"`
		ImageURL    *string `json:"image_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	recipe, err := s.recipeRepo.GetByID(c.Context(), recipeID)
	if err != nil {
		return respondRepoError(c, err)
	}

	if recipe.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only update your own recipes"))
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Ingredients != nil {
		fields["ingredients"] = *req.Ingredients
	}
	if req.Steps != nil {
		fields["steps"] = *req.Steps
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}
	if req.PrepTime != nil {
		if verr := validation.ValidateDuration("prep_time", *req.PrepTime); verr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(verr.Error()))
		}
		fields["prep_time"] = *req.PrepTime
	}
	if req.CookTime != nil {
		if verr := validation.ValidateDuration("cook_time", *req.CookTime); verr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(verr.Error()))
		}
		fields["cook_time"] = *req.CookTime
	}
	if req.Servings != nil {
		if verr := validation.ValidateServings(*req.Servings); verr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(verr.Error()))
		}
		fields["servings"] = *req.Servings
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}

	if len(fields) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("nothing to update"))
	}

	if err := s.recipeRepo.UpdateFields(c.Context(), recipeID, fields); err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "recipe updated",
	})
}

// DeleteRecipe handles DELETE /recipes/:id. Only the owner may delete.
// Ratings referencing the deleted recipe remain in place.
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	recipe, err := s.recipeRepo.GetByID(c.Context(), recipeID)
	if err != nil {
		return respondRepoError(c, err)
	}

	if recipe.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only delete your own recipes"))
	}

	if err := s.recipeRepo.Delete(c.Context(), recipeID); err != nil {
		return respondRepoError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "recipe deleted",
	})
}
