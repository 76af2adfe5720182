package repository

import (
	"context"
	"errors"

	"ladle/internal/models"

	"gorm.io/gorm"
)

// RecipeFilter narrows recipe listings. Empty fields are ignored; when
// both are set a row must satisfy both (logical AND).
type RecipeFilter struct {
	// Tag is matched as a substring of the stored tags field.
	Tag string
	// Search is matched as a substring of the title or description.
	Search string
}

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	GetDetail(ctx context.Context, id uint) (*models.RecipeDetail, error)
	List(ctx context.Context, filter RecipeFilter) ([]models.RecipeSummary, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository returns a new RecipeRepository implementation.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

// GetDetail returns the full recipe joined with the author's username.
// The rating aggregate is filled in by the caller.
func (r *recipeRepository) GetDetail(ctx context.Context, id uint) (*models.RecipeDetail, error) {
	var detail models.RecipeDetail
	res := r.db.WithContext(ctx).
		Table("recipes").
		Select("recipes.id, recipes.title, recipes.description, recipes.ingredients, recipes.steps, "+
			"recipes.tags, recipes.difficulty, recipes.prep_time, recipes.cook_time, recipes.servings, "+
			"recipes.image_url, recipes.created_at, users.username AS author").
		Joins("JOIN users ON users.id = recipes.user_id").
		Where("recipes.id = ?", id).
		Scan(&detail)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Recipe", id)
	}
	return &detail, nil
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter) ([]models.RecipeSummary, error) {
	q := r.db.WithContext(ctx).
		Table("recipes").
		Select("recipes.id, recipes.title, recipes.description, recipes.tags, recipes.difficulty, " +
			"recipes.prep_time, recipes.cook_time, recipes.image_url, recipes.created_at, users.username AS author").
		Joins("JOIN users ON users.id = recipes.user_id")

	if filter.Tag != "" {
		q = q.Where("recipes.tags LIKE ?", "%"+filter.Tag+"%")
	}
	if filter.Search != "" {
		needle := "%" + filter.Search + "%"
		q = q.Where("(recipes.title LIKE ? OR recipes.description LIKE ?)", needle, needle)
	}

	summaries := []models.RecipeSummary{}
	if err := q.Order("recipes.created_at DESC").Scan(&summaries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return summaries, nil
}

// UpdateFields updates exactly the supplied columns, leaving all others
// (including created_at) untouched.
func (r *recipeRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the recipe row. Ratings referencing the recipe are
// intentionally left in place.
func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Recipe{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
