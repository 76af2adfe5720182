package repository

import (
	"context"

	"ladle/internal/models"

	"gorm.io/gorm"
)

// RatingAggregate is the read-time rollup of a recipe's ratings.
type RatingAggregate struct {
	AvgRating float64 `gorm:"column:avg_rating"`
	Votes     int64   `gorm:"column:votes"`
}

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Aggregate(ctx context.Context, recipeID uint) (*RatingAggregate, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Aggregate computes the mean and count over all ratings for a recipe.
// A recipe with no ratings yields an average of 0 and zero votes.
func (r *ratingRepository) Aggregate(ctx context.Context, recipeID uint) (*RatingAggregate, error) {
	var agg RatingAggregate
	err := r.db.WithContext(ctx).
		Table("ratings").
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS votes").
		Where("recipe_id = ?", recipeID).
		Scan(&agg).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &agg, nil
}
