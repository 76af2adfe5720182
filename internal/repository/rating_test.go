package repository

import (
	"context"
	"testing"

	"ladle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingRepository_AggregateEmpty(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewRatingRepository(db)

	agg, err := repo.Aggregate(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, agg.AvgRating)
	assert.Zero(t, agg.Votes)
}

func TestRatingRepository_Aggregate(t *testing.T) {
	db := setupSQLiteDB(t)
	alice, bob := seedRecipeFixtures(t, db)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	var recipe models.Recipe
	require.NoError(t, db.Where("title = ?", "Lentil Soup").First(&recipe).Error)

	for _, r := range []*models.Rating{
		{UserID: alice.ID, RecipeID: recipe.ID, Rating: 5},
		{UserID: bob.ID, RecipeID: recipe.ID, Rating: 3},
		{UserID: bob.ID, RecipeID: recipe.ID, Rating: 4},
	} {
		require.NoError(t, repo.Create(ctx, r))
	}

	agg, err := repo.Aggregate(ctx, recipe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, agg.AvgRating, 0.001)
	assert.Equal(t, int64(3), agg.Votes)
}

func TestRatingRepository_AggregateScopedToRecipe(t *testing.T) {
	db := setupSQLiteDB(t)
	alice, _ := seedRecipeFixtures(t, db)
	repo := NewRatingRepository(db)
	ctx := context.Background()

	var soup, curry models.Recipe
	require.NoError(t, db.Where("title = ?", "Lentil Soup").First(&soup).Error)
	require.NoError(t, db.Where("title = ?", "Chicken Curry").First(&curry).Error)

	require.NoError(t, repo.Create(ctx, &models.Rating{UserID: alice.ID, RecipeID: soup.ID, Rating: 5}))
	require.NoError(t, repo.Create(ctx, &models.Rating{UserID: alice.ID, RecipeID: curry.ID, Rating: 1}))

	agg, err := repo.Aggregate(ctx, soup.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, agg.AvgRating, 0.001)
	assert.Equal(t, int64(1), agg.Votes)
}

func TestRatingRepository_RatingsSurviveRecipeDelete(t *testing.T) {
	db := setupSQLiteDB(t)
	alice, _ := seedRecipeFixtures(t, db)
	recipes := NewRecipeRepository(db)
	ratings := NewRatingRepository(db)
	ctx := context.Background()

	var recipe models.Recipe
	require.NoError(t, db.Where("title = ?", "Lentil Soup").First(&recipe).Error)
	require.NoError(t, ratings.Create(ctx, &models.Rating{UserID: alice.ID, RecipeID: recipe.ID, Rating: 4}))

	require.NoError(t, recipes.Delete(ctx, recipe.ID))

	// No cascade: the rating rows remain after the recipe is gone.
	agg, err := ratings.Aggregate(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), agg.Votes)
}
