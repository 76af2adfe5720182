package models

import "time"

// Recipe represents a recipe owned by a user. Tags are a free-text
// token list and are matched by substring when filtering. CreatedAt is
// set once at insert and never updated.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Ingredients string    `gorm:"type:text" json:"ingredients"`
	Steps       string    `gorm:"type:text" json:"steps"`
	Tags        string    `json:"tags"`
	Difficulty  string    `gorm:"default:medium" json:"difficulty"`
	PrepTime    int       `json:"prep_time"`
	CookTime    int       `json:"cook_time"`
	Servings    int       `gorm:"default:1" json:"servings"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeSummary is the listing projection: recipe columns joined with
// the author's username. Produced by RecipeRepository.List.
type RecipeSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        string    `json:"tags"`
	Difficulty  string    `json:"difficulty"`
	PrepTime    int       `json:"prep_time"`
	CookTime    int       `json:"cook_time"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	Author      string    `json:"author"`
}

// RecipeDetail is the full recipe view with author username and the
// rating aggregate computed at read time.
type RecipeDetail struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients string    `json:"ingredients"`
	Steps       string    `json:"steps"`
	Tags        string    `json:"tags"`
	Difficulty  string    `json:"difficulty"`
	PrepTime    int       `json:"prep_time"`
	CookTime    int       `json:"cook_time"`
	Servings    int       `json:"servings"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	Author      string    `json:"author"`
	AvgRating   float64   `json:"avg_rating"`
	Votes       int64     `json:"votes"`
}
