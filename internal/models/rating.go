package models

// Rating bounds accepted on submission.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is an append-only feedback row. There is deliberately no
// uniqueness constraint on (UserID, RecipeID): repeat votes from the
// same user accumulate. Rows are never updated or deleted, and they
// are not cascaded when a recipe is removed.
type Rating struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;index" json:"user_id"`
	RecipeID uint `gorm:"not null;index" json:"recipe_id"`
	Rating   int  `gorm:"not null" json:"rating"`
}
