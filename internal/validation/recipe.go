package validation

import (
	"fmt"

	"ladle/internal/models"
)

// ValidateRating checks that a rating value is within the accepted range.
func ValidateRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return fmt.Errorf("rating must be between %d and %d", models.MinRating, models.MaxRating)
	}
	return nil
}

// ValidateDuration checks that a prep or cook time is non-negative.
func ValidateDuration(field string, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// ValidateServings checks that a servings count is positive.
func ValidateServings(servings int) error {
	if servings < 1 {
		return fmt.Errorf("servings must be at least 1")
	}
	return nil
}
