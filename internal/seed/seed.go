// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"ladle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumRecipes  int
	NumRatings  int
	ShouldClean bool
}

// SeedPassword is the password every seeded user shares.
const SeedPassword = "password123"

var difficulties = []string{"easy", "medium", "hard"}

var tagPool = []string{
	"vegetarian", "vegan", "gluten-free", "dairy-free", "quick",
	"breakfast", "lunch", "dinner", "dessert", "snack",
	"italian", "mexican", "thai", "indian", "japanese",
	"comfort-food", "healthy", "grilling", "baking", "one-pot",
}

// Seeder populates the database with demo data.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows. Ratings go first since they
// reference recipes and users.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"ratings", "recipes", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds users, recipes, and ratings according to opts.
func (s *Seeder) Run(opts Options) error {
	log.Printf("🌱 Seeding %d users, %d recipes, %d ratings...",
		opts.NumUsers, opts.NumRecipes, opts.NumRatings)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	recipes, err := s.CreateRecipes(users, opts.NumRecipes)
	if err != nil {
		return fmt.Errorf("failed to create recipes: %w", err)
	}
	log.Printf("✓ %d recipes created", len(recipes))

	n, err := s.CreateRatings(users, recipes, opts.NumRatings)
	if err != nil {
		return fmt.Errorf("failed to create ratings: %w", err)
	}
	log.Printf("✓ %d ratings created", n)

	return nil
}

// CreateUsers inserts count users, all sharing SeedPassword.
func (s *Seeder) CreateUsers(count int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	seen := map[string]bool{}
	for i := 0; i < count; i++ {
		username := strings.ToLower(gofakeit.Username())
		if seen[username] {
			username = fmt.Sprintf("%s%d", username, i)
		}
		seen[username] = true

		user := &models.User{
			Username:     username,
			PasswordHash: string(hash),
			Role:         models.RoleUser,
			CreatedAt:    s.pastTime(180),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateRecipes inserts count recipes owned by random seeded users.
func (s *Seeder) CreateRecipes(users []*models.User, count int) ([]*models.Recipe, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to assign recipes to")
	}

	recipes := make([]*models.Recipe, 0, count)
	for i := 0; i < count; i++ {
		owner := users[s.rand.Intn(len(users))]
		recipe := s.BuildRecipe(owner)
		if err := s.db.Create(recipe).Error; err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// BuildRecipe constructs a realistic recipe for owner without
// persisting it.
func (s *Seeder) BuildRecipe(owner *models.User) *models.Recipe {
	dish := gofakeit.Dinner()
	ingredients := make([]string, 0, 8)
	for i := 0; i < 4+s.rand.Intn(5); i++ {
		ingredients = append(ingredients, gofakeit.Fruit())
	}
	steps := make([]string, 0, 6)
	for i := 0; i < 3+s.rand.Intn(4); i++ {
		steps = append(steps, gofakeit.Sentence(8))
	}

	return &models.Recipe{
		UserID:      owner.ID,
		Title:       dish,
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Ingredients: strings.Join(ingredients, "\n"),
		Steps:       strings.Join(steps, "\n"),
		Tags:        strings.Join(s.pickTags(), ","),
		Difficulty:  difficulties[s.rand.Intn(len(difficulties))],
		PrepTime:    5 + s.rand.Intn(40),
		CookTime:    10 + s.rand.Intn(90),
		Servings:    1 + s.rand.Intn(8),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		CreatedAt:   s.pastTime(90),
	}
}

// CreateRatings appends count random ratings across the given recipes.
func (s *Seeder) CreateRatings(users []*models.User, recipes []*models.Recipe, count int) (int, error) {
	if len(users) == 0 || len(recipes) == 0 {
		return 0, nil
	}

	created := 0
	for i := 0; i < count; i++ {
		rating := &models.Rating{
			UserID:   users[s.rand.Intn(len(users))].ID,
			RecipeID: recipes[s.rand.Intn(len(recipes))].ID,
			Rating:   models.MinRating + s.rand.Intn(models.MaxRating-models.MinRating+1),
		}
		if err := s.db.Create(rating).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) pickTags() []string {
	n := 1 + s.rand.Intn(3)
	tags := make([]string, 0, n)
	seen := map[string]bool{}
	for len(tags) < n {
		tag := tagPool[s.rand.Intn(len(tagPool))]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// pastTime returns a timestamp spread over the last maxDays days.
func (s *Seeder) pastTime(maxDays int) time.Time {
	daysBack := s.rand.Intn(maxDays)
	hoursBack := s.rand.Intn(24)
	minsBack := s.rand.Intn(60)
	return time.Now().UTC().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}
