// Command main runs the database seeder for Ladle.
package main

import (
	"flag"
	"log"

	"ladle/internal/config"
	"ladle/internal/database"
	"ladle/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numRecipes := flag.Int("recipes", 100, "Number of recipes to create")
	numRatings := flag.Int("ratings", 400, "Number of ratings to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		NumUsers:    *numUsers,
		NumRecipes:  *numRecipes,
		NumRatings:  *numRatings,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 All seeded users have the password: %s", seed.SeedPassword)
}
