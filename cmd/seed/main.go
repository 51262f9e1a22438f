// Command seed populates the database with demo data for development.
package main

import (
	"flag"
	"log"

	"studysmarter/internal/config"
	"studysmarter/internal/database"
	"studysmarter/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	rooms := flag.Int("rooms", 5, "number of study rooms to create")
	posts := flag.Int("posts", 40, "number of posts to create")
	clean := flag.Bool("clean", false, "delete existing rows before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *users,
		NumRooms:    *rooms,
		NumPosts:    *posts,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
