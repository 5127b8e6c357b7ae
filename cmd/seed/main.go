// Command main runs the database seeder for motorpool.
package main

import (
	"flag"
	"log"

	"motorpool/internal/config"
	"motorpool/internal/database"
	"motorpool/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numVehicles := flag.Int("vehicles", 18, "Number of vehicles to create")
	numRequests := flag.Int("requests", 60, "Number of rental requests to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d vehicles, %d requests, clean=%v\n",
		*numUsers, *numVehicles, *numRequests, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("User seeding failed: %v", err)
	}
	vehicles, err := s.SeedFleet(*numVehicles)
	if err != nil {
		log.Fatalf("Fleet seeding failed: %v", err)
	}
	if _, err := s.SeedRequests(users, vehicles, *numRequests); err != nil {
		log.Fatalf("Request seeding failed: %v", err)
	}

	log.Println("All done. The fleet database is populated with demo data.")
	log.Println("Admin account: admin@motorpool.local")
}
