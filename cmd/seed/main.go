package main

import (
	"fmt"

	"reel-bites/internal/entity"
	"reel-bites/internal/repo/persistent"
	"reel-bites/pkg/config"
	"reel-bites/pkg/database"
	"reel-bites/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	partnerRepo := persistent.NewFoodPartnerRepository(db)
	foodRepo := persistent.NewFoodRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	testUsers := []entity.User{
		{FullName: "Alice Carter", Email: "alice@test.com", Phone: "+1-555-0201"},
		{FullName: "Bob Nguyen", Email: "bob@test.com", Phone: "+1-555-0202"},
		{FullName: "Charlie Diaz", Email: "charlie@test.com", Phone: "+1-555-0203"},
	}

	userIDs := make([]string, 0, len(testUsers))
	for i := range testUsers {
		user := testUsers[i]
		user.Password = string(hashed)

		if exists, _ := userRepo.EmailExists(user.Email); exists {
			existing, err := userRepo.GetByEmail(user.Email)
			if err != nil {
				return err
			}
			userIDs = append(userIDs, existing.ID)
			continue
		}

		if err := userRepo.Create(&user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}
		log.Info("Created user %s", user.Email)
		userIDs = append(userIDs, user.ID)
	}

	testPartners := []entity.FoodPartner{
		{Name: "Napoli Slice", ContactName: "Marco Rossi", Email: "napoli@test.com", Phone: "+1-555-0101", Address: "12 Oven Street"},
		{Name: "Seoul Street Bites", ContactName: "Jin Park", Email: "seoul@test.com", Phone: "+1-555-0102", Address: "48 Gochu Lane"},
	}

	partnerIDs := make([]string, 0, len(testPartners))
	for i := range testPartners {
		partner := testPartners[i]
		partner.Password = string(hashed)

		if exists, _ := partnerRepo.EmailExists(partner.Email); exists {
			existing, err := partnerRepo.GetByEmail(partner.Email)
			if err != nil {
				return err
			}
			partnerIDs = append(partnerIDs, existing.ID)
			continue
		}

		if err := partnerRepo.Create(&partner); err != nil {
			return fmt.Errorf("failed to create partner %s: %w", partner.Email, err)
		}
		log.Info("Created food partner %s", partner.Name)
		partnerIDs = append(partnerIDs, partner.ID)
	}

	sampleReels := []struct {
		name        string
		description string
		videoURL    string
		partnerIdx  int
	}{
		{"Margherita Pull", "Wood-fired margherita, cheese pull included", "https://cdn.example.com/reels/margherita.mp4", 0},
		{"Diavola Flames", "Spicy salami straight from the oven", "https://cdn.example.com/reels/diavola.mp4", 0},
		{"Tteokbokki Glow", "Rice cakes in glossy gochujang sauce", "https://cdn.example.com/reels/tteokbokki.mp4", 1},
		{"Corn Dog Crunch", "Mozzarella corn dog, extra crunchy", "https://cdn.example.com/reels/corndog.mp4", 1},
	}

	foodIDs := make([]string, 0, len(sampleReels))
	for _, reel := range sampleReels {
		item := &entity.FoodItem{
			Name:          reel.name,
			Description:   reel.description,
			VideoURL:      reel.videoURL,
			FoodPartnerID: partnerIDs[reel.partnerIdx],
		}
		if err := foodRepo.Create(item); err != nil {
			return fmt.Errorf("failed to create food item %s: %w", reel.name, err)
		}
		log.Info("Created food item %s", item.Name)
		foodIDs = append(foodIDs, item.ID)
	}

	// A few interactions so the feed is not empty of counts
	if len(userIDs) > 0 && len(foodIDs) > 0 {
		if _, err := interactionRepo.ToggleLike(userIDs[0], foodIDs[0]); err != nil {
			return err
		}
		if _, err := interactionRepo.ToggleSave(userIDs[0], foodIDs[0]); err != nil {
			return err
		}
		if _, err := interactionRepo.ToggleLike(userIDs[1], foodIDs[0]); err != nil {
			return err
		}
		if _, err := interactionRepo.ToggleLike(userIDs[1], foodIDs[2]); err != nil {
			return err
		}
	}

	return nil
}
