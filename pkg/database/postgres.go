package database

import (
	"log"
	"os"

	"github.com/nawabifest/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// RunMigrations applies the schema and seeds the static fest program and
// pass tiers. Seeding is idempotent: existing rows are left alone.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.CoinHistory{},
		&models.FestEvent{},
		&models.Team{},
		&models.TeamMember{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PassTier{},
	)
	if err != nil {
		return err
	}

	if err := seedEvents(db); err != nil {
		return err
	}
	return seedPassTiers(db)
}

func seedEvents(db *gorm.DB) error {
	events := []models.FestEvent{
		{Slug: "battle-of-bands", Name: "Battle of Bands", Category: "music", Venue: "Main Stage", Day: 1, IsTeam: true, MaxSize: 8,
			Description: "Inter-college band face-off, two rounds, original composition mandatory in the final."},
		{Slug: "solo-singing", Name: "Solo Singing", Category: "music", Venue: "Auditorium", Day: 1,
			Description: "One song, any language, three minutes on the clock."},
		{Slug: "group-dance", Name: "Group Dance", Category: "dance", Venue: "Main Stage", Day: 2, IsTeam: true, MaxSize: 12,
			Description: "Crew showcase, any style, 6 to 12 dancers."},
		{Slug: "street-dance-battle", Name: "Street Dance Battle", Category: "dance", Venue: "Quad", Day: 2, IsTeam: true, MaxSize: 4,
			Description: "3v3 plus one sub, knockout bracket, DJ picks the tracks."},
		{Slug: "fashion-walk", Name: "Fashion Walk", Category: "fashion", Venue: "Main Stage", Day: 3, IsTeam: true, MaxSize: 14,
			Description: "Theme walk with a two-minute concept brief per team."},
		{Slug: "nukkad-natak", Name: "Nukkad Natak", Category: "drama", Venue: "Quad", Day: 1, IsTeam: true, MaxSize: 15,
			Description: "Street play on a social theme, 15 minutes, minimal props."},
		{Slug: "stand-up", Name: "Stand-up Night", Category: "drama", Venue: "Amphitheatre", Day: 3,
			Description: "Five-minute open slot, clean set required for the first round."},
		{Slug: "quiz", Name: "General Quiz", Category: "literary", Venue: "Seminar Hall", Day: 1, IsTeam: true, MaxSize: 3,
			Description: "Written prelims, six teams on stage for the final."},
		{Slug: "debate", Name: "Parliamentary Debate", Category: "literary", Venue: "Seminar Hall", Day: 2, IsTeam: true, MaxSize: 2,
			Description: "Asian parliamentary format, motions released an hour before."},
		{Slug: "photography", Name: "Photo Story", Category: "arts", Venue: "Online", Day: 2,
			Description: "Five-frame photo story shot during the fest."},
		{Slug: "treasure-hunt", Name: "Treasure Hunt", Category: "fun", Venue: "Campus", Day: 3, IsTeam: true, MaxSize: 5,
			Description: "Campus-wide clue chain, first three teams place."},
		{Slug: "gaming-valorant", Name: "Valorant LAN", Category: "gaming", Venue: "Lab Block", Day: 2, IsTeam: true, MaxSize: 5,
			Description: "5v5 single elimination, bring your own peripherals."},
	}

	for _, event := range events {
		var count int64
		db.Model(&models.FestEvent{}).Where("slug = ?", event.Slug).Count(&count)
		if count == 0 {
			if err := db.Create(&event).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedPassTiers(db *gorm.DB) error {
	tiers := []models.PassTier{
		{
			Code:               "basic",
			Name:               "Basic Fest Pass",
			Description:        "Entry to all pro-nights and competition venues for all three days.",
			Price:              499,
			AccommodationPrice: 0,
			IsActive:           true,
		},
		{
			Code:               "premium",
			Name:               "Premium Fest Pass",
			Description:        "Basic perks plus front-zone pro-night access, fest merch kit and optional accommodation.",
			Price:              999,
			AccommodationPrice: 600,
			IsActive:           true,
		},
	}

	for _, tier := range tiers {
		var count int64
		db.Model(&models.PassTier{}).Where("code = ?", tier.Code).Count(&count)
		if count == 0 {
			if err := db.Create(&tier).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
