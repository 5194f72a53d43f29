package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
	"github.com/nawabifest/backend/pkg/database"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database, applies the schema and the
// seed data (fest program, pass tiers), exactly as boot does.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, mutate func(*models.User)) *models.User {
	t.Helper()

	user := &models.User{
		FullName: "Test User",
		Email:    email,
		Password: "hashed",
		College:  "Test College",
		Phone:    "9999999999",
		Role:     models.RoleAttendee,
	}
	if mutate != nil {
		mutate(user)
	}
	if err := repository.NewUserRepository(db).Create(user); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func fillCart(t *testing.T, db *gorm.DB, userID uint, slugs ...string) {
	t.Helper()

	cartRepo := repository.NewCartRepository(db)
	for _, slug := range slugs {
		if err := cartRepo.Add(&models.CartItem{UserID: userID, EventSlug: slug}); err != nil {
			t.Fatalf("add %s to cart: %v", slug, err)
		}
	}
}
