package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nawabifest/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema. A
// single connection keeps every test hitting the same database.
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

	err = db.AutoMigrate(
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
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func createUser(t *testing.T, repo *UserRepository, email string, mutate func(*models.User)) *models.User {
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
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

// ledgerSum recomputes a balance from the append-only ledger.
func ledgerSum(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()

	repo := NewCoinHistoryRepository(db)
	total, err := repo.SumForUser(userID)
	if err != nil {
		t.Fatalf("sum ledger for user %d: %v", userID, err)
	}
	return total
}
