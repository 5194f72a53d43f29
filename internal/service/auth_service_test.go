package service

import (
	"testing"

	"github.com/nawabifest/backend/internal/repository"
	"github.com/nawabifest/backend/pkg/email"
	jwtPkg "github.com/nawabifest/backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(userRepo, email.NewEmailService(zap.NewNop())), userRepo, db
}

func TestVerifyEmail(t *testing.T) {
	svc, userRepo, db := newAuthService(t)
	user := seedUser(t, db, "verify@test.com", nil)

	token, err := svc.generateVerificationToken(user.Email)
	if err != nil {
		t.Fatalf("mint verification token: %v", err)
	}

	if err := svc.VerifyEmail(token); err != nil {
		t.Fatalf("verify with verification token: %v", err)
	}

	fresh, err := userRepo.GetByEmail(user.Email)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !fresh.IsVerified {
		t.Fatal("user not marked verified")
	}

	if err := svc.VerifyEmail(token); err == nil {
		t.Fatal("second verification succeeded, want already-verified error")
	}
}

func TestVerifyEmailRejectsLoginToken(t *testing.T) {
	svc, userRepo, db := newAuthService(t)
	user := seedUser(t, db, "sneaky@test.com", nil)

	// A login JWT carries an email claim too, but its type claim does not
	// say email_verification.
	loginToken, err := jwtPkg.GenerateToken(user.Email, user.ID, "attendee")
	if err != nil {
		t.Fatalf("mint login token: %v", err)
	}

	if err := svc.VerifyEmail(loginToken); err == nil {
		t.Fatal("login token accepted as verification token")
	}

	fresh, err := userRepo.GetByEmail(user.Email)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.IsVerified {
		t.Fatal("login token flipped the verified flag")
	}
}
