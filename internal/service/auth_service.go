package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
	"github.com/nawabifest/backend/pkg/bcrypt"
	"github.com/nawabifest/backend/pkg/email"
	jwtPkg "github.com/nawabifest/backend/pkg/jwt"
	"github.com/nawabifest/backend/pkg/utils"
)

const (
	TokenExpiryLogin       = 7 * 24 * time.Hour
	TokenExpiryReset       = 15 * time.Minute
	TokenExpiryEmailVerify = 24 * time.Hour

	// Coins credited to an ambassador when a signup uses their code.
	ReferralBonus = 100

	referralCodeLength = 8
)

type AuthService struct {
	userRepo     *repository.UserRepository
	emailService *email.EmailService
	jwtSecret    []byte
	jwtIssuer    string
}

func NewAuthService(userRepo *repository.UserRepository, emailService *email.EmailService) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		emailService: emailService,
		jwtSecret:    []byte(os.Getenv("JWT_SECRET")),
		jwtIssuer:    os.Getenv("JWT_ISSUER"),
	}
}

// Register creates the account, issues the user their own referral code and,
// when a valid ambassador code was supplied, credits the referrer inside the
// same transaction as the insert.
func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	ownCode, err := s.generateReferralCode()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     hashedPassword,
		College:      req.College,
		Phone:        req.Phone,
		Role:         models.RoleAttendee,
		ReferralCode: &ownCode,
		IsVerified:   false,
	}
	if req.ReferralCode != "" {
		code := req.ReferralCode
		user.ReferredBy = &code
	}

	if err := s.userRepo.CreateWithReferral(user, ReferralBonus); err != nil {
		return nil, err
	}

	verificationToken, err := s.generateVerificationToken(user.Email)
	if err != nil {
		return nil, err
	}

	go s.emailService.SendVerificationEmail(user.Email, user.FullName, verificationToken)
	go s.emailService.SendWelcomeEmail(user.Email, user.FullName)

	token, err := jwtPkg.GenerateToken(user.Email, user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %v", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) VerifyEmail(token string) error {
	claims, err := jwtPkg.ValidateToken(token)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	// Only tokens minted for verification may flip the flag; a login JWT
	// also carries an email claim.
	if tokenType, _ := claims["type"].(string); tokenType != "email_verification" {
		return errors.New("invalid token claims")
	}

	userEmail, ok := claims["email"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}

	user, err := s.userRepo.GetByEmail(userEmail)
	if err != nil {
		return errors.New("user not found")
	}

	if user.IsVerified {
		return errors.New("email already verified")
	}

	user.IsVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return errors.New("failed to verify email")
	}

	return nil
}

func (s *AuthService) ForgotPassword(userEmail string) error {
	user, err := s.userRepo.GetByEmail(userEmail)
	if err != nil {
		return nil // don't reveal whether the email exists
	}

	claims := jwt.MapClaims{
		"sub": user.Email,
		"exp": time.Now().Add(TokenExpiryReset).Unix(),
		"iat": time.Now().Unix(),
		"iss": s.jwtIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	resetToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return err
	}

	return s.emailService.SendPasswordResetEmail(user.Email, resetToken)
}

func (s *AuthService) ResetPassword(token string, newPassword string) error {
	claims, err := jwtPkg.ValidateToken(token)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	userEmail, ok := claims["sub"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}

	user, err := s.userRepo.GetByEmail(userEmail)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(user.ID, hashedPassword)
}

// generateReferralCode retries until the code is unused. Collisions on an
// 8-char alphanumeric space are rare; the loop is a guard, not a hot path.
func (s *AuthService) generateReferralCode() (string, error) {
	return generateUniqueCode(func() string {
		return utils.GenerateRandomString(referralCodeLength)
	}, s.userRepo.ReferralCodeExists)
}

func (s *AuthService) generateVerificationToken(userEmail string) (string, error) {
	claims := jwt.MapClaims{
		"email": userEmail,
		"exp":   time.Now().Add(TokenExpiryEmailVerify).Unix(),
		"iat":   time.Now().Unix(),
		"iss":   s.jwtIssuer,
		"type":  "email_verification",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
