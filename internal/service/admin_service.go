package service

import (
	"fmt"

	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
	"go.uber.org/zap"
)

// AdminUpdateUserRequest carries the only user fields the back-office may
// touch. Coin balances are excluded on purpose: they move exclusively
// through ledger-appending grants, never direct writes.
type AdminUpdateUserRequest struct {
	FullName *string          `json:"full_name"`
	College  *string          `json:"college"`
	Phone    *string          `json:"phone"`
	Role     *models.UserRole `json:"role"`
}

type AdminGrantCoinsRequest struct {
	Amount int    `json:"amount" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

type AdminService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewAdminService(userRepo *repository.UserRepository, logger *zap.Logger) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		logger:   logger.Named("admin"),
	}
}

func (s *AdminService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *AdminService) UpdateUser(userID uint, req AdminUpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.College != nil {
		user.College = *req.College
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		switch *req.Role {
		case models.RoleAttendee, models.RoleAmbassador, models.RoleAdmin:
			user.Role = *req.Role
		default:
			return nil, fmt.Errorf("%w: unknown role %q", models.ErrInvalidInput, *req.Role)
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", zap.Uint("user_id", userID))
	return user, nil
}

func (s *AdminService) GrantCoins(userID uint, req AdminGrantCoinsRequest) error {
	if err := s.userRepo.GrantCoins(userID, req.Amount, req.Reason); err != nil {
		return err
	}
	s.logger.Info("coins granted",
		zap.Uint("user_id", userID),
		zap.Int("amount", req.Amount),
		zap.String("reason", req.Reason))
	return nil
}

func (s *AdminService) DeleteUser(userID uint) error {
	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Uint("user_id", userID))
	return nil
}
