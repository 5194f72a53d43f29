package service

import (
	"errors"

	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
	"github.com/nawabifest/backend/pkg/bcrypt"
)

type UserService struct {
	userRepo *repository.UserRepository
	coinRepo *repository.CoinHistoryRepository
}

func NewUserService(userRepo *repository.UserRepository, coinRepo *repository.CoinHistoryRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		coinRepo: coinRepo,
	}
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.GetByEmail(email)
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = req.FullName
	user.College = req.College
	user.Phone = req.Phone

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ChangePassword(userID uint, req models.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.ComparePassword(user.Password, req.CurrentPassword); err != nil {
		return errors.New("current password is incorrect")
	}

	hashedPassword, err := bcrypt.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(user.ID, hashedPassword)
}

// CoinBalance returns the live balance plus the ledger it must equal.
func (s *UserService) CoinBalance(userID uint) (*models.CoinBalanceResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	history, err := s.coinRepo.GetUserHistory(userID)
	if err != nil {
		return nil, err
	}

	return &models.CoinBalanceResponse{
		Coins:   user.CACoins,
		History: history,
	}, nil
}
