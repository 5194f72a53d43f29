package service

import (
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
)

type ReferralService struct {
	userRepo *repository.UserRepository
}

func NewReferralService(userRepo *repository.UserRepository) *ReferralService {
	return &ReferralService{userRepo: userRepo}
}

// Leaderboard is computed fresh per request; no caching. Ordering is
// deterministic (referral count DESC, then user id).
func (s *ReferralService) Leaderboard() ([]models.LeaderboardEntry, error) {
	return s.userRepo.Leaderboard()
}
