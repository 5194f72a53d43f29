package service

import (
	"fmt"

	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
)

// rewardTask is one row of the fixed task table: which user column guards
// the claim, how many coins it pays, and any precondition. Task identifiers
// coming from clients resolve through this table only; arbitrary field
// names are never accepted.
type rewardTask struct {
	Column       string
	Reward       int
	MinCartItems int64
	NeedsProfile bool
	Description  string
}

var rewardTasks = map[string]rewardTask{
	"taskInsta":        {Column: "task_insta", Reward: 20, Description: "Follow on Instagram"},
	"taskLinkedin":     {Column: "task_linkedin", Reward: 20, Description: "Follow on LinkedIn"},
	"taskX":            {Column: "task_x", Reward: 20, Description: "Follow on X"},
	"taskFacebook":     {Column: "task_facebook", Reward: 20, Description: "Follow on Facebook"},
	"taskCart":         {Column: "task_cart", Reward: 50, MinCartItems: 3, Description: "Add 3 events to cart"},
	"taskCart5":        {Column: "task_cart5", Reward: 75, MinCartItems: 5, Description: "Add 5 events to cart"},
	"taskCart10":       {Column: "task_cart10", Reward: 100, MinCartItems: 10, Description: "Add 10 events to cart"},
	"profileCompleted": {Column: "profile_completed", Reward: 30, NeedsProfile: true, Description: "Complete your profile"},
}

type RewardService struct {
	userRepo *repository.UserRepository
	cartRepo *repository.CartRepository
}

func NewRewardService(userRepo *repository.UserRepository, cartRepo *repository.CartRepository) *RewardService {
	return &RewardService{
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// Claim awards a one-time task reward. Preconditions are re-validated here;
// the exactly-once guarantee itself lives in the repository's conditional
// update, so concurrent duplicates resolve to one success and N-1
// ErrAlreadyClaimed.
func (s *RewardService) Claim(userEmail, task string) (*models.ClaimRewardResponse, error) {
	t, ok := rewardTasks[task]
	if !ok {
		return nil, fmt.Errorf("%w: unknown task %q", models.ErrInvalidInput, task)
	}

	if t.MinCartItems > 0 || t.NeedsProfile {
		user, err := s.userRepo.GetByEmail(userEmail)
		if err != nil {
			return nil, err
		}

		if t.MinCartItems > 0 {
			count, err := s.cartRepo.Count(user.ID)
			if err != nil {
				return nil, err
			}
			if count < t.MinCartItems {
				return nil, fmt.Errorf("%w: cart must have at least %d items", models.ErrInvalidInput, t.MinCartItems)
			}
		}

		if t.NeedsProfile && (user.College == "" || user.Phone == "") {
			return nil, fmt.Errorf("%w: complete college and phone first", models.ErrInvalidInput)
		}
	}

	user, err := s.userRepo.ClaimTask(userEmail, t.Column, t.Reward, t.Description)
	if err != nil {
		return nil, err
	}

	return &models.ClaimRewardResponse{
		Coins:   user.CACoins,
		Message: fmt.Sprintf("%s: +%d Nawabi Coins", t.Description, t.Reward),
	}, nil
}
