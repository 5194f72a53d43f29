package repository

import (
	"errors"

	"github.com/nawabifest/backend/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithReferral inserts the new user and, when their referral code
// resolves to an ambassador, credits that ambassador the signup bonus and
// appends the ledger row, all in one transaction, so a half-applied
// referral cannot occur. An unknown code is cleared and the signup still
// succeeds.
func (r *UserRepository) CreateWithReferral(user *models.User, bonus int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if user.ReferredBy == nil || *user.ReferredBy == "" {
			return nil
		}

		var referrer models.User
		err := tx.Where("referral_code = ? AND role = ?", *user.ReferredBy, models.RoleAmbassador).
			First(&referrer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user.ReferredBy = nil
			return tx.Model(user).Update("referred_by", nil).Error
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", referrer.ID).
			Update("ca_coins", gorm.Expr("ca_coins + ?", bonus)).Error; err != nil {
			return err
		}

		return tx.Create(&models.CoinHistory{
			UserID: referrer.ID,
			Amount: bonus,
			Reason: "Referral signup: " + user.Email,
		}).Error
	})
}

// ClaimTask awards a one-time task reward. The flag flip and the balance
// increment are a single conditional UPDATE, so two concurrent claims for
// the same (user, task) resolve to exactly one success. The ledger row is
// appended in the same transaction.
func (r *UserRepository) ClaimTask(email, column string, amount int, reason string) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("email = ? AND "+column+" = ?", email, false).
			Updates(map[string]interface{}{
				column:     true,
				"ca_coins": gorm.Expr("ca_coins + ?", amount),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return models.ErrNotFound
			}
			return models.ErrAlreadyClaimed
		}

		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			return err
		}

		return tx.Create(&models.CoinHistory{
			UserID: user.ID,
			Amount: amount,
			Reason: reason,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GrantCoins appends a manual ledger adjustment (admin grants). Balance and
// ledger move together, like every other coin mutation.
func (r *UserRepository) GrantCoins(userID uint, amount int, reason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("ca_coins", gorm.Expr("ca_coins + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return tx.Create(&models.CoinHistory{
			UserID: userID,
			Amount: amount,
			Reason: reason,
		}).Error
	})
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ReferralCodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("referral_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) UpdatePassword(userID uint, hashedPassword string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password", hashedPassword).Error
}

func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

// Leaderboard counts, per ambassador with a referral code, the users whose
// referred_by matches that code. Ordering is count DESC then id ASC, so the
// result is deterministic per run.
func (r *UserRepository) Leaderboard() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := r.db.Model(&models.User{}).
		Select("users.full_name AS name, users.college AS college, users.referral_code AS referral_code, COUNT(referred.id) AS referrals").
		Joins("LEFT JOIN users referred ON referred.referred_by = users.referral_code").
		Where("users.role = ? AND users.referral_code IS NOT NULL", models.RoleAmbassador).
		Group("users.id").
		Order("referrals DESC, users.id ASC").
		Scan(&entries).Error
	return entries, err
}

// Delete removes a user and everything hanging off them. The cascade is a
// single transaction rather than a sequence of best-effort deletes.
func (r *UserRepository) Delete(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("user_id = ?", userID).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CoinHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}
