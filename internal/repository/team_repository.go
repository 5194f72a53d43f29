package repository

import (
	"errors"
	"time"

	"github.com/nawabifest/backend/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts the team and its leader's membership row together. The
// unique index on (user_id, event_slug) backstops the single-team-per-event
// rule against concurrent creates.
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Create(&models.TeamMember{
			TeamID:    team.ID,
			UserID:    team.LeaderID,
			EventSlug: team.EventSlug,
		}).Error
	})
}

func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) GetByCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Where("code = ?", code).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// GetUserTeamForEvent returns the team the user leads or belongs to for an
// event slug, or ErrNotFound.
func (r *TeamRepository) GetUserTeamForEvent(userID uint, eventSlug string) (*models.Team, error) {
	var member models.TeamMember
	err := r.db.Where("user_id = ? AND event_slug = ?", userID, eventSlug).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(member.TeamID)
}

// AddMember inserts a membership row only while the team is below maxSize.
// The team row is locked first so concurrent joins serialize on it; without
// the lock, two INSERT ... SELECT statements against a team at maxSize-1
// would each see the stale count under READ COMMITTED and both land. The
// capacity check then rides inside the INSERT itself.
func (r *TeamRepository) AddMember(team *models.Team, userID uint, maxSize int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		lock := tx.Exec(`UPDATE teams SET updated_at = updated_at WHERE id = ?`, team.ID)
		if lock.Error != nil {
			return lock.Error
		}
		if lock.RowsAffected == 0 {
			return models.ErrNotFound
		}

		res := tx.Exec(
			`INSERT INTO team_members (team_id, user_id, event_slug, created_at)
			 SELECT ?, ?, ?, ?
			 WHERE (SELECT COUNT(*) FROM team_members WHERE team_id = ?) < ?`,
			team.ID, userID, team.EventSlug, time.Now(), team.ID, maxSize,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrTeamFull
		}
		return nil
	})
}

func (r *TeamRepository) MemberCount(teamID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}
