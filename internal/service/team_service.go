package service

import (
	"errors"
	"fmt"

	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
	"github.com/nawabifest/backend/pkg/utils"
	"gorm.io/gorm"
)

const teamCodeLength = 6

type TeamService struct {
	teamRepo  *repository.TeamRepository
	eventRepo *repository.EventRepository
	userRepo  *repository.UserRepository
}

func NewTeamService(teamRepo *repository.TeamRepository, eventRepo *repository.EventRepository, userRepo *repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// CreateTeam moves the (user, event) pair from NO_TEAM to LEADER. The state
// is terminal: there is no leave operation, only admin intervention.
func (s *TeamService) CreateTeam(userID uint, req models.CreateTeamRequest) (*models.TeamResponse, error) {
	event, err := s.eventRepo.GetBySlug(req.EventSlug)
	if err != nil {
		return nil, err
	}
	if !event.IsTeam {
		return nil, fmt.Errorf("%w: %s is not a team event", models.ErrInvalidInput, event.Slug)
	}

	if _, err := s.teamRepo.GetUserTeamForEvent(userID, event.Slug); err == nil {
		return nil, models.ErrAlreadyInTeam
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	code, err := generateUniqueCode(func() string {
		return utils.GenerateNumericCode(teamCodeLength)
	}, s.teamRepo.CodeExists)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:      req.TeamName,
		Code:      code,
		EventSlug: event.Slug,
		LeaderID:  userID,
	}
	if err := s.teamRepo.Create(team); err != nil {
		// The membership unique index catches a concurrent create for the
		// same (user, event).
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrAlreadyInTeam
		}
		return nil, err
	}

	return s.buildTeamResponse(team, event.MaxSize)
}

// JoinTeam moves the (user, event) pair from NO_TEAM to MEMBER via a join
// code. The capacity check is a conditional insert in the repository, so a
// near-full team cannot be oversubscribed by simultaneous joins.
func (s *TeamService) JoinTeam(userID uint, code string) (*models.TeamResponse, error) {
	team, err := s.teamRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetUserTeamForEvent(userID, team.EventSlug); err == nil {
		return nil, models.ErrAlreadyInTeam
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	event, err := s.eventRepo.GetBySlug(team.EventSlug)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.AddMember(team, userID, event.MaxSize); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrAlreadyInTeam
		}
		return nil, err
	}

	return s.buildTeamResponse(team, event.MaxSize)
}

func (s *TeamService) GetMyTeam(userID uint, eventSlug string) (*models.TeamResponse, error) {
	team, err := s.teamRepo.GetUserTeamForEvent(userID, eventSlug)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetBySlug(eventSlug)
	if err != nil {
		return nil, err
	}

	return s.buildTeamResponse(team, event.MaxSize)
}

func (s *TeamService) buildTeamResponse(team *models.Team, maxSize int) (*models.TeamResponse, error) {
	fresh, err := s.teamRepo.GetByID(team.ID)
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(fresh.Members))
	for _, m := range fresh.Members {
		user, err := s.userRepo.GetByID(m.UserID)
		if err != nil {
			return nil, err
		}
		members = append(members, user.FullName)
	}

	return &models.TeamResponse{
		ID:        fresh.ID,
		Name:      fresh.Name,
		Code:      fresh.Code,
		EventSlug: fresh.EventSlug,
		LeaderID:  fresh.LeaderID,
		Members:   members,
		MaxSize:   maxSize,
	}, nil
}
