package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/repository"
	"gorm.io/gorm"
)

func newTeamService(t *testing.T) (*TeamService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewTeamService(
		repository.NewTeamRepository(db),
		repository.NewEventRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func TestCreateTeam(t *testing.T) {
	svc, db := newTeamService(t)
	leader := seedUser(t, db, "leader@test.com", nil)

	team, err := svc.CreateTeam(leader.ID, models.CreateTeamRequest{
		TeamName:  "Quiz Wizards",
		EventSlug: "quiz",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if len(team.Code) != teamCodeLength {
		t.Fatalf("join code %q, want %d digits", team.Code, teamCodeLength)
	}
	if len(team.Members) != 1 {
		t.Fatalf("members = %v, want the leader alone", team.Members)
	}
	if team.MaxSize != 3 {
		t.Fatalf("max size = %d, want 3 for quiz", team.MaxSize)
	}

	// One team per (user, event), even as leader.
	if _, err := svc.CreateTeam(leader.ID, models.CreateTeamRequest{
		TeamName:  "Second Try",
		EventSlug: "quiz",
	}); !errors.Is(err, models.ErrAlreadyInTeam) {
		t.Fatalf("second create = %v, want ErrAlreadyInTeam", err)
	}

	// A different event is a separate pairing.
	if _, err := svc.CreateTeam(leader.ID, models.CreateTeamRequest{
		TeamName:  "Clue Chasers",
		EventSlug: "treasure-hunt",
	}); err != nil {
		t.Fatalf("create for second event: %v", err)
	}
}

func TestCreateTeamRejectsSoloEvents(t *testing.T) {
	svc, db := newTeamService(t)
	user := seedUser(t, db, "soloist@test.com", nil)

	if _, err := svc.CreateTeam(user.ID, models.CreateTeamRequest{
		TeamName:  "Not A Team",
		EventSlug: "solo-singing",
	}); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("create for solo event = %v, want ErrInvalidInput", err)
	}
}

func TestCreateTeamUnknownEvent(t *testing.T) {
	svc, db := newTeamService(t)
	user := seedUser(t, db, "lost@test.com", nil)

	if _, err := svc.CreateTeam(user.ID, models.CreateTeamRequest{
		TeamName:  "Nowhere",
		EventSlug: "kabaddi",
	}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("create for unknown event = %v, want ErrNotFound", err)
	}
}

func TestJoinTeam(t *testing.T) {
	svc, db := newTeamService(t)
	leader := seedUser(t, db, "join-leader@test.com", nil)

	// quiz caps at 3 members including the leader.
	team, err := svc.CreateTeam(leader.ID, models.CreateTeamRequest{
		TeamName:  "Capacity Check",
		EventSlug: "quiz",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	for i := 0; i < 2; i++ {
		member := seedUser(t, db, fmt.Sprintf("member%d@test.com", i), nil)
		joined, err := svc.JoinTeam(member.ID, team.Code)
		if err != nil {
			t.Fatalf("join %d: %v", i, err)
		}
		if len(joined.Members) != i+2 {
			t.Fatalf("members after join %d = %d, want %d", i, len(joined.Members), i+2)
		}
	}

	straggler := seedUser(t, db, "late@test.com", nil)
	if _, err := svc.JoinTeam(straggler.ID, team.Code); !errors.Is(err, models.ErrTeamFull) {
		t.Fatalf("join at capacity = %v, want ErrTeamFull", err)
	}
}

func TestJoinTeamTwice(t *testing.T) {
	svc, db := newTeamService(t)
	leader := seedUser(t, db, "dup-leader@test.com", nil)
	member := seedUser(t, db, "dup-member@test.com", nil)

	team, err := svc.CreateTeam(leader.ID, models.CreateTeamRequest{
		TeamName:  "Once Only",
		EventSlug: "treasure-hunt",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if _, err := svc.JoinTeam(member.ID, team.Code); err != nil {
		t.Fatalf("first join: %v", err)
	}
	if _, err := svc.JoinTeam(member.ID, team.Code); !errors.Is(err, models.ErrAlreadyInTeam) {
		t.Fatalf("second join = %v, want ErrAlreadyInTeam", err)
	}
}

func TestJoinTeamInvalidCode(t *testing.T) {
	svc, db := newTeamService(t)
	user := seedUser(t, db, "typo@test.com", nil)

	if _, err := svc.JoinTeam(user.ID, "000000"); !errors.Is(err, models.ErrInvalidCode) {
		t.Fatalf("join with unknown code = %v, want ErrInvalidCode", err)
	}
}

func TestGetMyTeam(t *testing.T) {
	svc, db := newTeamService(t)
	leader := seedUser(t, db, "mine-leader@test.com", nil)

	created, err := svc.CreateTeam(leader.ID, models.CreateTeamRequest{
		TeamName:  "Findable",
		EventSlug: "quiz",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	found, err := svc.GetMyTeam(leader.ID, "quiz")
	if err != nil {
		t.Fatalf("get my team: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("resolved team %d, want %d", found.ID, created.ID)
	}

	if _, err := svc.GetMyTeam(leader.ID, "treasure-hunt"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("teamless event lookup = %v, want ErrNotFound", err)
	}
}
