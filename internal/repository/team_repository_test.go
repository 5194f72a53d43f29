package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/nawabifest/backend/internal/models"
)

func TestCreateTeamAddsLeaderMembership(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	teamRepo := NewTeamRepository(db)

	leader := createUser(t, userRepo, "leader@test.com", nil)

	team := &models.Team{
		Name:      "Quiz Wizards",
		Code:      "123456",
		EventSlug: "quiz",
		LeaderID:  leader.ID,
	}
	if err := teamRepo.Create(team); err != nil {
		t.Fatalf("create team: %v", err)
	}

	count, err := teamRepo.MemberCount(team.ID)
	if err != nil {
		t.Fatalf("member count: %v", err)
	}
	if count != 1 {
		t.Fatalf("member count = %d, want the leader alone", count)
	}

	found, err := teamRepo.GetUserTeamForEvent(leader.ID, "quiz")
	if err != nil {
		t.Fatalf("leader team lookup: %v", err)
	}
	if found.ID != team.ID {
		t.Fatalf("leader resolved to team %d, want %d", found.ID, team.ID)
	}
}

func TestAddMemberRespectsCapacity(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	teamRepo := NewTeamRepository(db)

	const maxSize = 3

	leader := createUser(t, userRepo, "cap-leader@test.com", nil)
	team := &models.Team{
		Name:      "Full House",
		Code:      "654321",
		EventSlug: "quiz",
		LeaderID:  leader.ID,
	}
	if err := teamRepo.Create(team); err != nil {
		t.Fatalf("create team: %v", err)
	}

	for i := 0; i < maxSize-1; i++ {
		member := createUser(t, userRepo, fmt.Sprintf("member%d@test.com", i), nil)
		if err := teamRepo.AddMember(team, member.ID, maxSize); err != nil {
			t.Fatalf("add member %d: %v", i, err)
		}
	}

	straggler := createUser(t, userRepo, "late@test.com", nil)
	if err := teamRepo.AddMember(team, straggler.ID, maxSize); !errors.Is(err, models.ErrTeamFull) {
		t.Fatalf("join at capacity = %v, want ErrTeamFull", err)
	}

	count, err := teamRepo.MemberCount(team.ID)
	if err != nil {
		t.Fatalf("member count: %v", err)
	}
	if count != maxSize {
		t.Fatalf("member count after rejected join = %d, want %d", count, maxSize)
	}
}

func TestConcurrentJoinsRespectCapacity(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	teamRepo := NewTeamRepository(db)

	const maxSize = 2

	leader := createUser(t, userRepo, "race-leader@test.com", nil)
	team := &models.Team{
		Name:      "One Seat Left",
		Code:      "111222",
		EventSlug: "debate",
		LeaderID:  leader.ID,
	}
	if err := teamRepo.Create(team); err != nil {
		t.Fatalf("create team: %v", err)
	}

	const joiners = 6
	errs := make([]error, joiners)
	members := make([]*models.User, joiners)
	for i := range members {
		members[i] = createUser(t, userRepo, fmt.Sprintf("racer%d@test.com", i), nil)
	}

	var wg sync.WaitGroup
	wg.Add(joiners)
	for i := 0; i < joiners; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = teamRepo.AddMember(team, members[i].ID, maxSize)
		}(i)
	}
	wg.Wait()

	successes, full := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, models.ErrTeamFull):
			full++
		default:
			t.Fatalf("unexpected join error: %v", err)
		}
	}
	if successes != 1 || full != joiners-1 {
		t.Fatalf("got %d successes and %d rejections, want 1 and %d", successes, full, joiners-1)
	}

	count, err := teamRepo.MemberCount(team.ID)
	if err != nil {
		t.Fatalf("member count: %v", err)
	}
	if count != maxSize {
		t.Fatalf("member count after racing joins = %d, want %d", count, maxSize)
	}
}

func TestAddMemberUnknownTeam(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	teamRepo := NewTeamRepository(db)

	user := createUser(t, userRepo, "nowhere@test.com", nil)
	ghost := &models.Team{ID: 9999, EventSlug: "quiz"}
	if err := teamRepo.AddMember(ghost, user.ID, 3); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("join of missing team = %v, want ErrNotFound", err)
	}
}

func TestGetByCodeUnknown(t *testing.T) {
	db := newTestDB(t)
	teamRepo := NewTeamRepository(db)

	if _, err := teamRepo.GetByCode("000000"); !errors.Is(err, models.ErrInvalidCode) {
		t.Fatalf("lookup of unknown code = %v, want ErrInvalidCode", err)
	}
}

func TestGetUserTeamForEventMissing(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	teamRepo := NewTeamRepository(db)

	loner := createUser(t, userRepo, "loner@test.com", nil)
	if _, err := teamRepo.GetUserTeamForEvent(loner.ID, "quiz"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("teamless lookup = %v, want ErrNotFound", err)
	}
}
