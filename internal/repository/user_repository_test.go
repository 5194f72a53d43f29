package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/nawabifest/backend/internal/models"
)

func TestClaimTaskAwardsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createUser(t, repo, "a@test.com", nil)

	claimed, err := repo.ClaimTask(user.Email, "task_cart", 50, "Add 3 events to cart")
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if claimed.CACoins != 50 {
		t.Fatalf("balance after first claim = %d, want 50", claimed.CACoins)
	}
	if !claimed.TaskCart {
		t.Fatal("task flag not set after claim")
	}

	if _, err := repo.ClaimTask(user.Email, "task_cart", 50, "Add 3 events to cart"); !errors.Is(err, models.ErrAlreadyClaimed) {
		t.Fatalf("second claim error = %v, want ErrAlreadyClaimed", err)
	}

	fresh, err := repo.GetByEmail(user.Email)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.CACoins != 50 {
		t.Fatalf("balance changed by failed claim: %d", fresh.CACoins)
	}
	if sum := ledgerSum(t, db, user.ID); sum != fresh.CACoins {
		t.Fatalf("ledger sum %d != balance %d", sum, fresh.CACoins)
	}
}

func TestClaimTaskUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.ClaimTask("ghost@test.com", "task_insta", 20, "Follow on Instagram"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("claim for missing user = %v, want ErrNotFound", err)
	}
}

func TestConcurrentClaimsResolveToOneSuccess(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createUser(t, repo, "race@test.com", nil)

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.ClaimTask(user.Email, "task_insta", 20, "Follow on Instagram")
		}(i)
	}
	wg.Wait()

	successes, duplicates := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, models.ErrAlreadyClaimed):
			duplicates++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}
	if successes != 1 || duplicates != workers-1 {
		t.Fatalf("got %d successes and %d duplicates, want 1 and %d", successes, duplicates, workers-1)
	}

	fresh, err := repo.GetByEmail(user.Email)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.CACoins != 20 {
		t.Fatalf("balance after concurrent claims = %d, want 20", fresh.CACoins)
	}
	if sum := ledgerSum(t, db, user.ID); sum != 20 {
		t.Fatalf("ledger sum after concurrent claims = %d, want 20", sum)
	}
}

func TestCreateWithReferralCreditsAmbassador(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	code := "FESTCA01"
	ambassador := createUser(t, repo, "ca@test.com", func(u *models.User) {
		u.Role = models.RoleAmbassador
		u.ReferralCode = &code
	})

	referred := &models.User{
		FullName:   "Referred User",
		Email:      "new@test.com",
		Password:   "hashed",
		Role:       models.RoleAttendee,
		ReferredBy: &code,
	}
	if err := repo.CreateWithReferral(referred, 100); err != nil {
		t.Fatalf("create with referral: %v", err)
	}

	fresh, err := repo.GetByID(ambassador.ID)
	if err != nil {
		t.Fatalf("reload ambassador: %v", err)
	}
	if fresh.CACoins != 100 {
		t.Fatalf("ambassador balance = %d, want 100", fresh.CACoins)
	}

	history, err := NewCoinHistoryRepository(db).GetUserHistory(ambassador.ID)
	if err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("ledger rows = %d, want exactly 1", len(history))
	}
	if history[0].Amount != 100 {
		t.Fatalf("ledger amount = %d, want 100", history[0].Amount)
	}
}

func TestCreateWithReferralUnknownCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	bogus := "NOPE1234"
	referred := &models.User{
		FullName:   "Hopeful User",
		Email:      "hopeful@test.com",
		Password:   "hashed",
		Role:       models.RoleAttendee,
		ReferredBy: &bogus,
	}
	if err := repo.CreateWithReferral(referred, 100); err != nil {
		t.Fatalf("signup with unknown code should still succeed: %v", err)
	}

	fresh, err := repo.GetByEmail("hopeful@test.com")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.ReferredBy != nil {
		t.Fatalf("dangling referred_by kept: %v", *fresh.ReferredBy)
	}

	var ledgerRows int64
	if err := db.Model(&models.CoinHistory{}).Count(&ledgerRows).Error; err != nil {
		t.Fatalf("count ledger: %v", err)
	}
	if ledgerRows != 0 {
		t.Fatalf("ledger rows = %d, want 0 for unknown code", ledgerRows)
	}
}

func TestCreateWithReferralIgnoresNonAmbassadorCodes(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	code := "PLAIN001"
	regular := createUser(t, repo, "plain@test.com", func(u *models.User) {
		u.ReferralCode = &code
	})

	referred := &models.User{
		FullName:   "Friend",
		Email:      "friend@test.com",
		Password:   "hashed",
		ReferredBy: &code,
	}
	if err := repo.CreateWithReferral(referred, 100); err != nil {
		t.Fatalf("create with referral: %v", err)
	}

	fresh, err := repo.GetByID(regular.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.CACoins != 0 {
		t.Fatalf("non-ambassador credited %d coins", fresh.CACoins)
	}
}

func TestGrantCoinsKeepsLedgerInSync(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createUser(t, repo, "grant@test.com", nil)

	if err := repo.GrantCoins(user.ID, 40, "Volunteer shift"); err != nil {
		t.Fatalf("grant coins: %v", err)
	}
	if err := repo.GrantCoins(user.ID, 10, "Quiz spot prize"); err != nil {
		t.Fatalf("grant coins: %v", err)
	}

	fresh, err := repo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if fresh.CACoins != 50 {
		t.Fatalf("balance = %d, want 50", fresh.CACoins)
	}
	if sum := ledgerSum(t, db, user.ID); sum != fresh.CACoins {
		t.Fatalf("ledger sum %d != balance %d", sum, fresh.CACoins)
	}

	if err := repo.GrantCoins(9999, 10, "nobody"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("grant to missing user = %v, want ErrNotFound", err)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	topCode, midCode, idleCode := "TOPCA001", "MIDCA001", "IDLECA01"
	createUser(t, repo, "top@test.com", func(u *models.User) {
		u.FullName = "Top Ambassador"
		u.Role = models.RoleAmbassador
		u.ReferralCode = &topCode
	})
	createUser(t, repo, "mid@test.com", func(u *models.User) {
		u.FullName = "Mid Ambassador"
		u.Role = models.RoleAmbassador
		u.ReferralCode = &midCode
	})
	createUser(t, repo, "idle@test.com", func(u *models.User) {
		u.FullName = "Idle Ambassador"
		u.Role = models.RoleAmbassador
		u.ReferralCode = &idleCode
	})

	// Non-ambassadors never appear, even with a code and referrals.
	plainCode := "PLAIN999"
	createUser(t, repo, "plain@test.com", func(u *models.User) {
		u.ReferralCode = &plainCode
	})

	for i, code := range []string{"TOPCA001", "TOPCA001", "MIDCA001"} {
		c := code
		createUser(t, repo, fmt.Sprintf("ref%d@test.com", i), func(u *models.User) {
			u.ReferredBy = &c
		})
	}

	entries, err := repo.Leaderboard()
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("leaderboard rows = %d, want 3", len(entries))
	}
	want := []struct {
		name      string
		referrals int64
	}{
		{"Top Ambassador", 2},
		{"Mid Ambassador", 1},
		{"Idle Ambassador", 0},
	}
	for i, w := range want {
		if entries[i].Name != w.name || entries[i].Referrals != w.referrals {
			t.Fatalf("row %d = %q/%d, want %q/%d", i, entries[i].Name, entries[i].Referrals, w.name, w.referrals)
		}
	}
}

func TestDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := createUser(t, repo, "doomed@test.com", nil)

	if err := repo.GrantCoins(user.ID, 20, "seed"); err != nil {
		t.Fatalf("grant coins: %v", err)
	}
	if err := db.Create(&models.CartItem{UserID: user.ID, EventSlug: "quiz"}).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	order := &models.Order{UserID: user.ID, PassType: "basic", Amount: 499}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := db.Create(&models.OrderItem{OrderID: order.ID, EventSlug: "quiz"}).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}

	if err := repo.Delete(user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"users", &models.User{}},
		{"coin_histories", &models.CoinHistory{}},
		{"cart_items", &models.CartItem{}},
		{"orders", &models.Order{}},
		{"order_items", &models.OrderItem{}},
	} {
		var count int64
		if err := db.Model(probe.model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", probe.name, err)
		}
		if count != 0 {
			t.Fatalf("%s rows left after cascade delete: %d", probe.name, count)
		}
	}

	if err := repo.Delete(user.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}
