package service

import (
	"errors"
	"testing"

	"github.com/bazaan/dashboarddev/internal/domain"
)

type fakeLedgerRepo struct {
	users    map[string]*domain.User
	entries  []domain.StarTransaction
	failWith error
}

func newFakeLedgerRepo(users ...*domain.User) *fakeLedgerRepo {
	repo := &fakeLedgerRepo{users: map[string]*domain.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}

	return repo
}

func (f *fakeLedgerRepo) AwardStars(userID string, stars int64, reason string, taskID *string) (*domain.AwardResult, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	user, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	granted := domain.BonusesToGrant(user.StarsBalance, stars)
	user.StarsBalance += stars
	user.BonusesBalance += granted
	f.entries = append(f.entries, domain.StarTransaction{
		UserID: userID,
		Stars:  stars,
		Reason: reason,
		TaskID: taskID,
	})

	return &domain.AwardResult{
		Stars:          user.StarsBalance,
		Bonuses:        user.BonusesBalance,
		BonusesGranted: granted,
	}, nil
}

func (f *fakeLedgerRepo) StarTransactions(userID string) ([]domain.StarTransaction, error) {
	var result []domain.StarTransaction
	for _, entry := range f.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}

	return result, nil
}

func (f *fakeLedgerRepo) UserByEmail(email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

type fakeNotificationRepo struct {
	notifications []domain.Notification
	failWith      error
}

func (f *fakeNotificationRepo) CreateNotification(notification domain.Notification) error {
	if f.failWith != nil {
		return f.failWith
	}

	f.notifications = append(f.notifications, notification)

	return nil
}

func TestLedgerService_Award(t *testing.T) {
	tests := []struct {
		name           string
		callerRole     string
		startingStars  int64
		stars          int64
		wantErr        error
		wantStars      int64
		wantBonuses    int64
		wantGranted    int64
	}{
		{
			name:        "developer may not award",
			callerRole:  domain.RoleDeveloper,
			stars:       1,
			wantErr:     domain.ErrForbidden,
		},
		{
			name:        "zero stars rejected",
			callerRole:  domain.RoleAdmin,
			stars:       0,
			wantErr:     domain.ErrInvalidStarCount,
		},
		{
			name:        "negative stars rejected",
			callerRole:  domain.RoleAdmin,
			stars:       -2,
			wantErr:     domain.ErrInvalidStarCount,
		},
		{
			name:        "over the per-award cap",
			callerRole:  domain.RoleAdmin,
			stars:       MaxAdminAwardStars + 1,
			wantErr:     domain.ErrInvalidStarCount,
		},
		{
			name:          "award crossing threshold grants bonus",
			callerRole:    domain.RoleAdmin,
			startingStars: 2,
			stars:         1,
			wantStars:     3,
			wantBonuses:   1,
			wantGranted:   1,
		},
		{
			name:          "award below threshold grants nothing",
			callerRole:    domain.RoleAdmin,
			startingStars: 3,
			stars:         2,
			wantStars:     5,
			wantBonuses:   0,
			wantGranted:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{ID: "user-1", Email: "dev@example.com", StarsBalance: tt.startingStars}
			repo := newFakeLedgerRepo(user)
			notifications := &fakeNotificationRepo{}
			svc := NewLedgerService(repo, repo, notifications, &fakeAuditRepo{})

			result, err := svc.Award("admin-1", tt.callerRole, user.ID, tt.stars, "", nil)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if user.StarsBalance != tt.startingStars {
					t.Errorf("rejected award changed balance to %d", user.StarsBalance)
				}
				if len(repo.entries) != 0 {
					t.Errorf("rejected award wrote %d ledger entries", len(repo.entries))
				}
				return
			}

			if err != nil {
				t.Fatalf("award: %v", err)
			}
			if result.Stars != tt.wantStars {
				t.Errorf("Stars = %d, want %d", result.Stars, tt.wantStars)
			}
			if result.Bonuses != tt.wantBonuses {
				t.Errorf("Bonuses = %d, want %d", result.Bonuses, tt.wantBonuses)
			}
			if result.BonusesGranted != tt.wantGranted {
				t.Errorf("BonusesGranted = %d, want %d", result.BonusesGranted, tt.wantGranted)
			}
			if len(repo.entries) != 1 {
				t.Fatalf("wrote %d ledger entries, want 1", len(repo.entries))
			}
			if repo.entries[0].Reason != ReasonAdminAward {
				t.Errorf("empty reason defaulted to %q, want %q", repo.entries[0].Reason, ReasonAdminAward)
			}
			if len(notifications.notifications) != 1 {
				t.Errorf("sent %d notifications, want 1", len(notifications.notifications))
			}
		})
	}
}

func TestLedgerService_AwardUnknownUser(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewLedgerService(repo, repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	_, err := svc.Award("admin-1", domain.RoleAdmin, "missing", 1, "", nil)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, domain.ErrUserNotFound)
	}
}

func TestLedgerService_AwardRepositoryFailure(t *testing.T) {
	user := &domain.User{ID: "user-1", StarsBalance: 2}
	repo := newFakeLedgerRepo(user)
	repo.failWith = errors.New("connection reset")
	notifications := &fakeNotificationRepo{}
	svc := NewLedgerService(repo, repo, notifications, &fakeAuditRepo{})

	_, err := svc.Award("admin-1", domain.RoleAdmin, user.ID, 1, "", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if user.StarsBalance != 2 {
		t.Errorf("failed award changed balance to %d", user.StarsBalance)
	}
	if len(notifications.notifications) != 0 {
		t.Errorf("failed award sent %d notifications", len(notifications.notifications))
	}
}

func TestLedgerService_AwardNotificationFailureDoesNotFailAward(t *testing.T) {
	user := &domain.User{ID: "user-1"}
	repo := newFakeLedgerRepo(user)
	notifications := &fakeNotificationRepo{failWith: errors.New("queue full")}
	svc := NewLedgerService(repo, repo, notifications, &fakeAuditRepo{})

	result, err := svc.Award("admin-1", domain.RoleAdmin, user.ID, 2, "good work", nil)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if result.Stars != 2 {
		t.Errorf("Stars = %d, want 2", result.Stars)
	}
}

func TestLedgerService_TransactionsScope(t *testing.T) {
	dev := &domain.User{ID: "dev-1"}
	other := &domain.User{ID: "dev-2"}
	repo := newFakeLedgerRepo(dev, other)
	svc := NewLedgerService(repo, repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	if _, err := svc.Award("admin-1", domain.RoleAdmin, "dev-1", 2, "", nil); err != nil {
		t.Fatalf("seed award: %v", err)
	}
	if _, err := svc.Award("admin-1", domain.RoleAdmin, "dev-2", 1, "", nil); err != nil {
		t.Fatalf("seed award: %v", err)
	}

	own, err := svc.Transactions("dev-1", domain.RoleDeveloper, "")
	if err != nil {
		t.Fatalf("own history: %v", err)
	}
	if len(own) != 1 || own[0].UserID != "dev-1" {
		t.Errorf("developer sees %d entries, want only their own", len(own))
	}

	if _, err := svc.Transactions("dev-1", domain.RoleDeveloper, "dev-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("developer reading another ledger error = %v, want %v", err, domain.ErrForbidden)
	}

	others, err := svc.Transactions("admin-1", domain.RoleAdmin, "dev-2")
	if err != nil {
		t.Fatalf("admin history: %v", err)
	}
	if len(others) != 1 || others[0].UserID != "dev-2" {
		t.Errorf("admin sees %d entries for dev-2", len(others))
	}
}

func TestLedgerService_AwardByEmail(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "dev@example.com", StarsBalance: 5}
	repo := newFakeLedgerRepo(user)
	svc := NewLedgerService(repo, repo, &fakeNotificationRepo{}, &fakeAuditRepo{})

	result, err := svc.AwardByEmail("admin-1", domain.RoleAdmin, "dev@example.com", 3, "")
	if err != nil {
		t.Fatalf("award by email: %v", err)
	}
	if result.Stars != 8 {
		t.Errorf("Stars = %d, want 8", result.Stars)
	}
	if result.BonusesGranted != 1 {
		t.Errorf("BonusesGranted = %d, want 1", result.BonusesGranted)
	}

	if _, err := svc.AwardByEmail("admin-1", domain.RoleAdmin, "nobody@example.com", 1, ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown email error = %v, want %v", err, domain.ErrUserNotFound)
	}

	if _, err := svc.AwardByEmail("dev-9", domain.RoleDeveloper, "dev@example.com", 1, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("developer error = %v, want %v", err, domain.ErrForbidden)
	}
}
