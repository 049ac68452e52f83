package model_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nbrandao/equidade/internal/webserver/infrastructure"
	"github.com/nbrandao/equidade/internal/webserver/model"
	"gorm.io/gorm"
)

func TestRedeem(t *testing.T) {
	var (
		db      *gorm.DB
		invites *model.InviteTokenRepository
		users   *model.UserRepository
	)

	reset := func() {
		db = infrastructure.Connect(":memory:")
		invites = &model.InviteTokenRepository{DB: db}
		users = &model.UserRepository{DB: db}
	}

	issue := func(expiresAt time.Time) string {
		t.Helper()

		invite := &model.InviteToken{
			Token:     model.NewInviteTokenString(),
			CreatedBy: 1,
			Role:      model.RoleAdmin,
			ExpiresAt: expiresAt,
		}
		if err := invites.Create(invite); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		return invite.Token
	}

	newUser := func(username string) *model.User {
		return &model.User{
			Uuid:     uuid.NewString(),
			Name:     "Invited",
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: "irrelevant",
			Role:     model.RoleRegular,
			Active:   true,
		}
	}

	t.Run("Grants the role recorded on the token and marks it used", func(t *testing.T) {
		reset()
		token := issue(time.Now().UTC().Add(time.Hour))

		user := newUser("invited")
		invite, err := invites.Redeem(token, user)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if user.Role != model.RoleAdmin {
			t.Errorf("Expected role %d, got %d", model.RoleAdmin, user.Role)
		}
		if invite.CreatedBy != 1 {
			t.Errorf("Expected the issuing admin on the returned token, got %d", invite.CreatedBy)
		}

		stored, err := invites.FindByToken(token)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if !stored.Used || stored.UsedBy == nil || *stored.UsedBy != user.ID || stored.UsedAt == nil {
			t.Errorf("Expected the token to carry the redemption audit fields, got %+v", stored)
		}
	})

	t.Run("A token redeems at most once", func(t *testing.T) {
		reset()
		token := issue(time.Now().UTC().Add(time.Hour))

		if _, err := invites.Redeem(token, newUser("first")); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if _, err := invites.Redeem(token, newUser("second")); !errors.Is(err, model.ErrInviteUsed) {
			t.Errorf("Expected ErrInviteUsed, got %v", err)
		}

		if user, _ := users.FindByUsername("second"); user != nil {
			t.Error("The losing redemption must not leave an account behind")
		}
	})

	t.Run("Unknown tokens are rejected", func(t *testing.T) {
		reset()

		if _, err := invites.Redeem("no-such-token", newUser("nobody")); !errors.Is(err, model.ErrInviteNotFound) {
			t.Errorf("Expected ErrInviteNotFound, got %v", err)
		}
	})

	t.Run("Expired tokens are rejected even if never used", func(t *testing.T) {
		reset()
		token := issue(time.Now().UTC().Add(-time.Minute))

		if _, err := invites.Redeem(token, newUser("late")); !errors.Is(err, model.ErrInviteExpired) {
			t.Errorf("Expected ErrInviteExpired, got %v", err)
		}

		stored, err := invites.FindByToken(token)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if stored.Used {
			t.Error("A rejected redemption must not consume the token")
		}
	})

	t.Run("A duplicate identity rolls the whole redemption back", func(t *testing.T) {
		reset()
		token := issue(time.Now().UTC().Add(time.Hour))

		existing := newUser("taken")
		if err := users.Create(existing); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}

		if _, err := invites.Redeem(token, newUser("taken")); !errors.Is(err, model.ErrDuplicateIdentity) {
			t.Errorf("Expected ErrDuplicateIdentity, got %v", err)
		}

		stored, err := invites.FindByToken(token)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if stored.Used {
			t.Error("The token must stay redeemable after a rolled-back attempt")
		}
	})

	t.Run("Concurrent redemptions end with exactly one success", func(t *testing.T) {
		reset()

		sqlDB, err := db.DB()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		sqlDB.SetMaxOpenConns(1)

		token := issue(time.Now().UTC().Add(time.Hour))

		const attempts = 8
		results := make(chan error, attempts)

		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := invites.Redeem(token, newUser(fmt.Sprintf("racer%d", i)))
				results <- err
			}(i)
		}
		wg.Wait()
		close(results)

		successes, alreadyUsed := 0, 0
		for err := range results {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, model.ErrInviteUsed):
				alreadyUsed++
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}
		if successes != 1 {
			t.Errorf("Expected exactly one successful redemption, got %d", successes)
		}
		if alreadyUsed != attempts-1 {
			t.Errorf("Expected %d rejected redemptions, got %d", attempts-1, alreadyUsed)
		}
	})
}

func TestInviteTokenString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := model.NewInviteTokenString()
		if len(token) != 43 {
			t.Fatalf("Expected a 43-character token, got %d characters", len(token))
		}
		if seen[token] {
			t.Fatal("Token strings must not repeat")
		}
		seen[token] = true
	}
}
