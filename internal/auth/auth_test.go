package auth

import (
	"errors"
	"testing"

	"github.com/desertthunder/taskman/internal/models"
	"github.com/desertthunder/taskman/internal/shared"
	"github.com/desertthunder/taskman/internal/store"
	tu "github.com/desertthunder/taskman/internal/testing"
)

func setupService(t *testing.T) (*Service, *store.Table[models.User]) {
	t.Helper()

	users, err := store.OpenUsers(tu.TempPath(t, "users.csv"), nil)
	if err != nil {
		t.Fatalf("failed to open user table: %v", err)
	}
	return NewService(users, nil), users
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"someone@example.com",
		"first.last@sub.domain.org",
		"user+tag@mail.co",
		"UPPER_case%ok@host-name.io",
	}
	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-domain@",
		"@no-local.com",
		"no-tld@domain",
		"bad@domain.",
		"spaces in@local.com",
		"toolongtld@domain.abcdefgh",
	}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestLogin(t *testing.T) {
	t.Run("rejects malformed email", func(t *testing.T) {
		service, users := setupService(t)

		if _, err := service.Login("not-an-email", "pw", ""); !errors.Is(err, shared.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
		if users.Len() != 0 {
			t.Error("user table should be unchanged")
		}
	})

	t.Run("unknown email requires registration", func(t *testing.T) {
		service, users := setupService(t)

		if _, err := service.Login("new@example.com", "pw", ""); !errors.Is(err, shared.ErrRegistrationRequired) {
			t.Errorf("expected ErrRegistrationRequired, got %v", err)
		}
		if users.Len() != 0 {
			t.Error("user table should be unchanged")
		}
	})

	t.Run("blank name fails registration", func(t *testing.T) {
		service, users := setupService(t)

		if _, err := service.Login("new@example.com", "pw", "   "); !errors.Is(err, shared.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
		if users.Len() != 0 {
			t.Error("user table should be unchanged")
		}
	})

	t.Run("register then authenticate", func(t *testing.T) {
		service, users := setupService(t)

		registered, err := service.Login("new@example.com", "pw", "New User")
		if err != nil {
			t.Fatalf("registration failed: %v", err)
		}
		if registered.Name != "New User" {
			t.Errorf("expected name New User, got %s", registered.Name)
		}
		if users.Len() != 1 {
			t.Fatalf("expected exactly one user row, got %d", users.Len())
		}

		authed, err := service.Login("new@example.com", "pw", "")
		if err != nil {
			t.Fatalf("authentication failed: %v", err)
		}
		if authed != registered {
			t.Errorf("expected identical identity, got %+v vs %+v", authed, registered)
		}

		reloaded, err := store.OpenUsers(users.Path(), nil)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if reloaded.Len() != 1 {
			t.Errorf("expected one persisted row, got %d", reloaded.Len())
		}
	})

	t.Run("wrong password never mutates the table", func(t *testing.T) {
		service, users := setupService(t)

		if _, err := service.Login("new@example.com", "right", "New User"); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
		before := tu.MustReadFile(t, users.Path())

		if _, err := service.Login("new@example.com", "wrong", ""); !errors.Is(err, shared.ErrIncorrectPassword) {
			t.Errorf("expected ErrIncorrectPassword, got %v", err)
		}

		if after := tu.MustReadFile(t, users.Path()); after != before {
			t.Error("user table file changed on failed login")
		}
	})

	t.Run("password comparison is exact", func(t *testing.T) {
		service, _ := setupService(t)

		if _, err := service.Login("new@example.com", "Secret", "New User"); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
		if _, err := service.Login("new@example.com", "secret", ""); !errors.Is(err, shared.ErrIncorrectPassword) {
			t.Errorf("expected case-sensitive mismatch, got %v", err)
		}
	})
}
