// package auth implements the email+password authentication check.
//
// Login is a two-step interactive flow: an unknown email first fails with
// [shared.ErrRegistrationRequired] so the caller can collect a display name,
// then succeeds on re-invocation with the name supplied. Known emails are
// checked by plain string equality against the stored password.
package auth

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/taskman/internal/models"
	"github.com/desertthunder/taskman/internal/shared"
	"github.com/desertthunder/taskman/internal/store"
)

// emailPattern is deliberately loose: local part, @, domain, dot, 2-7 letter TLD.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}$`)

// ValidEmail reports whether s has the accepted email shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Service authenticates against and registers into the user table.
type Service struct {
	users  *store.Table[models.User]
	logger *log.Logger
}

// NewService creates a new auth [Service] backed by the given user table.
func NewService(users *store.Table[models.User], logger *log.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// Lookup finds a user by email.
func (s *Service) Lookup(email string) (models.User, bool) {
	return s.users.First(func(u models.User) bool { return u.Email == email })
}

// Login authenticates email+password, registering a new user when the email
// is unknown.
//
// Failure modes:
//   - malformed email: [shared.ErrInvalidEmail]
//   - unknown email, no name supplied: [shared.ErrRegistrationRequired]
//   - unknown email, whitespace-only name: [shared.ErrEmptyName]
//   - known email, wrong password: [shared.ErrIncorrectPassword]
//
// None of the failures mutate the user table.
func (s *Service) Login(email, password, name string) (models.Identity, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return models.Identity{}, shared.ErrInvalidEmail
	}

	if user, ok := s.Lookup(email); ok {
		if password != user.Password {
			return models.Identity{}, shared.ErrIncorrectPassword
		}
		if s.logger != nil {
			s.logger.Debug("authenticated", "email", email)
		}
		return models.Identity{Email: email, Name: user.Name}, nil
	}

	if name == "" {
		return models.Identity{}, shared.ErrRegistrationRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Identity{}, shared.ErrEmptyName
	}

	user := models.User{Email: email, Password: password, Name: name}
	if err := s.users.Append(user); err != nil {
		return models.Identity{}, err
	}

	if s.logger != nil {
		s.logger.Info("registered new user", "email", email)
	}
	return models.Identity{Email: email, Name: name}, nil
}
