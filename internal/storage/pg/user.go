package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
)

func (s *Storage) User(ctx context.Context, username domain.Username) (domain.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT username, emails FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SaveUser creates the user or replaces its addresses.
func (s *Storage) SaveUser(ctx context.Context, user domain.User) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	emails := user.Emails
	if emails == nil {
		emails = domain.Emails{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, emails) VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET emails = EXCLUDED.emails`,
		user.Username, emails)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
