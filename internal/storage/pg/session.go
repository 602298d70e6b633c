package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

// SessionStore reads session records from the sessions table. Records are
// written by the login flow; Put exists for fixtures and the operator CLI.
type SessionStore struct {
	s *Storage
}

func (s *Storage) Sessions() *SessionStore {
	return &SessionStore{s: s}
}

func (ss *SessionStore) Get(ctx context.Context, token domain.Token) ([]byte, bool, error) {
	ctx, cancel := ss.s.withTimeout(ctx)
	defer cancel()

	var data string
	err := ss.s.db.GetContext(ctx, &data, `SELECT data FROM sessions WHERE token = $1`, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get session: %w", err)
	}
	return []byte(data), true, nil
}

func (ss *SessionStore) Put(ctx context.Context, session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ctx, cancel := ss.s.withTimeout(ctx)
	defer cancel()

	_, err = ss.s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, data) VALUES ($1, $2)
		ON CONFLICT (token) DO UPDATE SET data = EXCLUDED.data`,
		session.Token, string(data))
	if err != nil {
		return fmt.Errorf("failed to put session: %w", err)
	}
	return nil
}
