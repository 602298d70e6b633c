package service

import (
	"context"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
)

type UserService interface {
	EmailGroups(ctx context.Context, username domain.Username) ([]string, error)
}

type UserStorage interface {
	User(ctx context.Context, username domain.Username) (domain.User, error)
}

type User struct {
	storage UserStorage
}

func NewUser(storage UserStorage) *User {
	return &User{storage: storage}
}

// EmailGroups lists "@domain" options for the caller's registered addresses.
// A user missing from the directory simply has none.
func (s *User) EmailGroups(ctx context.Context, username domain.Username) ([]string, error) {
	user, err := s.storage.User(ctx, username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return []string{}, nil
		}
		return nil, err
	}
	domains := user.EmailDomains()
	groups := make([]string, 0, len(domains))
	for _, d := range domains {
		groups = append(groups, "@"+d)
	}
	return groups, nil
}
