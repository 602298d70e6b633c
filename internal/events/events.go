// Package events carries notifications about completed topic and post mutations.
package events

import (
	"context"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, domain.Event) error { return nil }
