package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/events"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
	"github.com/coolfrog-dev/coolfrog/internal/metrics"
)

// deps shared by the topic and post services; tests replace now and newId.
type deps struct {
	publisher events.Publisher
	now       func() time.Time
	newId     func() string
}

func newDeps(publisher events.Publisher) deps {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return deps{publisher: publisher, now: time.Now, newId: uuid.NewString}
}

// publish never fails the caller; a lost event is logged and counted.
func (d deps) publish(ctx context.Context, event domain.Event) {
	event.OccurredAt = d.now().UTC()
	result := "ok"
	if err := d.publisher.Publish(ctx, event); err != nil {
		result = "error"
		logger.Log.Warn("failed to publish event", "type", event.Type, "topic_id", event.TopicId, "error", err)
	}
	metrics.ObserveEvent(string(event.Type), result)
}

func observeDelete(entity string, id string, username domain.Username, outcome domain.DeleteOutcome) {
	metrics.ObserveDelete(entity, outcome.String())
	if outcome != domain.DeleteOutcomeDeleted {
		logger.Log.Info("delete did not remove anything", "entity", entity, "id", id, "username", username, "outcome", outcome.String())
	}
}
