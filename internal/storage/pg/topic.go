package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
)

const topicColumns = `id, family, title, username, created_at,
	email_group, description, meeting_type, location, link, date_time`

// Topics lists the topics of a family ordered by title, ties broken by id.
func (s *Storage) Topics(ctx context.Context, family domain.FamilyName) ([]domain.Topic, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	topics := []domain.Topic{}
	err := s.db.SelectContext(ctx, &topics,
		`SELECT `+topicColumns+` FROM topics WHERE family = $1 ORDER BY title, id`, family)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics of %s: %w", family, err)
	}
	return topics, nil
}

func (s *Storage) Topic(ctx context.Context, family domain.FamilyName, id domain.TopicId) (domain.Topic, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var topic domain.Topic
	err := s.db.GetContext(ctx, &topic,
		`SELECT `+topicColumns+` FROM topics WHERE family = $1 AND id = $2`, family, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Topic{}, internal_errors.NotFound("Topic not found")
		}
		return domain.Topic{}, fmt.Errorf("failed to get topic %s: %w", id, err)
	}
	return topic, nil
}

// CreateTopic inserts the topic; created_at is assigned by the database.
func (s *Storage) CreateTopic(ctx context.Context, topic domain.Topic) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO topics (id, family, title, username, email_group, description, meeting_type, location, link, date_time)
		VALUES (:id, :family, :title, :username, :email_group, :description, :meeting_type, :location, :link, :date_time)`,
		topic)
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

// DeleteTopic removes the topic only when username owns it. Posts go with it
// through the foreign key cascade.
func (s *Storage) DeleteTopic(ctx context.Context, family domain.FamilyName, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var outcome domain.DeleteOutcome
	err := WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var err error
		outcome, err = conditionalDelete(ctx, tx,
			`DELETE FROM topics WHERE family = $1 AND id = $2 AND username = $3`,
			`SELECT EXISTS (SELECT 1 FROM topics WHERE family = $1 AND id = $2)`,
			[]any{family, id, username}, []any{family, id})
		return err
	})
	if err != nil {
		return domain.DeleteOutcomeUnknown, fmt.Errorf("failed to delete topic %s: %w", id, err)
	}
	return outcome, nil
}

// conditionalDelete runs an owner-scoped delete and, when nothing matched,
// probes for the row to tell a missing row from a foreign one.
func conditionalDelete(ctx context.Context, tx *sqlx.Tx, deleteQuery, existsQuery string, deleteArgs, existsArgs []any) (domain.DeleteOutcome, error) {
	result, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return domain.DeleteOutcomeUnknown, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.DeleteOutcomeUnknown, err
	}
	if affected > 0 {
		return domain.DeleteOutcomeDeleted, nil
	}
	return missedOutcome(ctx, tx, existsQuery, existsArgs)
}

// missedOutcome classifies a delete that matched no row.
func missedOutcome(ctx context.Context, tx *sqlx.Tx, existsQuery string, existsArgs []any) (domain.DeleteOutcome, error) {
	var exists bool
	if err := tx.GetContext(ctx, &exists, existsQuery, existsArgs...); err != nil {
		return domain.DeleteOutcomeUnknown, err
	}
	if exists {
		return domain.DeleteOutcomeForbidden, nil
	}
	return domain.DeleteOutcomeNotFound, nil
}
