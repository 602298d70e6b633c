package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
)

const foreignKeyViolation = "23503"

// Posts lists the posts of a topic, newest first.
func (s *Storage) Posts(ctx context.Context, topicId domain.TopicId) ([]domain.Post, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	posts := []domain.Post{}
	err := s.db.SelectContext(ctx, &posts, `
		SELECT id, topic_id, username, title, body, created_at
		FROM posts
		WHERE topic_id = $1
		ORDER BY created_at DESC, id`, topicId)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts of %s: %w", topicId, err)
	}
	return posts, nil
}

// CreatePost inserts the post if its topic exists in family.
func (s *Storage) CreatePost(ctx context.Context, family domain.FamilyName, post domain.Post) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, topic_id, username, title, body)
		SELECT $1, t.id, $3, $4, $5
		FROM topics t
		WHERE t.id = $2 AND t.family = $6`,
		post.Id, post.TopicId, post.Username, post.Title, post.Body, family)
	if err != nil {
		// topic deleted between the select and the insert
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return internal_errors.NotFound("Topic not found")
		}
		return fmt.Errorf("failed to create post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Topic not found")
	}
	return nil
}

// DeletePost removes the post only when username owns it and reports the
// family and topic the removed post belonged to.
func (s *Storage) DeletePost(ctx context.Context, id domain.PostId, username domain.Username) (domain.PostLocation, domain.DeleteOutcome, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		location domain.PostLocation
		outcome  domain.DeleteOutcome
	)
	err := WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &location, `
			DELETE FROM posts p
			USING topics t
			WHERE p.id = $1 AND p.username = $2 AND t.id = p.topic_id
			RETURNING t.family, p.topic_id`, id, username)
		if err == nil {
			outcome = domain.DeleteOutcomeDeleted
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		outcome, err = missedOutcome(ctx, tx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, []any{id})
		return err
	})
	if err != nil {
		return domain.PostLocation{}, domain.DeleteOutcomeUnknown, fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	return location, outcome, nil
}
