// Package mongo keeps session records in a MongoDB collection for deployments
// whose login flow writes there instead of PostgreSQL.
package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coolfrog-dev/coolfrog/internal/config"
	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
)

const sessionsCollection = "sessions"

// SessionStore reads documents shaped {_id: token, data: "<json>"}.
type SessionStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

func New(ctx context.Context, cfg *config.Config) (*SessionStore, error) {
	logger.Log.Info("connecting to mongo", "database", cfg.Private.Mongo.Database)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Private.Mongo.Uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	logger.Log.Info("successfully connected to mongo")

	return &SessionStore{
		client:     client,
		collection: client.Database(cfg.Private.Mongo.Database).Collection(sessionsCollection),
		timeout:    cfg.Public.StoreTimeout,
	}, nil
}

func (s *SessionStore) Get(ctx context.Context, token domain.Token) ([]byte, bool, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.collection.FindOne(ctx, bson.M{"_id": token}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get session: %w", err)
	}

	// a record whose data is not a string is present but unreadable
	data, ok := raw.Lookup("data").StringValueOK()
	if !ok {
		return nil, true, nil
	}
	return []byte(data), true, nil
}

func (s *SessionStore) Put(ctx context.Context, session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	_, err = s.collection.ReplaceOne(ctx,
		bson.M{"_id": session.Token},
		bson.M{"_id": session.Token, "data": string(data), "created_at": time.Now().UTC()},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to put session: %w", err)
	}
	return nil
}

func (s *SessionStore) Cleanup(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
