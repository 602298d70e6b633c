package service

import (
	"context"
	"strings"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
	"github.com/coolfrog-dev/coolfrog/internal/events"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
)

type PostService interface {
	Page(ctx context.Context, family domain.Family, topicId domain.TopicId) (domain.TopicPage, error)
	Create(ctx context.Context, data domain.PostCreationData) (domain.PostId, error)
	Delete(ctx context.Context, family domain.Family, topicId domain.TopicId, postId domain.PostId, username domain.Username) (domain.DeleteOutcome, error)
}

type PostStorage interface {
	Topic(ctx context.Context, family domain.FamilyName, id domain.TopicId) (domain.Topic, error)
	Posts(ctx context.Context, topicId domain.TopicId) ([]domain.Post, error)
	CreatePost(ctx context.Context, family domain.FamilyName, post domain.Post) error
	DeletePost(ctx context.Context, id domain.PostId, username domain.Username) (domain.PostLocation, domain.DeleteOutcome, error)
}

type PostValidator interface {
	Post(data domain.PostCreationData) error
}

type Post struct {
	storage   PostStorage
	validator PostValidator
	deps
}

func NewPost(storage PostStorage, validator PostValidator, publisher events.Publisher) *Post {
	return &Post{storage: storage, validator: validator, deps: newDeps(publisher)}
}

// Page returns the topic with its posts. An unknown topic is a NotFound error.
func (s *Post) Page(ctx context.Context, family domain.Family, topicId domain.TopicId) (domain.TopicPage, error) {
	topic, err := s.storage.Topic(ctx, family.Name, topicId)
	if err != nil {
		return domain.TopicPage{}, err
	}
	posts, err := s.storage.Posts(ctx, topic.Id)
	if err != nil {
		return domain.TopicPage{}, err
	}
	return domain.TopicPage{Topic: topic, Posts: posts}, nil
}

func (s *Post) Create(ctx context.Context, data domain.PostCreationData) (domain.PostId, error) {
	data = data.Trimmed()
	if err := s.validator.Post(data); err != nil {
		return "", err
	}

	post := domain.Post{
		Id:       s.newId(),
		TopicId:  data.TopicId,
		Username: data.Username,
		Title:    data.Title,
		Body:     data.Body,
	}
	if err := s.storage.CreatePost(ctx, data.Family.Name, post); err != nil {
		return "", err
	}

	s.publish(ctx, domain.Event{
		Type:     domain.EventPostCreated,
		Family:   data.Family.Name,
		TopicId:  post.TopicId,
		PostId:   post.Id,
		Username: post.Username,
		Title:    post.Title,
	})
	return post.Id, nil
}

// Delete removes the caller's post by id. The event names the family and topic
// the post was stored under, which the request path does not guarantee.
func (s *Post) Delete(ctx context.Context, family domain.Family, topicId domain.TopicId, postId domain.PostId, username domain.Username) (domain.DeleteOutcome, error) {
	postId = strings.TrimSpace(postId)
	if postId == "" {
		return domain.DeleteOutcomeUnknown, internal_errors.BadRequest("Invalid form: post_id is required")
	}

	location, outcome, err := s.storage.DeletePost(ctx, postId, username)
	if err != nil {
		return domain.DeleteOutcomeUnknown, err
	}
	observeDelete("post", postId, username, outcome)
	if outcome != domain.DeleteOutcomeDeleted {
		return outcome, nil
	}
	if location.Family != family.Name || location.TopicId != topicId {
		logger.Log.Info("post deleted through another topic path",
			"post_id", postId, "path_family", family.Name, "path_topic_id", topicId,
			"family", location.Family, "topic_id", location.TopicId)
	}
	s.publish(ctx, domain.Event{Type: domain.EventPostDeleted, Family: location.Family, TopicId: location.TopicId, PostId: postId, Username: username})
	return outcome, nil
}
