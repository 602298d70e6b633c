package service

import (
	"context"
	"sync"
	"time"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

// --- Mocks ---

type MockTopicStorage struct {
	topicsFunc      func(family domain.FamilyName) ([]domain.Topic, error)
	createTopicFunc func(topic domain.Topic) error
	deleteTopicFunc func(family domain.FamilyName, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error)

	mu      sync.Mutex
	created []domain.Topic
}

func (m *MockTopicStorage) Topics(_ context.Context, family domain.FamilyName) ([]domain.Topic, error) {
	if m.topicsFunc != nil {
		return m.topicsFunc(family)
	}
	return []domain.Topic{}, nil
}

func (m *MockTopicStorage) CreateTopic(_ context.Context, topic domain.Topic) error {
	m.mu.Lock()
	m.created = append(m.created, topic)
	m.mu.Unlock()
	if m.createTopicFunc != nil {
		return m.createTopicFunc(topic)
	}
	return nil
}

func (m *MockTopicStorage) DeleteTopic(_ context.Context, family domain.FamilyName, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error) {
	if m.deleteTopicFunc != nil {
		return m.deleteTopicFunc(family, id, username)
	}
	return domain.DeleteOutcomeDeleted, nil
}

type MockPostStorage struct {
	topicFunc      func(family domain.FamilyName, id domain.TopicId) (domain.Topic, error)
	postsFunc      func(topicId domain.TopicId) ([]domain.Post, error)
	createPostFunc func(family domain.FamilyName, post domain.Post) error
	deletePostFunc func(id domain.PostId, username domain.Username) (domain.PostLocation, domain.DeleteOutcome, error)

	mu          sync.Mutex
	postsCalled bool
	deleteCalls int
	created     []domain.Post
}

func (m *MockPostStorage) Topic(_ context.Context, family domain.FamilyName, id domain.TopicId) (domain.Topic, error) {
	if m.topicFunc != nil {
		return m.topicFunc(family, id)
	}
	return domain.Topic{Id: id, Family: family}, nil
}

func (m *MockPostStorage) Posts(_ context.Context, topicId domain.TopicId) ([]domain.Post, error) {
	m.mu.Lock()
	m.postsCalled = true
	m.mu.Unlock()
	if m.postsFunc != nil {
		return m.postsFunc(topicId)
	}
	return []domain.Post{}, nil
}

func (m *MockPostStorage) CreatePost(_ context.Context, family domain.FamilyName, post domain.Post) error {
	m.mu.Lock()
	m.created = append(m.created, post)
	m.mu.Unlock()
	if m.createPostFunc != nil {
		return m.createPostFunc(family, post)
	}
	return nil
}

func (m *MockPostStorage) DeletePost(_ context.Context, id domain.PostId, username domain.Username) (domain.PostLocation, domain.DeleteOutcome, error) {
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	if m.deletePostFunc != nil {
		return m.deletePostFunc(id, username)
	}
	return domain.PostLocation{Family: forums.Name, TopicId: "t-1"}, domain.DeleteOutcomeDeleted, nil
}

type MockValidator struct {
	topicFunc func(data domain.TopicCreationData) error
	postFunc  func(data domain.PostCreationData) error
}

func (m *MockValidator) Topic(data domain.TopicCreationData) error {
	if m.topicFunc != nil {
		return m.topicFunc(data)
	}
	return nil
}

func (m *MockValidator) Post(data domain.PostCreationData) error {
	if m.postFunc != nil {
		return m.postFunc(data)
	}
	return nil
}

type MockPublisher struct {
	err error

	mu     sync.Mutex
	events []domain.Event
}

func (m *MockPublisher) Publish(_ context.Context, event domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

func (m *MockPublisher) Events() []domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Event(nil), m.events...)
}

type MockUserStorage struct {
	userFunc func(username domain.Username) (domain.User, error)
}

func (m *MockUserStorage) User(_ context.Context, username domain.Username) (domain.User, error) {
	if m.userFunc != nil {
		return m.userFunc(username)
	}
	return domain.User{Username: username}, nil
}

// --- Helpers ---

var (
	forums  = domain.Family{Name: "forums", Title: "Forum Topics", Schema: domain.SchemaBasic}
	meetups = domain.Family{Name: "meetups", Title: "Meetup Topics", Schema: domain.SchemaMeetup}
	fixedAt = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
)

func fixed(d *deps, id string) {
	d.now = func() time.Time { return fixedAt }
	d.newId = func() string { return id }
}
