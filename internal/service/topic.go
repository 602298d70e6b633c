package service

import (
	"context"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/events"
	"github.com/coolfrog-dev/coolfrog/internal/validation"
)

type TopicService interface {
	List(ctx context.Context, family domain.Family) ([]domain.Topic, error)
	Create(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error)
	Delete(ctx context.Context, family domain.Family, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error)
}

type TopicStorage interface {
	Topics(ctx context.Context, family domain.FamilyName) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, topic domain.Topic) error
	DeleteTopic(ctx context.Context, family domain.FamilyName, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error)
}

type TopicValidator interface {
	Topic(data domain.TopicCreationData) error
}

type Topic struct {
	storage   TopicStorage
	validator TopicValidator
	deps
}

func NewTopic(storage TopicStorage, validator TopicValidator, publisher events.Publisher) *Topic {
	return &Topic{storage: storage, validator: validator, deps: newDeps(publisher)}
}

func (s *Topic) List(ctx context.Context, family domain.Family) ([]domain.Topic, error) {
	return s.storage.Topics(ctx, family.Name)
}

// Create trims and validates the form, then stores a new topic owned by data.Username.
// Meetup fields are kept only for meetup families and only those that fit the meeting type.
func (s *Topic) Create(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	data = data.Trimmed()
	if err := s.validator.Topic(data); err != nil {
		return "", err
	}

	topic := domain.Topic{
		Id:       s.newId(),
		Family:   data.Family.Name,
		Title:    data.Title,
		Username: data.Username,
	}
	if data.Family.IsMeetup() {
		dateTime, err := validation.ParseDateTime(data.DateTime)
		if err != nil {
			return "", err
		}
		topic.EmailGroup = data.EmailGroup
		topic.Description = data.Description
		topic.MeetingType = data.MeetingType
		topic.DateTime = dateTime
		switch data.MeetingType {
		case domain.MeetingInPerson:
			topic.Location = data.Location
		case domain.MeetingOnline:
			topic.Link = data.Link
		}
	}

	if err := s.storage.CreateTopic(ctx, topic); err != nil {
		return "", err
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventTopicCreated,
		Family:     topic.Family,
		TopicId:    topic.Id,
		Username:   topic.Username,
		Title:      topic.Title,
		EmailGroup: topic.EmailGroup,
	})
	return topic.Id, nil
}

// Delete removes the topic and its posts if username owns it.
// A missing or foreign topic is reported through the outcome, not an error.
func (s *Topic) Delete(ctx context.Context, family domain.Family, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error) {
	outcome, err := s.storage.DeleteTopic(ctx, family.Name, id, username)
	if err != nil {
		return domain.DeleteOutcomeUnknown, err
	}
	observeDelete("topic", id, username, outcome)
	if outcome == domain.DeleteOutcomeDeleted {
		s.publish(ctx, domain.Event{Type: domain.EventTopicDeleted, Family: family.Name, TopicId: id, Username: username})
	}
	return outcome, nil
}
