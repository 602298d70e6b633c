package domain

import "time"

type EventType string

const (
	EventTopicCreated EventType = "topic_created"
	EventTopicDeleted EventType = "topic_deleted"
	EventPostCreated  EventType = "post_created"
	EventPostDeleted  EventType = "post_deleted"
)

// Event describes a completed mutation. EmailGroup is set for meetup topics so
// downstream mailers can notify the group.
type Event struct {
	Type       EventType  `json:"type"`
	Family     FamilyName `json:"family"`
	TopicId    TopicId    `json:"topic_id"`
	PostId     PostId     `json:"post_id,omitempty"`
	Username   Username   `json:"username"`
	Title      string     `json:"title,omitempty"`
	EmailGroup string     `json:"email_group,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
