package domain

import (
	"strings"
	"time"
)

const (
	MeetingInPerson = "In Person"
	MeetingOnline   = "Online"
)

// Topic is a thread in a family. Meetup columns stay empty for basic families.
type Topic struct {
	Id        TopicId    `db:"id"`
	Family    FamilyName `db:"family"`
	Title     string     `db:"title"`
	Username  Username   `db:"username"`
	CreatedAt time.Time  `db:"created_at"`

	EmailGroup  string     `db:"email_group"`
	Description string     `db:"description"`
	MeetingType string     `db:"meeting_type"`
	Location    string     `db:"location"`
	Link        string     `db:"link"`
	DateTime    *time.Time `db:"date_time"`
}

func (t Topic) OwnedBy(username Username) bool {
	return t.Username == username
}

func (t Topic) InPerson() bool {
	return t.MeetingType == MeetingInPerson
}

func (t Topic) Online() bool {
	return t.MeetingType == MeetingOnline
}

// to iterate thru layers: handler -> service -> storage
type TopicCreationData struct {
	Family   Family   `form:"-" validate:"-"`
	Username Username `form:"-"`

	Title       string `form:"title" validate:"required"`
	EmailGroup  string `form:"email_group"`
	Description string `form:"description"`
	MeetingType string `form:"meeting_type"`
	Location    string `form:"location"`
	Link        string `form:"link"`
	DateTime    string `form:"date_time"`
}

// Trimmed returns a copy with surrounding whitespace removed from every text field.
func (d TopicCreationData) Trimmed() TopicCreationData {
	d.Title = strings.TrimSpace(d.Title)
	d.EmailGroup = strings.TrimSpace(d.EmailGroup)
	d.Description = strings.TrimSpace(d.Description)
	d.MeetingType = strings.TrimSpace(d.MeetingType)
	d.Location = strings.TrimSpace(d.Location)
	d.Link = strings.TrimSpace(d.Link)
	d.DateTime = strings.TrimSpace(d.DateTime)
	return d
}
