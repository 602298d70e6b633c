package domain

import (
	"strings"
	"time"
)

type Post struct {
	Id        PostId    `db:"id"`
	TopicId   TopicId   `db:"topic_id"`
	Username  Username  `db:"username"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func (p Post) OwnedBy(username Username) bool {
	return p.Username == username
}

type PostCreationData struct {
	Family   Family   `form:"-" validate:"-"`
	TopicId  TopicId  `form:"-"`
	Username Username `form:"-"`

	Title string `form:"title" validate:"required"`
	Body  string `form:"body" validate:"required"`
}

func (d PostCreationData) Trimmed() PostCreationData {
	d.Title = strings.TrimSpace(d.Title)
	d.Body = strings.TrimSpace(d.Body)
	return d
}

// TopicPage is a topic together with its posts, newest first.
type TopicPage struct {
	Topic Topic
	Posts []Post
}

// PostLocation is where a post lived, read back from the deleted row.
type PostLocation struct {
	Family  FamilyName `db:"family"`
	TopicId TopicId    `db:"topic_id"`
}
