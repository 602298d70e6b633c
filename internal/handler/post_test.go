package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
)

func TestListPostsHandler(t *testing.T) {
	t.Run("RendersPostsWithOwnerControls", func(t *testing.T) {
		th := newTestHandler()
		when := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
		th.posts.PageFunc = func(family domain.Family, topicId domain.TopicId) (domain.TopicPage, error) {
			assert.Equal(t, "t-1", topicId)
			return domain.TopicPage{
				Topic: domain.Topic{
					Id: "t-1", Family: "meetups", Title: "Go night", Username: "bob",
					MeetingType: domain.MeetingOnline, Link: "https://meet.example.com/go", DateTime: &when,
				},
				Posts: []domain.Post{
					{Id: "p-new", TopicId: "t-1", Username: "alice", Title: "Newest", Body: "**bold** <script>x()</script>"},
					{Id: "p-old", TopicId: "t-1", Username: "bob", Title: "Oldest", Body: "plain"},
				},
			}, nil
		}

		rr := serve(th.ListPostsHandler, meetups, "alice", http.MethodGet, "/meetups/topic/{topicID}", "/meetups/topic/t-1", nil)

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Go night")
		assert.Contains(t, body, "https://meet.example.com/go")
		assert.Contains(t, body, "2025-03-14 18:30 UTC")
		assert.Contains(t, body, "<strong>bold</strong>")
		assert.NotContains(t, body, "<script>x()")
		assert.Contains(t, body, `value="p-new"`)
		assert.NotContains(t, body, `value="p-old"`)
		assert.Less(t, strings.Index(body, "Newest"), strings.Index(body, "Oldest"))
	})

	t.Run("UnknownTopic", func(t *testing.T) {
		th := newTestHandler()
		th.posts.PageFunc = func(domain.Family, domain.TopicId) (domain.TopicPage, error) {
			return domain.TopicPage{}, internal_errors.NotFound("Topic not found")
		}

		rr := serve(th.ListPostsHandler, forums, "alice", http.MethodGet, "/forums/topic/{topicID}", "/forums/topic/nope", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.NotContains(t, rr.Body.String(), "<html")
	})
}

func TestAddPostHandler(t *testing.T) {
	th := newTestHandler()
	var got domain.PostCreationData
	th.posts.CreateFunc = func(data domain.PostCreationData) (domain.PostId, error) {
		got = data
		return "p-1", nil
	}

	rr := serve(th.AddPostHandler, forums, "alice", http.MethodPost, "/forums/topic/{topicID}/add-post", "/forums/topic/t-1/add-post",
		url.Values{"title": {"Re"}, "body": {"hello"}})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/forums/topic/t-1", rr.Header().Get("Location"))
	assert.Equal(t, domain.PostCreationData{Family: forums, TopicId: "t-1", Username: "alice", Title: "Re", Body: "hello"}, got)

	th.posts.CreateFunc = func(domain.PostCreationData) (domain.PostId, error) {
		return "", internal_errors.NotFound("Topic not found")
	}
	rr = serve(th.AddPostHandler, forums, "alice", http.MethodPost, "/forums/topic/{topicID}/add-post", "/forums/topic/gone/add-post",
		url.Values{"title": {"Re"}, "body": {"hello"}})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePostHandler(t *testing.T) {
	th := newTestHandler()
	th.posts.DeleteFunc = func(family domain.Family, topicId domain.TopicId, postId domain.PostId, username domain.Username) (domain.DeleteOutcome, error) {
		if postId == "" {
			return domain.DeleteOutcomeUnknown, internal_errors.BadRequest("Invalid form: post_id is required")
		}
		assert.Equal(t, "t-1", topicId)
		assert.Equal(t, "p-1", postId)
		return domain.DeleteOutcomeForbidden, nil
	}

	rr := serve(th.DeletePostHandler, forums, "mallory", http.MethodPost, "/forums/topic/{topicID}/delete-post", "/forums/topic/t-1/delete-post",
		url.Values{"post_id": {"p-1"}})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(th.DeletePostHandler, forums, "mallory", http.MethodPost, "/forums/topic/{topicID}/delete-post", "/forums/topic/t-1/delete-post",
		url.Values{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
