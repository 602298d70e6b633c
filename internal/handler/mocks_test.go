package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/markdown"
	mw "github.com/coolfrog-dev/coolfrog/internal/middleware"
	"github.com/coolfrog-dev/coolfrog/internal/templates"
)

// --- Mocks ---

type MockTopicService struct {
	ListFunc   func(family domain.Family) ([]domain.Topic, error)
	CreateFunc func(data domain.TopicCreationData) (domain.TopicId, error)
	DeleteFunc func(family domain.Family, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error)

	mu    sync.Mutex
	calls int
}

func (m *MockTopicService) count() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

func (m *MockTopicService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockTopicService) List(_ context.Context, family domain.Family) ([]domain.Topic, error) {
	m.count()
	if m.ListFunc != nil {
		return m.ListFunc(family)
	}
	return []domain.Topic{}, nil
}

func (m *MockTopicService) Create(_ context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	m.count()
	if m.CreateFunc != nil {
		return m.CreateFunc(data)
	}
	return "new-topic", nil
}

func (m *MockTopicService) Delete(_ context.Context, family domain.Family, id domain.TopicId, username domain.Username) (domain.DeleteOutcome, error) {
	m.count()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(family, id, username)
	}
	return domain.DeleteOutcomeDeleted, nil
}

type MockPostService struct {
	PageFunc   func(family domain.Family, topicId domain.TopicId) (domain.TopicPage, error)
	CreateFunc func(data domain.PostCreationData) (domain.PostId, error)
	DeleteFunc func(family domain.Family, topicId domain.TopicId, postId domain.PostId, username domain.Username) (domain.DeleteOutcome, error)

	mu    sync.Mutex
	calls int
}

func (m *MockPostService) count() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

func (m *MockPostService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockPostService) Page(_ context.Context, family domain.Family, topicId domain.TopicId) (domain.TopicPage, error) {
	m.count()
	if m.PageFunc != nil {
		return m.PageFunc(family, topicId)
	}
	return domain.TopicPage{Topic: domain.Topic{Id: topicId, Family: family.Name}}, nil
}

func (m *MockPostService) Create(_ context.Context, data domain.PostCreationData) (domain.PostId, error) {
	m.count()
	if m.CreateFunc != nil {
		return m.CreateFunc(data)
	}
	return "new-post", nil
}

func (m *MockPostService) Delete(_ context.Context, family domain.Family, topicId domain.TopicId, postId domain.PostId, username domain.Username) (domain.DeleteOutcome, error) {
	m.count()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(family, topicId, postId, username)
	}
	return domain.DeleteOutcomeDeleted, nil
}

type MockUserService struct {
	EmailGroupsFunc func(username domain.Username) ([]string, error)
}

func (m *MockUserService) EmailGroups(_ context.Context, username domain.Username) ([]string, error) {
	if m.EmailGroupsFunc != nil {
		return m.EmailGroupsFunc(username)
	}
	return []string{}, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// --- Helpers ---

var (
	forums  = domain.Family{Name: "forums", Title: "Forum Topics", Schema: domain.SchemaBasic}
	meetups = domain.Family{Name: "meetups", Title: "Meetup Topics", Schema: domain.SchemaMeetup}
)

type testHandler struct {
	*Handler
	topics *MockTopicService
	posts  *MockPostService
	users  *MockUserService
	health *MockHealthChecker
}

func newTestHandler() *testHandler {
	th := &testHandler{
		topics: &MockTopicService{},
		posts:  &MockPostService{},
		users:  &MockUserService{},
		health: &MockHealthChecker{},
	}
	th.Handler = New(templates.MustLoad(), []domain.Family{forums, meetups}, markdown.New(), th.topics, th.posts, th.users, th.health)
	return th
}

// serve runs h as if the router had matched pattern under family for username.
func serve(h http.HandlerFunc, family domain.Family, username domain.Username, method, pattern, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	r := chi.NewRouter()
	r.Use(WithFamily(family))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := &domain.Session{Token: "tok", Username: username}
			next.ServeHTTP(w, r.WithContext(mw.WithSession(r.Context(), s)))
		})
	})
	r.Method(method, pattern, h)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
