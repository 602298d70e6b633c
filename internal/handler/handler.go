package handler

import (
	"context"
	"html/template"
	"net/http"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/markdown"
	"github.com/coolfrog-dev/coolfrog/internal/service"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Templates     map[string]*template.Template
	Families      []domain.Family
	TextProcessor *markdown.TextProcessor

	topics service.TopicService
	posts  service.PostService
	users  service.UserService
	health HealthChecker
}

func New(
	templates map[string]*template.Template,
	families []domain.Family,
	textProcessor *markdown.TextProcessor,
	topics service.TopicService,
	posts service.PostService,
	users service.UserService,
	health HealthChecker,
) *Handler {
	return &Handler{
		Templates:     templates,
		Families:      families,
		TextProcessor: textProcessor,
		topics:        topics,
		posts:         posts,
		users:         users,
		health:        health,
	}
}

type (
	familyKey struct{}
	actionKey struct{}
)

// WithFamily marks every request under a family mount with that family.
func WithFamily(family domain.Family) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), familyKey{}, family)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func familyFromRequest(r *http.Request) (domain.Family, bool) {
	family, ok := r.Context().Value(familyKey{}).(domain.Family)
	return family, ok
}

// WithAction names the route-table action serving the request, for logs.
func WithAction(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), actionKey{}, action)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func actionFromRequest(r *http.Request) string {
	action, _ := r.Context().Value(actionKey{}).(string)
	return action
}
