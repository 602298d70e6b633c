package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coolfrog-dev/coolfrog/internal/config"
	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/handler"
	"github.com/coolfrog-dev/coolfrog/internal/metrics"
	mw "github.com/coolfrog-dev/coolfrog/internal/middleware"
	"github.com/coolfrog-dev/coolfrog/internal/templates"
)

// Route is one entry of the table mounted under every family.
type Route struct {
	Method  string
	Pattern string
	Action  string
	Handler http.HandlerFunc
}

// Routes is the fixed action table of a family, relative to /{family}.
func Routes(h *handler.Handler) []Route {
	return []Route{
		{http.MethodGet, "/", "ListTopics", h.ListTopicsHandler},
		{http.MethodPost, "/add-topic", "AddTopic", h.AddTopicHandler},
		{http.MethodPost, "/delete-topic/{topicID}", "DeleteTopic", h.DeleteTopicHandler},
		{http.MethodGet, "/topic/{topicID}", "ListPosts", h.ListPostsHandler},
		{http.MethodPost, "/topic/{topicID}/add-post", "AddPost", h.AddPostHandler},
		{http.MethodPost, "/topic/{topicID}/delete-post", "DeletePost", h.DeletePostHandler},
	}
}

type Dependencies struct {
	Handler  *handler.Handler
	Sessions mw.SessionResolver
	Public   config.Public
}

func New(deps *Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeadersWithCSP(deps.Public.SecureCookies, mw.DefaultCSP))
	if len(deps.Public.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Public.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Content-Type", "X-CSRF-Token"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.NotFound)

	// keep in sync with the reserved family names in config
	r.Get("/healthz", deps.Handler.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(templates.Static()))))

	families := deps.Handler.Families
	if len(families) > 0 {
		home := families[0].Path()
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, home, http.StatusSeeOther)
		})
	}

	for _, family := range families {
		r.Route(family.Path(), func(fr chi.Router) {
			mountFamily(fr, family, deps)
		})
	}

	return r
}

// mountFamily gates every action of the family behind the session check.
// The gate runs before route matching so unknown paths are gated too; the
// CSRF check is attached per route so unknown POSTs still get 400.
func mountFamily(fr chi.Router, family domain.Family, deps *Dependencies) {
	fr.Use(handler.WithFamily(family))
	fr.Use(mw.RequireSession(deps.Sessions))
	if deps.Public.CSRF {
		fr.Use(mw.GenerateCSRFToken(csrfConfig(deps.Public)))
	}

	fr.NotFound(handler.NotFound)
	fr.MethodNotAllowed(handler.NotFound)

	for _, route := range Routes(deps.Handler) {
		chain := fr.With(handler.WithAction(route.Action))
		// unmatched POSTs fall through to NotFound without a token check
		if deps.Public.CSRF && route.Method != http.MethodGet {
			chain = chain.With(mw.ValidateCSRFToken(csrfConfig(deps.Public)))
		}
		chain.Method(route.Method, route.Pattern, route.Handler)
	}
}

func csrfConfig(public config.Public) mw.CSRFConfig {
	return mw.CSRFConfig{
		SecureCookies: public.SecureCookies,
		CookieName:    mw.DefaultCSRFCookie,
		FormField:     mw.DefaultCSRFField,
		Header:        mw.DefaultCSRFHeader,
	}
}
