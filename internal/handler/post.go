package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

func (h *Handler) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	family, s, ok := requestScope(w, r)
	if !ok {
		return
	}

	page, err := h.posts.Page(r.Context(), family, chi.URLParam(r, "topicID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.renderTemplate(w, r, "topic.html", TopicPageData{
		Family: family,
		Topic:  page.Topic,
		Posts:  h.postViews(page.Posts, s.Username),
	})
}

func (h *Handler) AddPostHandler(w http.ResponseWriter, r *http.Request) {
	family, s, ok := requestScope(w, r)
	if !ok {
		return
	}
	if !parseForm(w, r) {
		return
	}

	topicId := chi.URLParam(r, "topicID")
	data := domain.PostCreationData{
		Family:   family,
		TopicId:  topicId,
		Username: s.Username,
		Title:    r.PostFormValue("title"),
		Body:     r.PostFormValue("body"),
	}
	if _, err := h.posts.Create(r.Context(), data); err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, family.TopicPath(topicId), http.StatusSeeOther)
}

// DeletePostHandler answers 204 whether or not anything was removed.
func (h *Handler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	family, s, ok := requestScope(w, r)
	if !ok {
		return
	}
	if !parseForm(w, r) {
		return
	}

	_, err := h.posts.Delete(r.Context(), family, chi.URLParam(r, "topicID"), r.PostFormValue("post_id"), s.Username)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
