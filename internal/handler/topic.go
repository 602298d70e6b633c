package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

func (h *Handler) ListTopicsHandler(w http.ResponseWriter, r *http.Request) {
	family, s, ok := requestScope(w, r)
	if !ok {
		return
	}

	topics, err := h.topics.List(r.Context(), family)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data := TopicsPageData{Family: family, Topics: topicRows(topics, s.Username)}
	if family.IsMeetup() {
		groups, err := h.users.EmailGroups(r.Context(), s.Username)
		if err != nil {
			writeError(w, r, err)
			return
		}
		data.EmailGroups = groups
		data.MeetingTypes = []string{domain.MeetingInPerson, domain.MeetingOnline}
	}

	h.renderTemplate(w, r, "topics.html", data)
}

func (h *Handler) AddTopicHandler(w http.ResponseWriter, r *http.Request) {
	family, s, ok := requestScope(w, r)
	if !ok {
		return
	}
	if !parseForm(w, r) {
		return
	}

	data := domain.TopicCreationData{
		Family:      family,
		Username:    s.Username,
		Title:       r.PostFormValue("title"),
		EmailGroup:  r.PostFormValue("email_group"),
		Description: r.PostFormValue("description"),
		MeetingType: r.PostFormValue("meeting_type"),
		Location:    r.PostFormValue("location"),
		Link:        r.PostFormValue("link"),
		DateTime:    r.PostFormValue("date_time"),
	}
	if _, err := h.topics.Create(r.Context(), data); err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, family.Path(), http.StatusSeeOther)
}

// DeleteTopicHandler answers 204 whether or not anything was removed.
func (h *Handler) DeleteTopicHandler(w http.ResponseWriter, r *http.Request) {
	family, s, ok := requestScope(w, r)
	if !ok {
		return
	}

	if _, err := h.topics.Delete(r.Context(), family, chi.URLParam(r, "topicID"), s.Username); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
