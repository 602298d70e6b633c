package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
	mw "github.com/coolfrog-dev/coolfrog/internal/middleware"
)

type CommonTemplateData struct {
	CSRFToken string
	Username  domain.Username
	Family    domain.Family
	Families  []domain.Family
	Error     string
}

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

type TopicRow struct {
	domain.Topic
	CanDelete bool
}

type TopicsPageData struct {
	Family       domain.Family
	Topics       []TopicRow
	EmailGroups  []string
	MeetingTypes []string
}

type PostView struct {
	domain.Post
	Body      template.HTML
	CanDelete bool
}

type TopicPageData struct {
	Family domain.Family
	Topic  domain.Topic
	Posts  []PostView
}

func (h *Handler) initCommonTemplateData(r *http.Request) CommonTemplateData {
	common := CommonTemplateData{
		CSRFToken: mw.GetCSRFTokenFromContext(r),
		Families:  h.Families,
	}
	if s := mw.GetSessionFromContext(r); s != nil {
		common.Username = s.Username
	}
	if family, ok := familyFromRequest(r); ok {
		common.Family = family
	}
	return common
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		logger.Log.Error("template not found", "template", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	wrapped := TemplateData{
		Data:   data,
		Common: h.initCommonTemplateData(r),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func topicRows(topics []domain.Topic, username domain.Username) []TopicRow {
	rows := make([]TopicRow, len(topics))
	for i, t := range topics {
		rows[i] = TopicRow{Topic: t, CanDelete: t.OwnedBy(username)}
	}
	return rows
}

func (h *Handler) postViews(posts []domain.Post, username domain.Username) []PostView {
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = PostView{Post: p, Body: h.TextProcessor.Render(p.Body), CanDelete: p.OwnedBy(username)}
	}
	return views
}
