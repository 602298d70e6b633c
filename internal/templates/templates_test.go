package templates

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	templates, err := Load()
	require.NoError(t, err)

	assert.Len(t, templates, 2)
	assert.Contains(t, templates, "topics.html")
	assert.Contains(t, templates, "topic.html")
	for name, tmpl := range templates {
		assert.NotNil(t, tmpl.Lookup("csrf"), "%s misses the partials", name)
	}
}

func TestStatic(t *testing.T) {
	data, err := fs.ReadFile(Static(), "app.js")
	require.NoError(t, err)
	assert.Contains(t, string(data), "js-delete")
}

func TestDict(t *testing.T) {
	m, err := dict("Action", "/forums/delete-topic/1", "CSRF", "tok")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Action": "/forums/delete-topic/1", "CSRF": "tok"}, m)

	_, err = dict("odd")
	assert.Error(t, err)

	_, err = dict(1, "value")
	assert.Error(t, err)
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 5, 17, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-17 18:30 UTC", formatTime(ts))
	assert.Equal(t, "2024-05-17 18:30 UTC", formatTime(&ts))
	assert.Equal(t, "", formatTime((*time.Time)(nil)))
	assert.Equal(t, "", formatTime(time.Time{}))
	assert.Equal(t, "", formatTime("yesterday"))
}
