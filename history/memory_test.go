package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/viewkit/views"
)

func TestMemoryNavigate(t *testing.T) {
	t.Run("initial entry", func(t *testing.T) {
		h := NewMemory("")
		assert.Equal(t, 1, h.Len())
		assert.Equal(t, "", h.Fragment())
		assert.Equal(t, "/", h.Path())
		assert.NotEqual(t, uuid.Nil, h.Current().ID)
	})

	t.Run("push", func(t *testing.T) {
		h := NewMemory("")
		require.NoError(t, h.Navigate("projects", views.NavigateOptions{}))
		require.NoError(t, h.Navigate("projects/1?tab=info", views.NavigateOptions{}))

		assert.Equal(t, 3, h.Len())
		assert.Equal(t, "projects/1?tab=info", h.Fragment())
		assert.Equal(t, "/projects/1", h.Path())
	})

	t.Run("replace", func(t *testing.T) {
		h := NewMemory("")
		require.NoError(t, h.Navigate("projects", views.NavigateOptions{}))
		first := h.Current().ID
		require.NoError(t, h.Navigate("projects/1", views.NavigateOptions{Replace: true}))

		assert.Equal(t, 2, h.Len())
		assert.Equal(t, "projects/1", h.Fragment())
		assert.NotEqual(t, first, h.Current().ID)
	})

	t.Run("push drops forward entries", func(t *testing.T) {
		h := NewMemory("")
		require.NoError(t, h.Navigate("a", views.NavigateOptions{}))
		require.NoError(t, h.Navigate("b", views.NavigateOptions{}))
		require.True(t, h.Back())
		require.NoError(t, h.Navigate("c", views.NavigateOptions{}))

		var fragments []string
		for _, e := range h.Entries() {
			fragments = append(fragments, e.Fragment)
		}
		assert.Equal(t, []string{"", "a", "c"}, fragments)
		assert.False(t, h.Forward())
	})

	t.Run("unique entry ids", func(t *testing.T) {
		h := NewMemory("")
		require.NoError(t, h.Navigate("a", views.NavigateOptions{}))
		require.NoError(t, h.Navigate("b", views.NavigateOptions{}))

		seen := make(map[uuid.UUID]bool)
		for _, e := range h.Entries() {
			assert.False(t, seen[e.ID])
			seen[e.ID] = true
		}
	})
}

func TestMemoryBackForward(t *testing.T) {
	h := NewMemory("")
	require.NoError(t, h.SetTitle("Projects"))
	require.NoError(t, h.Navigate("projects", views.NavigateOptions{}))
	require.NoError(t, h.SetTitle("Item"))
	require.NoError(t, h.Navigate("projects/1", views.NavigateOptions{}))

	assert.True(t, h.Back())
	assert.Equal(t, "projects", h.Fragment())
	assert.Equal(t, "Projects", h.Title())

	assert.True(t, h.Back())
	assert.Equal(t, "", h.Fragment())
	assert.Equal(t, "", h.Title())
	assert.False(t, h.Back())

	assert.True(t, h.Forward())
	assert.True(t, h.Forward())
	assert.Equal(t, "projects/1", h.Fragment())
	assert.Equal(t, "Item", h.Title())
	assert.False(t, h.Forward())
}

func TestMemoryEntriesAreCopied(t *testing.T) {
	h := NewMemory("")
	entries := h.Entries()
	entries[0].Fragment = "changed"
	assert.Equal(t, "", h.Fragment())
}

func TestMemoryWithRouter(t *testing.T) {
	h := NewMemory("")
	r := views.NewRouter().History(h).Document(h)
	require.NoError(t, r.RegisterViews(map[string]string{
		"projects":     "listView",
		"projects/:id": "itemView",
	}, map[string]string{
		"listView": "Projects",
		"itemView": "Projects | <name>",
	}))

	require.NoError(t, r.GoToView("listView", nil, views.NavigateOptions{}))
	require.NoError(t, r.GoToView("itemView", views.Attrs{"id": 7, "name": "seven"}, views.NavigateOptions{}))

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, "Projects | seven", h.Title())
	assert.Equal(t, "Projects | seven", h.Current().Title)
	assert.Equal(t, "projects/7", r.CurrentPath())

	require.True(t, h.Back())
	assert.Equal(t, "Projects", h.Title())
}
