// ABOUTME: Tests for the tool catalog: completeness, schemas, and required markers.
// ABOUTME: The catalog must mirror the client's parameters exactly.

package tools

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/dex-mcp/internal/dex"
)

func newCatalogDispatcher() *Dispatcher {
	client := dex.NewClient(dex.ClientConfig{APIKey: "unused"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDispatcher(client, logger)
}

func TestCatalogCompleteness(t *testing.T) {
	d := newCatalogDispatcher()

	want := []string{
		"dex_list_contacts",
		"dex_get_contact",
		"dex_search_contacts",
		"dex_create_contact",
		"dex_update_contact",
		"dex_delete_contact",
		"dex_list_notes",
		"dex_get_notes_for_contact",
		"dex_create_note",
		"dex_update_note",
		"dex_delete_note",
		"dex_list_reminders",
		"dex_create_reminder",
		"dex_update_reminder",
		"dex_complete_reminder",
		"dex_delete_reminder",
	}

	tools := d.Tools()
	require.Len(t, tools, len(want))

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Definition.Name
	}
	assert.Equal(t, want, names)
}

func TestCatalogDescriptionsAndHandlers(t *testing.T) {
	d := newCatalogDispatcher()

	for _, tool := range d.Tools() {
		assert.NotEmpty(t, tool.Definition.Description, "tool %s has no description", tool.Definition.Name)
		assert.NotNil(t, tool.Handler, "tool %s has no handler", tool.Definition.Name)
	}
}

func TestCatalogRequiredMarkers(t *testing.T) {
	d := newCatalogDispatcher()

	required := map[string][]string{
		"dex_list_contacts":         nil,
		"dex_get_contact":           {"contact_id"},
		"dex_search_contacts":       {"email"},
		"dex_create_contact":        {"first_name", "last_name"},
		"dex_update_contact":        {"contact_id"},
		"dex_delete_contact":        {"contact_id"},
		"dex_list_notes":            nil,
		"dex_get_notes_for_contact": {"contact_id"},
		"dex_create_note":           {"note", "contact_ids"},
		"dex_update_note":           {"note_id", "note"},
		"dex_delete_note":           {"note_id"},
		"dex_list_reminders":        nil,
		"dex_create_reminder":       {"title", "due_date"},
		"dex_update_reminder":       {"reminder_id"},
		"dex_complete_reminder":     {"reminder_id"},
		"dex_delete_reminder":       {"reminder_id"},
	}

	for _, tool := range d.Tools() {
		want, ok := required[tool.Definition.Name]
		require.True(t, ok, "unexpected tool %s", tool.Definition.Name)
		assert.ElementsMatch(t, want, tool.Definition.InputSchema.Required,
			"required markers for %s", tool.Definition.Name)
	}
}

func TestCatalogPaginationSchemas(t *testing.T) {
	d := newCatalogDispatcher()

	for _, name := range []string{"dex_list_contacts", "dex_list_notes", "dex_list_reminders"} {
		var found bool
		for _, tool := range d.Tools() {
			if tool.Definition.Name != name {
				continue
			}
			found = true
			props := tool.Definition.InputSchema.Properties
			require.Contains(t, props, "limit", "%s schema missing limit", name)
			require.Contains(t, props, "offset", "%s schema missing offset", name)

			limit := props["limit"].(map[string]any)
			assert.Equal(t, float64(10), limit["default"], "%s limit default", name)
		}
		require.True(t, found, "tool %s not in catalog", name)
	}
}
