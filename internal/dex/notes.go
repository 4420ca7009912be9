// ABOUTME: Note (timeline item) operations: list, get-for-contact, create, update, delete.
// ABOUTME: Notes default event_time to the current UTC time and always nest their contact associations.

package dex

import (
	"context"
	"net/http"
	"time"
)

// CreateNoteParams holds the fields for creating a note. EventTime is
// an ISO 8601 timestamp; when empty, the current UTC time is used.
type CreateNoteParams struct {
	Note       string
	ContactIDs []string
	EventTime  string
}

type noteContact struct {
	ContactID string `json:"contact_id"`
}

type noteContacts struct {
	Data []noteContact `json:"data"`
}

type timelineEventBody struct {
	Note        string       `json:"note"`
	EventTime   string       `json:"event_time"`
	MeetingType string       `json:"meeting_type"`
	Contacts    noteContacts `json:"timeline_items_contacts"`
}

// ListNotes fetches notes with pagination.
func (c *Client) ListNotes(ctx context.Context, page PageParams) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/timeline_items", page.values(), nil)
}

// GetNotesForContact fetches all notes associated with a contact.
func (c *Client) GetNotesForContact(ctx context.Context, contactID string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/timeline_items/contacts/"+contactID, nil, nil)
}

// CreateNote creates a note associated with the given contacts. The
// association list is always sent, even when empty; this matches the
// remote schema, which treats the join table as part of the event.
func (c *Client) CreateNote(ctx context.Context, params CreateNoteParams) (map[string]any, error) {
	eventTime := params.EventTime
	if eventTime == "" {
		eventTime = time.Now().UTC().Format(time.RFC3339)
	}

	contacts := make([]noteContact, 0, len(params.ContactIDs))
	for _, id := range params.ContactIDs {
		contacts = append(contacts, noteContact{ContactID: id})
	}

	body := timelineEventBody{
		Note:        params.Note,
		EventTime:   eventTime,
		MeetingType: "note",
		Contacts:    noteContacts{Data: contacts},
	}

	return c.do(ctx, http.MethodPost, "/timeline_items", nil, map[string]any{"timeline_event": body})
}

// UpdateNote replaces the note text. Other fields are not updatable.
func (c *Client) UpdateNote(ctx context.Context, noteID, note string) (map[string]any, error) {
	body := map[string]any{"timeline_event": map[string]string{"note": note}}
	return c.do(ctx, http.MethodPut, "/timeline_items/"+noteID, nil, body)
}

// DeleteNote deletes a note.
func (c *Client) DeleteNote(ctx context.Context, noteID string) (map[string]any, error) {
	return c.do(ctx, http.MethodDelete, "/timeline_items/"+noteID, nil, nil)
}
