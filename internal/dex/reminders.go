// ABOUTME: Reminder operations: list, create, update, complete, delete.
// ABOUTME: Reminders omit their contact associations entirely when the list is empty.

package dex

import (
	"context"
	"net/http"
)

// CreateReminderParams holds the fields for creating a reminder.
// DueDate is a calendar date in YYYY-MM-DD form; the API field name is
// due_at_date.
type CreateReminderParams struct {
	Title      string
	DueDate    string
	Text       *string
	IsComplete bool
	ContactIDs []string
}

// UpdateReminderParams is the subset of reminder fields to change. Nil
// fields are omitted from the request body, leaving the remote value
// untouched.
type UpdateReminderParams struct {
	Title      *string `json:"title,omitempty"`
	Text       *string `json:"text,omitempty"`
	DueDate    *string `json:"due_at_date,omitempty"`
	IsComplete *bool   `json:"is_complete,omitempty"`
}

type reminderContact struct {
	ContactID string `json:"contact_id"`
}

type reminderContacts struct {
	Data []reminderContact `json:"data"`
}

type createReminderBody struct {
	Title      string            `json:"title"`
	Text       *string           `json:"text"`
	IsComplete bool              `json:"is_complete"`
	DueAtDate  string            `json:"due_at_date"`
	Contacts   *reminderContacts `json:"reminders_contacts,omitempty"`
}

// ListReminders fetches reminders with pagination.
func (c *Client) ListReminders(ctx context.Context, page PageParams) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/reminders", page.values(), nil)
}

// CreateReminder creates a reminder, optionally associated with
// contacts. An empty contact list leaves reminders_contacts out of the
// body entirely.
func (c *Client) CreateReminder(ctx context.Context, params CreateReminderParams) (map[string]any, error) {
	body := createReminderBody{
		Title:      params.Title,
		Text:       params.Text,
		IsComplete: params.IsComplete,
		DueAtDate:  params.DueDate,
	}

	if len(params.ContactIDs) > 0 {
		contacts := make([]reminderContact, 0, len(params.ContactIDs))
		for _, id := range params.ContactIDs {
			contacts = append(contacts, reminderContact{ContactID: id})
		}
		body.Contacts = &reminderContacts{Data: contacts}
	}

	return c.do(ctx, http.MethodPost, "/reminders", nil, map[string]any{"reminder": body})
}

// UpdateReminder updates the provided subset of reminder fields.
func (c *Client) UpdateReminder(ctx context.Context, reminderID string, params UpdateReminderParams) (map[string]any, error) {
	return c.do(ctx, http.MethodPut, "/reminders/"+reminderID, nil, map[string]any{"reminder": params})
}

// DeleteReminder deletes a reminder.
func (c *Client) DeleteReminder(ctx context.Context, reminderID string) (map[string]any, error) {
	return c.do(ctx, http.MethodDelete, "/reminders/"+reminderID, nil, nil)
}

// CompleteReminder marks a reminder complete. Equivalent to
// UpdateReminder with is_complete=true.
func (c *Client) CompleteReminder(ctx context.Context, reminderID string) (map[string]any, error) {
	done := true
	return c.UpdateReminder(ctx, reminderID, UpdateReminderParams{IsComplete: &done})
}
