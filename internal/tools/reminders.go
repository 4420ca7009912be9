// ABOUTME: Reminder tools: list, create, update, complete, delete.
// ABOUTME: Reminders carry a calendar due date and optional contact associations.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/2389/dex-mcp/internal/dex"
)

func (d *Dispatcher) reminderTools() []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("dex_list_reminders",
				mcp.WithDescription("List all reminders from Dex CRM with pagination. Reminders can be associated with contacts and have due dates."),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of reminders to return (default: 10)"),
					mcp.DefaultNumber(10),
				),
				mcp.WithNumber("offset",
					mcp.Description("Number of reminders to skip for pagination (default: 0)"),
					mcp.DefaultNumber(0),
				),
			),
			Handler: d.listReminders,
		},
		{
			Definition: mcp.NewTool("dex_create_reminder",
				mcp.WithDescription("Create a new reminder, optionally associated with contacts."),
				mcp.WithString("title",
					mcp.Required(),
					mcp.Description("Reminder title"),
				),
				mcp.WithString("due_date",
					mcp.Required(),
					mcp.Description("Due date in YYYY-MM-DD format"),
				),
				mcp.WithArray("contact_ids",
					mcp.Description("List of contact UUIDs to associate with this reminder"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithString("text", mcp.Description("Additional reminder details")),
			),
			Handler: d.createReminder,
		},
		{
			Definition: mcp.NewTool("dex_update_reminder",
				mcp.WithDescription("Update an existing reminder. Only the provided fields are changed."),
				mcp.WithString("reminder_id",
					mcp.Required(),
					mcp.Description("The UUID of the reminder to update"),
				),
				mcp.WithString("title", mcp.Description("New title")),
				mcp.WithString("text", mcp.Description("New description text")),
				mcp.WithString("due_date", mcp.Description("New due date in YYYY-MM-DD format")),
				mcp.WithBoolean("is_complete", mcp.Description("Mark as complete or incomplete")),
			),
			Handler: d.updateReminder,
		},
		{
			Definition: mcp.NewTool("dex_complete_reminder",
				mcp.WithDescription("Mark a reminder as complete."),
				mcp.WithString("reminder_id",
					mcp.Required(),
					mcp.Description("The UUID of the reminder to complete"),
				),
			),
			Handler: d.completeReminder,
		},
		{
			Definition: mcp.NewTool("dex_delete_reminder",
				mcp.WithDescription("Delete a reminder from Dex CRM."),
				mcp.WithString("reminder_id",
					mcp.Required(),
					mcp.Description("The UUID of the reminder to delete"),
				),
			),
			Handler: d.deleteReminder,
		},
	}
}

func (d *Dispatcher) listReminders(ctx context.Context, args map[string]any) (map[string]any, error) {
	var in pageInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.ListReminders(ctx, dex.PageParams{Limit: in.Limit, Offset: in.Offset})
}

type createReminderInput struct {
	Title      string   `json:"title"`
	DueDate    string   `json:"due_date"`
	Text       *string  `json:"text"`
	ContactIDs []string `json:"contact_ids"`
}

func (d *Dispatcher) createReminder(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "title", "due_date"); err != nil {
		return nil, err
	}
	var in createReminderInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.CreateReminder(ctx, dex.CreateReminderParams{
		Title:      in.Title,
		DueDate:    in.DueDate,
		Text:       in.Text,
		ContactIDs: in.ContactIDs,
	})
}

type updateReminderInput struct {
	ReminderID string  `json:"reminder_id"`
	Title      *string `json:"title"`
	Text       *string `json:"text"`
	DueDate    *string `json:"due_date"`
	IsComplete *bool   `json:"is_complete"`
}

func (d *Dispatcher) updateReminder(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "reminder_id"); err != nil {
		return nil, err
	}
	var in updateReminderInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.UpdateReminder(ctx, in.ReminderID, dex.UpdateReminderParams{
		Title:      in.Title,
		Text:       in.Text,
		DueDate:    in.DueDate,
		IsComplete: in.IsComplete,
	})
}

type reminderIDInput struct {
	ReminderID string `json:"reminder_id"`
}

func (d *Dispatcher) completeReminder(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "reminder_id"); err != nil {
		return nil, err
	}
	var in reminderIDInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.CompleteReminder(ctx, in.ReminderID)
}

func (d *Dispatcher) deleteReminder(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "reminder_id"); err != nil {
		return nil, err
	}
	var in reminderIDInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.DeleteReminder(ctx, in.ReminderID)
}
