// ABOUTME: Note tools: list, get-for-contact, create, update, delete.
// ABOUTME: Notes are Dex timeline items associated with one or more contacts.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/2389/dex-mcp/internal/dex"
)

func (d *Dispatcher) noteTools() []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("dex_list_notes",
				mcp.WithDescription("List all notes from Dex CRM with pagination. Notes are timeline items that can be associated with contacts."),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of notes to return (default: 10)"),
					mcp.DefaultNumber(10),
				),
				mcp.WithNumber("offset",
					mcp.Description("Number of notes to skip for pagination (default: 0)"),
					mcp.DefaultNumber(0),
				),
			),
			Handler: d.listNotes,
		},
		{
			Definition: mcp.NewTool("dex_get_notes_for_contact",
				mcp.WithDescription("Get all notes associated with a specific contact."),
				mcp.WithString("contact_id",
					mcp.Required(),
					mcp.Description("The UUID of the contact to get notes for"),
				),
			),
			Handler: d.getNotesForContact,
		},
		{
			Definition: mcp.NewTool("dex_create_note",
				mcp.WithDescription("Create a new note and associate it with one or more contacts."),
				mcp.WithString("note",
					mcp.Required(),
					mcp.Description("The note content"),
				),
				mcp.WithArray("contact_ids",
					mcp.Required(),
					mcp.Description("List of contact UUIDs to associate with this note"),
					mcp.Items(map[string]any{"type": "string"}),
				),
				mcp.WithString("event_time",
					mcp.Description("ISO 8601 timestamp for the note (defaults to now)"),
				),
			),
			Handler: d.createNote,
		},
		{
			Definition: mcp.NewTool("dex_update_note",
				mcp.WithDescription("Update the content of an existing note."),
				mcp.WithString("note_id",
					mcp.Required(),
					mcp.Description("The UUID of the note to update"),
				),
				mcp.WithString("note",
					mcp.Required(),
					mcp.Description("New note content"),
				),
			),
			Handler: d.updateNote,
		},
		{
			Definition: mcp.NewTool("dex_delete_note",
				mcp.WithDescription("Delete a note from Dex CRM."),
				mcp.WithString("note_id",
					mcp.Required(),
					mcp.Description("The UUID of the note to delete"),
				),
			),
			Handler: d.deleteNote,
		},
	}
}

func (d *Dispatcher) listNotes(ctx context.Context, args map[string]any) (map[string]any, error) {
	var in pageInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.ListNotes(ctx, dex.PageParams{Limit: in.Limit, Offset: in.Offset})
}

func (d *Dispatcher) getNotesForContact(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "contact_id"); err != nil {
		return nil, err
	}
	var in contactIDInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.GetNotesForContact(ctx, in.ContactID)
}

type createNoteInput struct {
	Note       string   `json:"note"`
	ContactIDs []string `json:"contact_ids"`
	EventTime  string   `json:"event_time"`
}

func (d *Dispatcher) createNote(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "note", "contact_ids"); err != nil {
		return nil, err
	}
	var in createNoteInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.CreateNote(ctx, dex.CreateNoteParams{
		Note:       in.Note,
		ContactIDs: in.ContactIDs,
		EventTime:  in.EventTime,
	})
}

type updateNoteInput struct {
	NoteID string `json:"note_id"`
	Note   string `json:"note"`
}

func (d *Dispatcher) updateNote(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "note_id", "note"); err != nil {
		return nil, err
	}
	var in updateNoteInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.UpdateNote(ctx, in.NoteID, in.Note)
}

type noteIDInput struct {
	NoteID string `json:"note_id"`
}

func (d *Dispatcher) deleteNote(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "note_id"); err != nil {
		return nil, err
	}
	var in noteIDInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.DeleteNote(ctx, in.NoteID)
}
