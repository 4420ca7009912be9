// ABOUTME: Contact tools: list, get, search, create, update, delete.
// ABOUTME: Schemas mirror the client's parameters; defaults match the API defaults.

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/2389/dex-mcp/internal/dex"
)

func (d *Dispatcher) contactTools() []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("dex_list_contacts",
				mcp.WithDescription("List all contacts from Dex CRM with pagination. Returns contact details including name, email, phone, job title, and social profiles."),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of contacts to return (default: 10, max: 100)"),
					mcp.DefaultNumber(10),
				),
				mcp.WithNumber("offset",
					mcp.Description("Number of contacts to skip for pagination (default: 0)"),
					mcp.DefaultNumber(0),
				),
			),
			Handler: d.listContacts,
		},
		{
			Definition: mcp.NewTool("dex_get_contact",
				mcp.WithDescription("Get detailed information about a specific contact by their ID."),
				mcp.WithString("contact_id",
					mcp.Required(),
					mcp.Description("The UUID of the contact to retrieve"),
				),
			),
			Handler: d.getContact,
		},
		{
			Definition: mcp.NewTool("dex_search_contacts",
				mcp.WithDescription("Search for contacts by email address."),
				mcp.WithString("email",
					mcp.Required(),
					mcp.Description("Email address to search for"),
				),
			),
			Handler: d.searchContacts,
		},
		{
			Definition: mcp.NewTool("dex_create_contact",
				mcp.WithDescription("Create a new contact in Dex CRM."),
				mcp.WithString("first_name",
					mcp.Required(),
					mcp.Description("Contact's first name"),
				),
				mcp.WithString("last_name",
					mcp.Required(),
					mcp.Description("Contact's last name"),
				),
				mcp.WithString("email", mcp.Description("Contact's email address")),
				mcp.WithString("phone", mcp.Description("Contact's phone number")),
				mcp.WithString("phone_label",
					mcp.Description("Label for phone number (e.g., 'Work', 'Mobile')"),
					mcp.DefaultString("Work"),
				),
				mcp.WithString("job_title", mcp.Description("Contact's job title")),
				mcp.WithString("description", mcp.Description("Notes about the contact")),
				mcp.WithString("linkedin", mcp.Description("LinkedIn username")),
				mcp.WithString("twitter", mcp.Description("Twitter handle")),
				mcp.WithString("instagram", mcp.Description("Instagram username")),
				mcp.WithString("website", mcp.Description("Personal website URL")),
			),
			Handler: d.createContact,
		},
		{
			Definition: mcp.NewTool("dex_update_contact",
				mcp.WithDescription("Update an existing contact's information. Only the provided fields are changed."),
				mcp.WithString("contact_id",
					mcp.Required(),
					mcp.Description("The UUID of the contact to update"),
				),
				mcp.WithString("first_name", mcp.Description("New first name")),
				mcp.WithString("last_name", mcp.Description("New last name")),
				mcp.WithString("job_title", mcp.Description("New job title")),
				mcp.WithString("description", mcp.Description("New description/notes")),
				mcp.WithString("linkedin", mcp.Description("New LinkedIn username")),
				mcp.WithString("twitter", mcp.Description("New Twitter handle")),
				mcp.WithString("instagram", mcp.Description("New Instagram username")),
				mcp.WithString("website", mcp.Description("New website URL")),
			),
			Handler: d.updateContact,
		},
		{
			Definition: mcp.NewTool("dex_delete_contact",
				mcp.WithDescription("Delete a contact from Dex CRM."),
				mcp.WithString("contact_id",
					mcp.Required(),
					mcp.Description("The UUID of the contact to delete"),
				),
			),
			Handler: d.deleteContact,
		},
	}
}

type pageInput struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (d *Dispatcher) listContacts(ctx context.Context, args map[string]any) (map[string]any, error) {
	var in pageInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.ListContacts(ctx, dex.PageParams{Limit: in.Limit, Offset: in.Offset})
}

type contactIDInput struct {
	ContactID string `json:"contact_id"`
}

func (d *Dispatcher) getContact(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "contact_id"); err != nil {
		return nil, err
	}
	var in contactIDInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.GetContact(ctx, in.ContactID)
}

type searchContactsInput struct {
	Email string `json:"email"`
}

func (d *Dispatcher) searchContacts(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "email"); err != nil {
		return nil, err
	}
	var in searchContactsInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.SearchContactsByEmail(ctx, in.Email)
}

type createContactInput struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	PhoneLabel  string  `json:"phone_label"`
	JobTitle    *string `json:"job_title"`
	Description *string `json:"description"`
	Linkedin    *string `json:"linkedin"`
	Twitter     *string `json:"twitter"`
	Instagram   *string `json:"instagram"`
	Website     *string `json:"website"`
}

func (d *Dispatcher) createContact(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "first_name", "last_name"); err != nil {
		return nil, err
	}
	var in createContactInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.CreateContact(ctx, dex.CreateContactParams{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		PhoneLabel:  in.PhoneLabel,
		JobTitle:    in.JobTitle,
		Description: in.Description,
		Linkedin:    in.Linkedin,
		Twitter:     in.Twitter,
		Instagram:   in.Instagram,
		Website:     in.Website,
	})
}

func (d *Dispatcher) updateContact(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "contact_id"); err != nil {
		return nil, err
	}
	var id contactIDInput
	if err := decodeArgs(args, &id); err != nil {
		return nil, err
	}
	// The update params share json tags with the tool arguments, so the
	// provided subset decodes directly; contact_id is simply ignored.
	var params dex.UpdateContactParams
	if err := decodeArgs(args, &params); err != nil {
		return nil, err
	}
	return d.client.UpdateContact(ctx, id.ContactID, params)
}

func (d *Dispatcher) deleteContact(ctx context.Context, args map[string]any) (map[string]any, error) {
	if err := requireArgs(args, "contact_id"); err != nil {
		return nil, err
	}
	var in contactIDInput
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	return d.client.DeleteContact(ctx, in.ContactID)
}
