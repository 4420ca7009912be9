// ABOUTME: Contact operations: list, get, search, create, update, delete.
// ABOUTME: Create bodies carry null for unset scalars; updates send only provided fields.

package dex

import (
	"context"
	"net/http"
	"net/url"
)

// CreateContactParams holds the fields for creating a contact. Nil
// pointer fields serialize as JSON null; Email and Phone are nested
// into their join shapes only when provided.
type CreateContactParams struct {
	FirstName   string
	LastName    string
	Email       *string
	Phone       *string
	PhoneLabel  string // label for Phone, "Work" when empty
	JobTitle    *string
	Description *string
	Linkedin    *string
	Twitter     *string
	Instagram   *string
	Website     *string
}

// UpdateContactParams is the subset of scalar contact fields to change.
// Nil fields are omitted from the request body entirely, leaving the
// remote value untouched; a non-nil empty string is sent.
type UpdateContactParams struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	JobTitle    *string `json:"job_title,omitempty"`
	Description *string `json:"description,omitempty"`
	Linkedin    *string `json:"linkedin,omitempty"`
	Twitter     *string `json:"twitter,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	Website     *string `json:"website,omitempty"`
}

type contactEmails struct {
	Data contactEmailData `json:"data"`
}

type contactEmailData struct {
	Email string `json:"email"`
}

type contactPhones struct {
	Data contactPhoneData `json:"data"`
}

type contactPhoneData struct {
	PhoneNumber string `json:"phone_number"`
	Label       string `json:"label"`
}

type createContactBody struct {
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	JobTitle    *string        `json:"job_title"`
	Description *string        `json:"description"`
	Linkedin    *string        `json:"linkedin"`
	Twitter     *string        `json:"twitter"`
	Instagram   *string        `json:"instagram"`
	Website     *string        `json:"website"`
	Emails      *contactEmails `json:"contact_emails,omitempty"`
	Phones      *contactPhones `json:"contact_phone_numbers,omitempty"`
}

// ListContacts fetches contacts with pagination.
func (c *Client) ListContacts(ctx context.Context, page PageParams) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/contacts", page.values(), nil)
}

// GetContact fetches a single contact by ID.
func (c *Client) GetContact(ctx context.Context, contactID string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/contacts/"+contactID, nil, nil)
}

// SearchContactsByEmail searches contacts by email address.
func (c *Client) SearchContactsByEmail(ctx context.Context, email string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/search/contacts", url.Values{"email": {email}}, nil)
}

// CreateContact creates a new contact. The ID is assigned remotely.
func (c *Client) CreateContact(ctx context.Context, params CreateContactParams) (map[string]any, error) {
	body := createContactBody{
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		JobTitle:    params.JobTitle,
		Description: params.Description,
		Linkedin:    params.Linkedin,
		Twitter:     params.Twitter,
		Instagram:   params.Instagram,
		Website:     params.Website,
	}

	if params.Email != nil {
		body.Emails = &contactEmails{Data: contactEmailData{Email: *params.Email}}
	}
	if params.Phone != nil {
		label := params.PhoneLabel
		if label == "" {
			label = "Work"
		}
		body.Phones = &contactPhones{Data: contactPhoneData{
			PhoneNumber: *params.Phone,
			Label:       label,
		}}
	}

	return c.do(ctx, http.MethodPost, "/contacts", nil, map[string]any{"contact": body})
}

// UpdateContact updates the provided subset of scalar contact fields.
func (c *Client) UpdateContact(ctx context.Context, contactID string, params UpdateContactParams) (map[string]any, error) {
	return c.do(ctx, http.MethodPut, "/contacts/"+contactID, nil, map[string]any{"contact": params})
}

// DeleteContact deletes a contact.
func (c *Client) DeleteContact(ctx context.Context, contactID string) (map[string]any, error) {
	return c.do(ctx, http.MethodDelete, "/contacts/"+contactID, nil, nil)
}
