// ABOUTME: Tests for contact operations and their request body shapes.
// ABOUTME: Covers null-present scalars, nested email/phone, and partial updates.

package dex

import (
	"context"
	"net/http"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestListContactsPagination(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"contacts":[]}`)

	_, err := client.ListContacts(context.Background(), PageParams{Limit: 25, Offset: 50})
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}

	if rec.Method != http.MethodGet || rec.Path != "/contacts" {
		t.Errorf("request = %s %s, want GET /contacts", rec.Method, rec.Path)
	}
	if got := rec.Query.Get("limit"); got != "25" {
		t.Errorf("limit = %q, want 25", got)
	}
	if got := rec.Query.Get("offset"); got != "50" {
		t.Errorf("offset = %q, want 50", got)
	}
}

func TestListContactsDefaults(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"contacts":[]}`)

	_, err := client.ListContacts(context.Background(), PageParams{})
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}

	if got := rec.Query.Get("limit"); got != "10" {
		t.Errorf("default limit = %q, want 10", got)
	}
	if got := rec.Query.Get("offset"); got != "0" {
		t.Errorf("default offset = %q, want 0", got)
	}
}

func TestGetContactPath(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.GetContact(context.Background(), "uuid-123")
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if rec.Method != http.MethodGet || rec.Path != "/contacts/uuid-123" {
		t.Errorf("request = %s %s, want GET /contacts/uuid-123", rec.Method, rec.Path)
	}
}

func TestSearchContactsByEmail(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.SearchContactsByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("SearchContactsByEmail: %v", err)
	}
	if rec.Path != "/search/contacts" {
		t.Errorf("path = %s, want /search/contacts", rec.Path)
	}
	if got := rec.Query.Get("email"); got != "ada@example.com" {
		t.Errorf("email = %q", got)
	}
}

func TestCreateContactBody(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.CreateContact(context.Background(), CreateContactParams{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     strPtr("ada@example.com"),
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	contact, ok := rec.Body["contact"].(map[string]any)
	if !ok {
		t.Fatalf("body missing contact wrapper: %v", rec.Body)
	}

	if contact["first_name"] != "Ada" || contact["last_name"] != "Lovelace" {
		t.Errorf("names = %v %v", contact["first_name"], contact["last_name"])
	}

	// Unset scalars must be present as explicit nulls.
	for _, field := range []string{"job_title", "description", "linkedin", "twitter", "instagram", "website"} {
		v, present := contact[field]
		if !present {
			t.Errorf("field %s absent, want explicit null", field)
		}
		if v != nil {
			t.Errorf("field %s = %v, want null", field, v)
		}
	}

	emails, ok := contact["contact_emails"].(map[string]any)
	if !ok {
		t.Fatalf("contact_emails missing: %v", contact)
	}
	data := emails["data"].(map[string]any)
	if data["email"] != "ada@example.com" {
		t.Errorf("email = %v", data["email"])
	}

	if _, present := contact["contact_phone_numbers"]; present {
		t.Error("contact_phone_numbers should be absent when no phone is given")
	}
}

func TestCreateContactWithPhone(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.CreateContact(context.Background(), CreateContactParams{
		FirstName: "Grace",
		LastName:  "Hopper",
		Phone:     strPtr("+1-555-0100"),
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	contact := rec.Body["contact"].(map[string]any)
	phones, ok := contact["contact_phone_numbers"].(map[string]any)
	if !ok {
		t.Fatalf("contact_phone_numbers missing: %v", contact)
	}
	data := phones["data"].(map[string]any)
	if data["phone_number"] != "+1-555-0100" {
		t.Errorf("phone_number = %v", data["phone_number"])
	}
	if data["label"] != "Work" {
		t.Errorf("label = %v, want default Work", data["label"])
	}

	if _, present := contact["contact_emails"]; present {
		t.Error("contact_emails should be absent when no email is given")
	}
}

func TestCreateContactCustomPhoneLabel(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.CreateContact(context.Background(), CreateContactParams{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Phone:      strPtr("+1-555-0100"),
		PhoneLabel: "Mobile",
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	contact := rec.Body["contact"].(map[string]any)
	data := contact["contact_phone_numbers"].(map[string]any)["data"].(map[string]any)
	if data["label"] != "Mobile" {
		t.Errorf("label = %v, want Mobile", data["label"])
	}
}

func TestUpdateContactPartialBody(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.UpdateContact(context.Background(), "uuid-123", UpdateContactParams{
		JobTitle: strPtr("Engineer"),
		Twitter:  strPtr(""),
	})
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}

	if rec.Method != http.MethodPut || rec.Path != "/contacts/uuid-123" {
		t.Errorf("request = %s %s, want PUT /contacts/uuid-123", rec.Method, rec.Path)
	}

	contact := rec.Body["contact"].(map[string]any)
	want := map[string]any{"job_title": "Engineer", "twitter": ""}
	if !reflect.DeepEqual(contact, want) {
		t.Errorf("body = %v, want exactly %v", contact, want)
	}
}

func TestUpdateContactIdempotentBody(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	params := UpdateContactParams{FirstName: strPtr("Ada")}
	_, err := client.UpdateContact(context.Background(), "uuid-123", params)
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	first := rec.Body["contact"]

	_, err = client.UpdateContact(context.Background(), "uuid-123", params)
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if !reflect.DeepEqual(first, rec.Body["contact"]) {
		t.Errorf("repeated update produced different bodies: %v vs %v", first, rec.Body["contact"])
	}
}

func TestDeleteContact(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.DeleteContact(context.Background(), "uuid-123")
	if err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if rec.Method != http.MethodDelete || rec.Path != "/contacts/uuid-123" {
		t.Errorf("request = %s %s, want DELETE /contacts/uuid-123", rec.Method, rec.Path)
	}
	if rec.Body != nil {
		t.Errorf("delete should have no body, got %v", rec.Body)
	}
}
