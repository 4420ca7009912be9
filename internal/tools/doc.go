// Package tools exposes the Dex CRM client as an MCP tool catalog.
//
// # Overview
//
// The package provides 16 tools across three resource kinds:
//
// Contacts:
//
//   - dex_list_contacts: List contacts with pagination
//   - dex_get_contact: Get a contact by ID
//   - dex_search_contacts: Search contacts by email
//   - dex_create_contact: Create a contact
//   - dex_update_contact: Update provided contact fields
//   - dex_delete_contact: Delete a contact
//
// Notes (timeline items):
//
//   - dex_list_notes: List notes with pagination
//   - dex_get_notes_for_contact: Notes for one contact
//   - dex_create_note: Create a note with contact associations
//   - dex_update_note: Replace a note's text
//   - dex_delete_note: Delete a note
//
// Reminders:
//
//   - dex_list_reminders: List reminders with pagination
//   - dex_create_reminder: Create a reminder
//   - dex_update_reminder: Update provided reminder fields
//   - dex_complete_reminder: Mark a reminder complete
//   - dex_delete_reminder: Delete a reminder
//
// # Dispatch
//
// The Dispatcher owns the catalog and the single long-lived client.
// Every invocation produces exactly one text result:
//
//   - success: the decoded API response, pretty-printed as 2-space
//     indented JSON
//   - unknown tool name: "Unknown tool: <name>"
//   - any failure (missing argument, remote 4xx/5xx, network or
//     timeout error): "Error: <message>"
//
// Failures never propagate past Dispatch; the session stays alive no
// matter how an individual call goes wrong.
//
// # Registration
//
// Wire the catalog onto an MCP server:
//
//	d := tools.NewDispatcher(client, logger)
//	d.Register(srv)
package tools
