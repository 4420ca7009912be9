// Package dex is a typed client for the Dex CRM REST API.
//
// # Overview
//
// The client covers three resource kinds — contacts, notes (timeline
// items), and reminders — with one method per verb/resource pair. Every
// method is a single request/response round trip with a fixed 30-second
// timeout; there is no retry, caching, or local state. Entity IDs are
// opaque strings assigned by the remote system and are never generated
// here.
//
// # Authentication
//
// Every request carries the static x-hasura-dex-api-key header. API
// keys come from https://getdex.com/appv3/settings/api.
//
// # Request body semantics
//
// Create and update bodies are explicit structs rather than loose maps
// so the partial-update contract is visible in the types:
//
//   - Update params use pointer fields with omitempty: a nil field is
//     absent from the body and leaves the remote value untouched, while
//     a pointer to the empty string is sent.
//   - Create-contact scalar optionals are always present, serializing
//     as null when unset; the email and phone number nest into their
//     {data: {...}} join shapes only when provided.
//   - Notes always send timeline_items_contacts (empty data array
//     included); reminders omit reminders_contacts when the contact
//     list is empty. This asymmetry matches the remote schema.
//
// # Errors
//
// A non-2xx response yields an *APIError with the status and body. A
// failure before any response (connection, DNS, timeout) yields a
// *TransportError wrapping the underlying error. Neither is retried.
//
// # Usage
//
//	client := dex.NewClient(dex.ClientConfig{APIKey: key})
//	result, err := client.ListContacts(ctx, dex.PageParams{Limit: 25})
package dex
