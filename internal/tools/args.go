// ABOUTME: Argument extraction helpers for tool handlers.
// ABOUTME: Validates required keys, then decodes the map into typed input structs.

package tools

import (
	"encoding/json"
	"fmt"
)

// requireArgs checks that every named argument is present. The check
// runs before decoding so the caller gets a message naming the missing
// argument instead of a generic decode failure.
func requireArgs(args map[string]any, names ...string) error {
	for _, name := range names {
		if _, ok := args[name]; !ok {
			return fmt.Errorf("missing required argument %q", name)
		}
	}
	return nil
}

// decodeArgs round-trips the argument map through JSON into a typed
// input struct, so type mismatches surface as decode errors.
func decodeArgs(args map[string]any, v any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}
