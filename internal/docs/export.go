package docs

import (
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ExportJSON returns the whole catalog as an indented JSON object keyed by
// symbol name, in sorted order.
func ExportJSON() ([]byte, error) {
	out := []byte("{}")

	for _, name := range Names() {
		entry := catalog[name]
		key := escapePath(name)

		var err error
		out, err = sjson.SetBytes(out, key+".signature", entry.Signature)
		if err != nil {
			return nil, fmt.Errorf("failed to set signature for %s: %w", name, err)
		}

		out, err = sjson.SetBytes(out, key+".body", entry.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to set body for %s: %w", name, err)
		}
	}

	return pretty.Pretty(out), nil
}

// escapePath makes a symbol name safe to use as a single sjson path component
func escapePath(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
