package pongo

import "strings"

// getNestedField retrieves a value from a nested map by dot-separated path.
func getNestedField(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")

	var current any = m

	for _, part := range parts {
		currMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = currMap[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
