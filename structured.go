package pagemeta

import (
	"encoding/json"
	"slices"
)

// StructuredDataSelector is the selector for embedded JSON-LD blocks.
const StructuredDataSelector = `script[type="application/ld+json"]`

// SelectStructuredData returns the first JSON-LD object whose "@type" is one
// of types. It always returns a non-nil map, empty when nothing matches.
//
// Blocks are scanned in document order. A block that fails to decode aborts
// the scan. The first block decoding to a list ends the scan: its first
// matching element is returned, or an empty map when none match. Objects
// of other types are skipped.
func SelectStructuredData(doc Document, types []string) map[string]any {
	for _, node := range doc.Select(StructuredDataSelector) {
		var data any
		if err := json.Unmarshal([]byte(node.Text()), &data); err != nil {
			return map[string]any{}
		}

		switch v := data.(type) {
		case nil:
			return map[string]any{}
		case []any:
			for _, item := range v {
				if item == nil {
					return map[string]any{}
				}
				if obj, ok := item.(map[string]any); ok && hasType(obj, types) {
					return obj
				}
			}
			return map[string]any{}
		case map[string]any:
			if hasType(v, types) {
				return v
			}
		}
	}
	return map[string]any{}
}

// hasType reports whether the object's "@type" is a string listed in types.
func hasType(obj map[string]any, types []string) bool {
	t, ok := obj["@type"].(string)
	return ok && slices.Contains(types, t)
}
