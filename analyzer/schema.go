package analyzer

// countBodyParameters returns the parameter count contributed by an
// operation's requestBody value. For every media type under "content" that
// carries a "schema", the schema is scored and the scores are summed.
// Anything that is not shaped like a requestBody contributes zero.
//
// This is a depth-limited heuristic, not general JSON-Schema counting: a
// referenced item schema counts as a single opaque parameter and is never
// dereferenced.
func countBodyParameters(body any) int {
	m, ok := body.(map[string]any)
	if !ok {
		return 0
	}
	content, ok := m["content"].(map[string]any)
	if !ok {
		return 0
	}

	total := 0
	for _, mediaType := range content {
		mt, ok := mediaType.(map[string]any)
		if !ok {
			continue
		}
		if schema, ok := mt["schema"].(map[string]any); ok {
			total += scoreSchema(schema)
		}
	}
	return total
}

// scoreSchema scores a single request-body schema:
//   - "properties" present: the number of entries in that mapping
//   - otherwise "items" present: one level is inspected; item properties
//     count individually, an item "$ref" counts as exactly 1
//   - otherwise: 0
//
// Presence wins over shape: a "properties" key of the wrong type scores 0
// rather than falling through to "items".
func scoreSchema(schema map[string]any) int {
	if props, present := schema["properties"]; present {
		if m, ok := props.(map[string]any); ok {
			return len(m)
		}
		return 0
	}

	items, present := schema["items"]
	if !present {
		return 0
	}
	m, ok := items.(map[string]any)
	if !ok {
		return 0
	}
	if props, present := m["properties"]; present {
		if pm, ok := props.(map[string]any); ok {
			return len(pm)
		}
		return 0
	}
	if _, present := m["$ref"]; present {
		return 1
	}
	return 0
}
