package ai

import "strings"

// ExtractJSONArray pulls the first balanced JSON array out of a model
// response. Models frequently wrap JSON in markdown fences or surround it
// with prose, so we scan for the structure rather than unmarshalling the
// raw response.
func ExtractJSONArray(response string) (string, bool) {
	return extractBalanced(stripFences(response), '[', ']')
}

// ExtractJSONObject pulls the first balanced JSON object out of a model
// response.
func ExtractJSONObject(response string) (string, bool) {
	return extractBalanced(stripFences(response), '{', '}')
}

// stripFences removes a markdown code fence wrapper if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// extractBalanced finds the first balanced open..close span, tracking JSON
// string literals and escapes so brackets inside strings do not miscount.
func extractBalanced(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
