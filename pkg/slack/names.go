package slack

import (
	"strings"
	"unicode"
)

// CamelSegment translates one snake_case path segment to the camelCase form
// used by the Web API: the segment is split on underscores, the first token
// is lower-cased, and every subsequent token gets an upper-case initial.
// A segment without underscores is returned unchanged, so already-camelCase
// input passes through.
//
// Segments with leading, trailing, or consecutive underscores are not
// supported input; empty tokens are skipped but no round-trip guarantee is
// made for such names.
func CamelSegment(segment string) string {
	if !strings.Contains(segment, "_") {
		return segment
	}

	tokens := strings.Split(segment, "_")

	var builder strings.Builder

	first := true

	for _, token := range tokens {
		if token == "" {
			continue
		}

		if first {
			builder.WriteString(strings.ToLower(token))

			first = false

			continue
		}

		runes := []rune(token)
		builder.WriteRune(unicode.ToUpper(runes[0]))
		builder.WriteString(string(runes[1:]))
	}

	return builder.String()
}

// SnakeSegment translates one camelCase path segment back to snake_case by
// splitting on upper-case letters and lower-casing every token. It is the
// inverse of CamelSegment for identifiers made of lowercase alphanumeric
// tokens joined by single underscores.
func SnakeSegment(segment string) string {
	var builder strings.Builder

	for i, r := range segment {
		if unicode.IsUpper(r) {
			if i > 0 {
				builder.WriteByte('_')
			}

			builder.WriteRune(unicode.ToLower(r))

			continue
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

// CamelPath translates a full dot-path segment by segment, e.g.
// "admin.conversations.convert_to_private" -> "admin.conversations.convertToPrivate".
func CamelPath(dotPath string) string {
	segments := strings.Split(dotPath, ".")
	for i, segment := range segments {
		segments[i] = CamelSegment(segment)
	}

	return strings.Join(segments, ".")
}
