package typedef

import "strings"

// Reindent recomputes leading whitespace for every line of src from brace
// depth, ignoring however src was indented before.
//
// Each non-blank line is trimmed and placed at indent + 2*depth. A line
// ending in '{' sits at the current depth and opens a level; a line ending
// in '}' closes a level before it is placed. Lines starting with '*' are
// inside a block comment: they get one extra space and never change depth.
// Blank lines come out empty. A trailing newline is kept iff src had one.
//
// This is a line heuristic, not a lexer: braces inside string literals
// are counted like any other.
func Reindent(src string, indent int) string {
	if indent < 0 {
		indent = 0
	}

	body := strings.TrimSuffix(src, "\n")

	var sb strings.Builder
	sb.Grow(len(src) + len(src)/4)

	depth := 0
	for i, raw := range strings.Split(body, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		pad := indent
		switch {
		case strings.HasPrefix(line, "*"):
			pad += depth*2 + 1
		case strings.HasSuffix(line, "{"):
			pad += depth * 2
			depth++
		case strings.HasSuffix(line, "}") && depth > 0:
			depth--
			pad += depth * 2
		default:
			pad += depth * 2
		}

		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(line)
	}

	if strings.HasSuffix(src, "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}
