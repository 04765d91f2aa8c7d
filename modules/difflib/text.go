package difflib

import (
	"strings"
)

// SplitLines splits text on "\r\n", "\n" and lone "\r". Text ending exactly
// on a line break does not produce a trailing empty line. With keepEnds each
// line keeps its original terminator.
func SplitLines(text string, keepEnds bool) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for pos := 0; pos < len(text); {
		part := text[pos:]
		eol := strings.IndexAny(part, "\r\n")
		if eol == -1 {
			lines = append(lines, part)
			break
		}
		next := eol + 1
		if part[eol] == '\r' && next < len(part) && part[next] == '\n' {
			next++
		}
		if keepEnds {
			lines = append(lines, part[:next])
		} else {
			lines = append(lines, part[:eol])
		}
		pos += next
	}
	return lines
}

func hasLineEnd(s string) bool {
	return strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r")
}
