package parse

import "strings"

// StripComments removes //-to-end-of-line comments and blank lines.
// It is quote-aware: a // inside a quoted span does not start a comment.
// Quotes cannot span lines in this DSL, so the scan state resets per line;
// a line with an unterminated quote keeps everything after the quote.
func StripComments(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(cutComment(line), " \t")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func cutComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}
