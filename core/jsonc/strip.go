package jsonc

import "strings"

// StripComments removes `//` and `/* */` comments from src.
//
// Quoted strings are copied verbatim, so sequences such as "http://" inside a
// value survive. Horizontal whitespace directly before a comment is dropped
// with it, and so is horizontal whitespace following a block comment. Line
// breaks are always kept. An unterminated block comment is left in place and
// will fail to decode.
func StripComments(src string) string {
	out := make([]byte, 0, len(src))

	inString := false
	escaped := false

	for i := 0; i < len(src); i++ {
		c := src[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		if c != '/' || i+1 >= len(src) {
			out = append(out, c)
			continue
		}

		switch src[i+1] {
		case '/':
			out = trimTrailingBlanks(out)
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return string(out)
			}
			// resume on the newline so it is copied
			i += end - 1
		case '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				out = append(out, src[i:]...)
				return string(out)
			}
			out = trimTrailingBlanks(out)
			i += 2 + end + 2
			for i < len(src) && isBlank(src[i]) {
				i++
			}
			i--
		default:
			out = append(out, c)
		}
	}

	return string(out)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func trimTrailingBlanks(b []byte) []byte {
	for len(b) > 0 && isBlank(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}
