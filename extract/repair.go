package extract

import (
	"regexp"
	"strings"
)

var (
	unquotedKeyRe          = regexp.MustCompile(`([{,]\s*)([a-zA-Z_][a-zA-Z0-9_]*)(\s*:)`)
	trailingCommaBraceRe   = regexp.MustCompile(`,\s*}`)
	trailingCommaBracketRe = regexp.MustCompile(`,\s*]`)
)

// repair fixes the syntax damage models most often inflict on JSON: single
// quotes, unquoted keys, trailing commas and missing closing brackets.
// It is best-effort; the caller decides whether the result parses.
func repair(src string) string {
	src = replaceSingleQuotes(src)
	src = unquotedKeyRe.ReplaceAllString(src, `${1}"${2}"${3}`)
	src = trailingCommaBraceRe.ReplaceAllString(src, "}")
	src = trailingCommaBracketRe.ReplaceAllString(src, "]")
	return closeBrackets(src)
}

// replaceSingleQuotes converts single-quoted strings to double-quoted ones,
// leaving apostrophes inside double-quoted strings alone.
func replaceSingleQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inDouble := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			b.WriteByte(c)
			escaped = true
		case '"':
			b.WriteByte(c)
			inDouble = !inDouble
		case '\'':
			if inDouble {
				b.WriteByte(c)
			} else {
				b.WriteByte('"')
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// closeBrackets appends the closing braces and brackets still open at the
// end of the input.
func closeBrackets(s string) string {
	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
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
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(s)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}
