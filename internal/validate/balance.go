package validate

import (
	"fmt"
	"strings"
)

var closerFor = map[byte]byte{'(': ')', '{': '}', '[': ']'}

// balancedDelims checks that (), {} and [] nest properly in a style or
// behavior segment. The scan is purely lexical; it does not know about string
// literals or comments, matching the contract that validation stops short of
// parsing the output language.
func balancedDelims(s string) (bool, string) {
	var stack []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', '{', '[':
			stack = append(stack, closerFor[c])
		case ')', '}', ']':
			if len(stack) == 0 {
				return false, fmt.Sprintf("unexpected %q with no matching opener", string(c))
			}
			want := stack[len(stack)-1]
			if c != want {
				return false, fmt.Sprintf("mismatched delimiter: expected %q, found %q", string(want), string(c))
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return false, fmt.Sprintf("unclosed delimiter: missing %q", string(stack[len(stack)-1]))
	}
	return true, ""
}

// voidTags never take a closing tag in HTML.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

// balancedTags checks that every opening tag in a markup segment has a
// matching, properly nested closing tag. Void and self-closed elements are
// exempt. Comments and doctype declarations are skipped; a stray "<" that
// does not start a tag is treated as text.
func balancedTags(s string) (bool, string) {
	var stack []string
	i := 0
	for i < len(s) {
		if s[i] != '<' {
			i++
			continue
		}
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, "<!--"):
			end := strings.Index(rest, "-->")
			if end < 0 {
				return false, "unterminated comment"
			}
			i += end + len("-->")
		case strings.HasPrefix(rest, "<!"):
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				return false, "unterminated declaration"
			}
			i += end + 1
		case strings.HasPrefix(rest, "</"):
			name, end := readTag(rest[2:])
			if name == "" || end < 0 {
				return false, "malformed closing tag"
			}
			if len(stack) == 0 {
				return false, fmt.Sprintf("closing tag </%s> with no open tag", name)
			}
			top := stack[len(stack)-1]
			if top != name {
				return false, fmt.Sprintf("closing tag </%s> does not match open <%s>", name, top)
			}
			stack = stack[:len(stack)-1]
			i += 2 + end + 1
		default:
			name, end := readTag(rest[1:])
			if name == "" {
				// not a tag, plain text "<"
				i++
				continue
			}
			if end < 0 {
				return false, fmt.Sprintf("unterminated tag <%s", name)
			}
			body := rest[1 : 1+end]
			selfClosed := strings.HasSuffix(strings.TrimSpace(body), "/")
			if _, void := voidTags[strings.ToLower(name)]; !void && !selfClosed {
				stack = append(stack, name)
			}
			i += 1 + end + 1
		}
	}
	if len(stack) > 0 {
		return false, fmt.Sprintf("unclosed tag <%s>", stack[len(stack)-1])
	}
	return true, ""
}

// readTag reads a tag name at the start of s and returns it together with the
// offset of the terminating '>'. Quoted attribute values may contain '>'.
// It returns an empty name when s does not begin with a tag name, and a
// negative offset when the tag never terminates.
func readTag(s string) (name string, gt int) {
	n := 0
	for n < len(s) && isTagNameChar(s[n], n == 0) {
		n++
	}
	if n == 0 {
		return "", -1
	}
	name = s[:n]
	var quote byte
	for j := n; j < len(s); j++ {
		c := s[j]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '>':
			return name, j
		}
	}
	return name, -1
}

func isTagNameChar(c byte, first bool) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	if first {
		return false
	}
	return c >= '0' && c <= '9' || c == '-'
}
