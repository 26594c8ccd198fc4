// Package eglob implements the extended-glob matcher: '*' matches any
// run of characters, '?' matches exactly one, ':' separates
// alternatives at the current grouping depth, and '(' ')' delimit a
// sub-pattern that is itself an alternation list, e.g.
// "foo_*:bar_(alpha:beta)".
package eglob

// Match reports whether str matches pattern in its entirety: the
// match is anchored at both ends, never a substring match.
func Match(pattern, str string) bool {
	return matchEGlob(pattern, str)
}

// matchEGlob tries each top-level alternative of pattern (split by
// ':' at grouping depth 0), in order, succeeding on the first hit.
func matchEGlob(pattern, str string) bool {
	for {
		if matchGlob(pattern, str) {
			return true
		}
		rest, ok := findEndOfGlob(pattern, ':')
		if !ok {
			return false
		}
		pattern = rest
	}
}

// matchGlob matches pattern against str left to right. It has no
// top-level alternation of its own: a ':' reached here marks the end
// of the alternative matchEGlob is currently trying, unless it is
// nested inside a '(' group still open in this same pattern string.
func matchGlob(pattern, str string) bool {
	for {
		if pattern == "" {
			return str == ""
		}

		switch pattern[0] {
		case '(':
			return matchEGlob(pattern[1:], str)

		case ')':
			// The group this alternative belonged to is done;
			// whatever follows in pattern is the group's continuation.
			pattern = pattern[1:]

		case ':':
			if rest, ok := findEndOfGlob(pattern, ')'); ok {
				// This ':' is an alternative separator inside an
				// enclosing group: the current alternative matched
				// up to here, resume after the group's ')'.
				pattern = rest
				continue
			}
			// Not inside a group: this is the end of the current
			// top-level alternative.
			return str == ""

		case '*':
			pattern = pattern[1:]
			for {
				if matchGlob(pattern, str) {
					return true
				}
				if str == "" {
					return false
				}
				str = str[1:]
			}

		case '?':
			if str == "" {
				return false
			}
			pattern, str = pattern[1:], str[1:]

		default:
			if str == "" || str[0] != pattern[0] {
				return false
			}
			pattern, str = pattern[1:], str[1:]
		}
	}
}

// findEndOfGlob scans s tracking '('/')' nesting depth and returns the
// remainder of s after the first occurrence of c at depth 0. The
// second result is false if c never occurs at depth 0 (including when
// an unmatched ')' is hit first).
func findEndOfGlob(s string, c byte) (string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case depth == 0 && s[i] == c:
			return s[i+1:], true
		case s[i] == '(':
			depth++
		case s[i] == ')':
			if depth > 0 {
				depth--
			} else {
				return "", false
			}
		}
	}
	return "", false
}
