// Package wordlist implements the basename/path "fgrep" matcher: a
// linked list of hashed basenames built once from a colon-separated
// string, matched against the basename of a path on every call.
package wordlist

import (
	"strings"

	"github.com/go-tracy/tracy/internal/utils"
)

// Word is one entry of a List, precomputed from a single segment of
// the colon-separated source string.
type Word struct {
	text   string
	length int
	hash   uint32
	next   *Word
}

// List is a singly linked sequence of Words. A nil List, or a List
// with no Words (the zero value, which Build("") returns a pointer
// to), matches nothing.
type List struct {
	head *Word
}

// Build parses a colon-separated list of basenames into a List. An
// empty string produces an empty, non-nil List. Build never returns an
// error: there is nothing to malform in a plain split, and a
// malformed environment variable is the config reader's concern, not
// this package's.
func Build(s string) *List {
	if s == "" {
		return &List{}
	}

	var head, tail *Word
	for _, seg := range strings.Split(s, ":") {
		w := &Word{text: seg, length: len(seg), hash: utils.AdditiveHash(seg)}
		if head == nil {
			head = w
		} else {
			tail.next = w
		}
		tail = w
	}

	return &List{head: head}
}

// Match returns the basename of path and true if it appears verbatim
// as one of the segments List was Build from. The hash comparison is
// a necessary-not-sufficient prefilter: length and a full byte
// comparison must also agree before a Word counts as a match.
func Match(list *List, path string) (string, bool) {
	if list == nil || list.head == nil {
		return "", false
	}

	base := Basename(path)
	length := len(base)
	hash := utils.AdditiveHash(base)

	for w := list.head; w != nil; w = w.next {
		if w.hash != hash || w.length != length {
			continue
		}
		if w.text != base {
			continue
		}
		return base, true
	}

	return "", false
}

// Basename returns the substring of path after its last '/', or path
// itself if it contains none.
func Basename(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
