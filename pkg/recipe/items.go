package recipe

import (
	"strings"
	"unicode"
)

// items is a cursor over the raw ingredients block, yielding one substring
// per Markdown list item. An item starts at a "- " marker and runs through
// any wrapped or nested lines up to the next line whose left-trimmed
// content starts with "-"; the remainder of the block is the final item.
type items struct {
	rest string
}

// next returns the next list-item substring, or ok=false when the block is
// exhausted.
func (it *items) next() (string, bool) {
	src := it.rest
	marker := strings.Index(src, "- ")
	if marker < 0 {
		return "", false
	}
	// Scan the lines after the marker for the start of the next item.
	lineStart := marker + len("- ")
	for {
		line := src[lineStart:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}
		if lineStart > marker+len("- ") && startsItem(line) {
			it.rest = src[lineStart:]
			return src[:lineStart], true
		}
		nl := strings.IndexByte(src[lineStart:], '\n')
		if nl < 0 {
			break
		}
		lineStart += nl + 1
	}
	// No further marker; the rest of the block is the last item.
	it.rest = ""
	return src, true
}

func startsItem(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "-")
}
