// Package bio classifies BIO span tags. A nil tag is an absent neighbour at
// a sentence boundary and is never the same as Outside.
package bio

import "strings"

const (
	Begin   = "B-"
	Inside  = "I-"
	Outside = "O"

	prefixLen = 2
)

// Label returns the span label of a B- or I- tag.
func Label(tag string) string {
	if len(tag) < prefixLen {
		return ""
	}
	return tag[prefixLen:]
}

// IsStart reports whether curr opens a span. The neighbours are not looked at.
func IsStart(prev, curr, next *string) bool {
	return strings.HasPrefix(*curr, Begin)
}

// IsEnd reports whether curr is the last token of a span: next is absent,
// Outside, or carries a different label.
func IsEnd(prev, curr, next *string) bool {
	if !strings.HasPrefix(*curr, Begin) && !strings.HasPrefix(*curr, Inside) {
		return false
	}
	return next == nil || *next == Outside || Label(*next) != Label(*curr)
}
