// Package textproc holds the text heuristics behind resume ranking:
// whitespace normalization, section splitting, skill tokenization, and the
// years-of-experience estimate. Everything here is a total, pure function
// over arbitrary input strings.
package textproc

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	excessNL     = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalizes whitespace: null bytes become spaces, runs of
// horizontal whitespace collapse to one space, 3+ consecutive newlines
// collapse to exactly 2, and the result is trimmed. Empty input yields "".
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\x00", " ")
	text = horizontalWS.ReplaceAllString(text, " ")
	text = excessNL.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
