// Package bias detects sensitive-attribute mentions in resume text and
// produces a redacted copy for masked re-scoring.
package bias

import (
	"math"
	"regexp"
	"strings"

	"github.com/hirelens/hirelens/internal/domain"
)

// Redacted is the literal token substituted for every sensitive match.
const Redacted = "[REDACTED]"

// sensitivePatterns pairs each category with its fixed case-insensitive
// pattern. Patterns target disjoint vocabularies, so category-by-category
// replacement never interferes with later patterns.
var sensitivePatterns = []struct {
	category domain.Category
	re       *regexp.Regexp
}{
	{domain.CategoryAge, regexp.MustCompile(`(?i)\b(\d{2})\s*(years old|yo)\b|\bdate of birth\b|\bdob\b`)},
	{domain.CategoryGenderedTerms, regexp.MustCompile(`(?i)\b(he/him|she/her|they/them|female|male|woman|man)\b`)},
	{domain.CategoryNationality, regexp.MustCompile(`(?i)\b(us citizen|u\.s\. citizen|citizenship|visa|h1b|f1|opt|cpt|green card)\b`)},
	{domain.CategoryReligion, regexp.MustCompile(`(?i)\b(christian|muslim|hindu|jewish|buddhist|sikh)\b`)},
	{domain.CategoryMaritalParental, regexp.MustCompile(`(?i)\b(married|single|divorced|mother|father|kids|children|pregnan)\b`)},
}

// Scan holds the outcome of one pass over a text: the per-category matches
// and the text with every match replaced by the Redacted token.
type Scan struct {
	Found      domain.SensitiveFindings
	MaskedText string
}

// ScanAndMask detects sensitive-attribute mentions and builds the redacted
// copy. Categories without hits are absent from Found; with no hits at all,
// MaskedText equals the input.
func ScanAndMask(text string) Scan {
	found := domain.SensitiveFindings{}
	masked := text

	for _, p := range sensitivePatterns {
		var hits []string
		for _, m := range p.re.FindAllStringSubmatch(masked, -1) {
			if h := flattenMatch(m); h != "" {
				hits = append(hits, h)
			}
		}
		if len(hits) == 0 {
			continue
		}
		found[p.category] = dedupeLower(hits)
		masked = p.re.ReplaceAllString(masked, Redacted)
	}

	return Scan{Found: found, MaskedText: masked}
}

// Flagged reports whether the masking-induced score change is large enough
// that a reviewer should look.
func Flagged(delta, threshold float64) bool {
	return math.Abs(delta) >= threshold
}

// flattenMatch joins the non-empty captured groups with a space. A match
// whose groups are all empty (e.g. the bare "dob" alternative of the age
// pattern) flattens to "" and is discarded by the caller.
func flattenMatch(m []string) string {
	var parts []string
	for _, g := range m[1:] {
		if g != "" {
			parts = append(parts, g)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// dedupeLower lower-cases hits and removes duplicates, preserving first-seen
// order.
func dedupeLower(hits []string) []string {
	seen := make(map[string]struct{}, len(hits))
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		h = strings.ToLower(h)
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}
