package textproc

import (
	"regexp"
	"strings"
)

const (
	maxFragmentLen = 60 // longer fragments are sentences, not skills
	maxSkillLen    = 40
)

var (
	skillDelimiters = regexp.MustCompile(`[,|;/]+`)
	bulletPrefix    = regexp.MustCompile(`^[\-\*•\d\.\)\( ]+`)
)

// Lexicon bundles the curated dictionaries that drive skill tokenization.
// A Lexicon is immutable once built and safe to share across goroutines.
type Lexicon struct {
	commonSkills   []string
	fillerPatterns []*regexp.Regexp
	hardSkills     []string
}

// commonSkills is ordered so that substring-scan hits are appended
// deterministically across runs.
var commonSkills = []string{
	"sql", "python", "excel", "tableau", "power bi", "looker",
	"analytics", "data analysis", "data visualization",
	"a/b testing", "ab testing", "experimentation",
	"product analytics", "cohort analysis", "funnel analysis",
	"stakeholder management", "requirements gathering",
	"user research", "jira", "confluence",
	"statistics", "hypothesis testing",
	"etl", "data pipelines",
	"machine learning", "nlp",
	"mysql", "postgresql", "bigquery", "snowflake",
	"aws", "gcp", "azure",
}

// fillerPatterns mark generic job-ad phrasing that is not a skill.
var fillerPatterns = []string{
	`\babout\b`,
	`\bteam\b`,
	`\bcompany\b`,
	`\bresponsible for\b`,
	`\bability to\b`,
	`\bstrong\b`,
	`\bexcellent\b`,
	`\bcommunication\b`,
	`\bfast[- ]paced\b`,
	`\bdetail[- ]oriented\b`,
	`\bself[- ]starter\b`,
}

// hardSkills exempt a candidate from filler filtering: a fragment containing
// one of these is kept even when it also matches a filler pattern.
var hardSkills = []string{"sql", "python", "excel", "tableau", "power bi", "looker"}

// DefaultLexicon builds the Lexicon from the curated dictionaries.
func DefaultLexicon() *Lexicon {
	fillers := make([]*regexp.Regexp, len(fillerPatterns))
	for i, p := range fillerPatterns {
		fillers[i] = regexp.MustCompile(p)
	}
	return &Lexicon{
		commonSkills:   commonSkills,
		fillerPatterns: fillers,
		hardSkills:     hardSkills,
	}
}

// Tokenize extracts an ordered, deduplicated list of lower-cased skill
// phrases from a text block: bullet items and delimiter-separated fragments,
// plus substring hits from the common-skills dictionary, minus filler
// phrases.
func (l *Lexicon) Tokenize(text string) []string {
	t := strings.ToLower(Normalize(text))

	var candidates []string
	for _, ln := range strings.Split(t, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		for _, part := range skillDelimiters.Split(ln, -1) {
			part = cleanToken(part)
			if part == "" || len(part) > maxFragmentLen {
				continue
			}
			candidates = append(candidates, part)
		}
	}

	// Curated skills can hide mid-sentence where the splitter misses them.
	for _, sk := range l.commonSkills {
		if strings.Contains(t, sk) {
			candidates = append(candidates, sk)
		}
	}

	var filtered []string
	for _, c := range candidates {
		if l.isFiller(c) && !l.containsHardSkill(c) {
			continue
		}
		if len(c) > 1 && len(c) <= maxSkillLen {
			filtered = append(filtered, c)
		}
	}

	seen := make(map[string]struct{}, len(filtered))
	out := make([]string, 0, len(filtered))
	for _, c := range filtered {
		c = strings.ToLower(strings.TrimSpace(c))
		c = strings.ReplaceAll(c, "ab testing", "a/b testing")
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (l *Lexicon) isFiller(candidate string) bool {
	for _, p := range l.fillerPatterns {
		if p.MatchString(candidate) {
			return true
		}
	}
	return false
}

func (l *Lexicon) containsHardSkill(candidate string) bool {
	for _, h := range l.hardSkills {
		if strings.Contains(candidate, h) {
			return true
		}
	}
	return false
}

// cleanToken strips bullet/numbering prefixes and collapses inner whitespace.
func cleanToken(token string) string {
	token = strings.TrimSpace(token)
	token = bulletPrefix.ReplaceAllString(token, "")
	token = horizontalWS.ReplaceAllString(token, " ")
	return strings.TrimSpace(token)
}
