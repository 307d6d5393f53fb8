package textproc

import (
	"regexp"
	"strings"
)

// SectionMap maps a recognized header to its body. The SectionFull entry is
// always present and holds the entire normalized text.
type SectionMap map[string]string

// Well-known section keys.
const (
	SectionFull       = "full"
	SectionSummary    = "summary"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionEducation  = "education"
)

// sectionHeaders is the fixed set of recognized resume section headers,
// matched against a line after stripping non-alphabetic characters.
var sectionHeaders = map[string]struct{}{
	"summary":         {},
	"skills":          {},
	"experience":      {},
	"work experience": {},
	"education":       {},
	"projects":        {},
	"certifications":  {},
	"certification":   {},
}

// jdSectionCues are substrings that mark the requirements block of a job
// description (common ATS / LinkedIn phrasings).
var jdSectionCues = []string{
	"requirements",
	"qualifications",
	"what you will do",
	"what you'll do",
	"responsibilities",
	"preferred qualifications",
	"preferred",
	"minimum qualifications",
	"about you",
	"what we’re looking for",
	"what we're looking for",
	"skills",
}

var nonAlphaOrSpace = regexp.MustCompile(`[^a-z ]`)

// ExtractSections splits text into header-delimited sections. A line whose
// lower-cased, alphabetic-only form is a known header starts a section
// running until the next header or end of text. With no headers, only the
// SectionFull entry is returned.
func ExtractSections(text string) SectionMap {
	t := Normalize(text)

	raw := strings.Split(t, "\n")
	lines := make([]string, len(raw))
	for i, ln := range raw {
		lines[i] = strings.TrimSpace(ln)
	}

	type header struct {
		line int
		name string
	}
	var headers []header
	for i, ln := range lines {
		low := strings.TrimSpace(nonAlphaOrSpace.ReplaceAllString(strings.ToLower(ln), ""))
		if _, ok := sectionHeaders[low]; ok {
			headers = append(headers, header{line: i, name: low})
		}
	}

	sections := SectionMap{SectionFull: t}
	for i, h := range headers {
		end := len(lines)
		if i+1 < len(headers) {
			end = headers[i+1].line
		}
		sections[h.name] = strings.TrimSpace(strings.Join(lines[h.line+1:end], "\n"))
	}
	return sections
}

// Stop heuristic for the JD relevance block: a short all-caps line after
// enough collected lines is treated as the next header, and the block is
// hard-capped so a cue near the top cannot pull in the entire JD.
const (
	relevanceStopMinLines   = 10
	relevanceStopMaxLineLen = 40
	relevanceMaxLines       = 80
)

// ExtractJDRelevantBlock pulls the requirements/qualifications block out of a
// job description. When no cue line is found, the full normalized text is
// returned.
func ExtractJDRelevantBlock(jdText string) string {
	t := Normalize(jdText)

	var lines []string
	for _, ln := range strings.Split(t, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	cue := -1
scan:
	for i, ln := range lines {
		low := strings.ToLower(ln)
		for _, c := range jdSectionCues {
			if strings.Contains(low, c) {
				cue = i
				break scan
			}
		}
	}
	if cue < 0 {
		return t
	}

	var block []string
	for _, ln := range lines[cue:] {
		if isUpperLine(ln) && len(ln) <= relevanceStopMaxLineLen && len(block) > relevanceStopMinLines {
			break
		}
		block = append(block, ln)
		if len(block) >= relevanceMaxLines {
			break
		}
	}
	return strings.TrimSpace(strings.Join(block, "\n"))
}

// isUpperLine reports whether s contains at least one cased character and no
// lower-case ones.
func isUpperLine(s string) bool {
	return s != strings.ToLower(s) && s == strings.ToUpper(s)
}
