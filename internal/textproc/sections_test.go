package textproc

import (
	"strings"
	"testing"
)

func TestExtractSections_BasicHeaders(t *testing.T) {
	text := "Jane Doe\n" +
		"Summary\n" +
		"Analyst with a data focus.\n" +
		"Skills\n" +
		"SQL, Python\n" +
		"Experience\n" +
		"Data Analyst at Acme\n"

	sections := ExtractSections(text)

	if _, ok := sections[SectionFull]; !ok {
		t.Fatal("expected full section to always be present")
	}
	if got := sections[SectionSummary]; got != "Analyst with a data focus." {
		t.Errorf("unexpected summary: %q", got)
	}
	if got := sections[SectionSkills]; got != "SQL, Python" {
		t.Errorf("unexpected skills: %q", got)
	}
	if got := sections[SectionExperience]; got != "Data Analyst at Acme" {
		t.Errorf("unexpected experience: %q", got)
	}
}

func TestExtractSections_HeaderDecorations(t *testing.T) {
	// Punctuation and case must not hide a header.
	text := "SKILLS:\nSQL\n** Work Experience **\nAcme Corp\n"
	sections := ExtractSections(text)

	if got := sections[SectionSkills]; got != "SQL" {
		t.Errorf("expected decorated header to be recognized, got skills=%q", got)
	}
	if got := sections["work experience"]; got != "Acme Corp" {
		t.Errorf("expected work experience section, got %q", got)
	}
}

func TestExtractSections_NoHeaders(t *testing.T) {
	text := "Just a plain paragraph about a candidate."
	sections := ExtractSections(text)

	if len(sections) != 1 {
		t.Fatalf("expected only the full section, got %d entries", len(sections))
	}
	if sections[SectionFull] != text {
		t.Errorf("full section should hold the normalized text, got %q", sections[SectionFull])
	}
}

func TestExtractSections_SectionRunsToNextHeader(t *testing.T) {
	text := "Education\nBS Statistics\nMore coursework\nSkills\nSQL\n"
	sections := ExtractSections(text)

	want := "BS Statistics\nMore coursework"
	if got := sections[SectionEducation]; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractJDRelevantBlock_CueFound(t *testing.T) {
	jd := "About Acme\nWe build widgets.\n\nRequirements\n- SQL\n- Python\n"
	block := ExtractJDRelevantBlock(jd)

	if !strings.HasPrefix(block, "Requirements") {
		t.Fatalf("expected block to start at the cue line, got %q", block)
	}
	if strings.Contains(block, "About Acme") {
		t.Errorf("block must not include text before the cue: %q", block)
	}
	if !strings.Contains(block, "- Python") {
		t.Errorf("block should include requirement lines: %q", block)
	}
}

func TestExtractJDRelevantBlock_NoCue(t *testing.T) {
	jd := "We are a friendly startup.\nCome join us."
	block := ExtractJDRelevantBlock(jd)

	if block != Normalize(jd) {
		t.Errorf("expected full normalized text when no cue is found, got %q", block)
	}
}

func TestExtractJDRelevantBlock_StopsAtUpperHeader(t *testing.T) {
	var b strings.Builder
	b.WriteString("Qualifications\n")
	for i := 0; i < 12; i++ {
		b.WriteString("- some requirement line\n")
	}
	b.WriteString("BENEFITS\n")
	b.WriteString("- free snacks\n")

	block := ExtractJDRelevantBlock(b.String())

	if strings.Contains(block, "BENEFITS") {
		t.Errorf("expected block to stop before the all-caps header: %q", block)
	}
	if strings.Contains(block, "free snacks") {
		t.Errorf("expected lines after the header to be excluded: %q", block)
	}
}

func TestExtractJDRelevantBlock_UpperHeaderTooEarlyIsKept(t *testing.T) {
	// The stop heuristic only fires after enough lines are collected.
	jd := "Requirements\n- SQL\nNOTE\n- Python\n"
	block := ExtractJDRelevantBlock(jd)

	if !strings.Contains(block, "NOTE") {
		t.Errorf("short blocks should not stop at an all-caps line: %q", block)
	}
}

func TestExtractJDRelevantBlock_CapsAtMaxLines(t *testing.T) {
	var b strings.Builder
	b.WriteString("Responsibilities\n")
	for i := 0; i < 200; i++ {
		b.WriteString("- do the thing\n")
	}

	block := ExtractJDRelevantBlock(b.String())

	if n := len(strings.Split(block, "\n")); n > relevanceMaxLines {
		t.Errorf("expected at most %d lines, got %d", relevanceMaxLines, n)
	}
}

func TestIsUpperLine(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"BENEFITS", true},
		{"ABOUT US", true},
		{"Requirements", false},
		{"- bullet", false},
		{"12345", false}, // no cased characters
		{"", false},
	}
	for _, tc := range cases {
		if got := isUpperLine(tc.in); got != tc.want {
			t.Errorf("isUpperLine(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
