package domain

// Resume is one input document: the original filename plus its raw text.
// Text extraction (PDF/DOCX) is the loader's concern; the core accepts any
// string, including empty.
type Resume struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// CandidateResult is the scored outcome for a single resume. Immutable after
// creation; all score fields are rounded to 4 decimal digits.
type CandidateResult struct {
	CandidateID string `json:"candidate_id"`
	Filename    string `json:"filename"`

	// Score is the weighted composite of the three signals below.
	Score      float64 `json:"score"`
	ScoreEmbed float64 `json:"score_embed"`
	ScoreSkill float64 `json:"score_skill"`
	ScoreExp   float64 `json:"score_exp"`

	// YearsExpGuess is the raw experience estimate, 0.0 when no pattern matched.
	YearsExpGuess float64 `json:"years_exp_guess"`

	// MatchedSkills and MissingSkills partition the JD skill set;
	// both are lexicographically sorted and lower-cased.
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`

	// EvidenceSnippets are verbatim resume lines containing a matched skill.
	EvidenceSnippets []string `json:"evidence_snippets"`

	BiasSensitiveFound SensitiveFindings `json:"bias_sensitive_found"`

	// BiasScoreDelta = score(original) - score(masked); positive means the
	// unmasked text scored higher.
	BiasScoreDelta float64 `json:"bias_score_delta"`
	BiasFlagged    bool    `json:"bias_flagged"`
}

// Settings is the scoring configuration threaded explicitly through every
// ranking call. The weights are expected (not enforced) to sum to 1.0.
type Settings struct {
	EmbeddingModel string  `json:"embedding_model"`
	WEmbed         float64 `json:"w_embed"`
	WSkill         float64 `json:"w_skill"`
	WExp           float64 `json:"w_exp"`
	BiasDeltaFlag  float64 `json:"bias_delta_flag"`
}
