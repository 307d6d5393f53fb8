package ranking

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hirelens/hirelens/internal/bias"
	"github.com/hirelens/hirelens/internal/domain"
	"github.com/hirelens/hirelens/internal/metrics"
	"github.com/hirelens/hirelens/internal/textproc"
)

const (
	// maxEvidenceSnippets caps evidence lines collected across all matched skills.
	maxEvidenceSnippets = 6
	// expCapYears is the experience ceiling: years/expCapYears, capped at 1.0.
	expCapYears = 8.0
)

// Service scores and orders a batch of candidate resumes against one job
// description. Each resume is processed independently; the only blocking
// calls are to the embedder.
type Service struct {
	embed   Embedder
	lexicon *textproc.Lexicon
	logger  *zap.Logger
}

// New creates a ranking service.
func New(embed Embedder, lexicon *textproc.Lexicon, logger *zap.Logger) *Service {
	return &Service{embed: embed, lexicon: lexicon, logger: logger}
}

// Rank scores every resume against jdText and returns results sorted by
// descending score, ties preserving input order. The job description must be
// non-empty after trimming and the batch non-empty; any embedding failure
// aborts the whole run with no partial results.
func (s *Service) Rank(
	ctx context.Context, jdText string, resumes []domain.Resume, settings domain.Settings,
) ([]domain.CandidateResult, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, domain.ErrEmptyJobDescription
	}
	if len(resumes) == 0 {
		return nil, domain.ErrNoResumes
	}

	start := time.Now()

	jdNorm := textproc.Normalize(jdText)
	jdSkills := s.jobSkills(jdNorm)

	jdEmb, err := s.embed.Embed(ctx, jdNorm)
	if err != nil {
		return nil, fmt.Errorf("embed job description: %w", err)
	}

	results := make([]domain.CandidateResult, 0, len(resumes))
	for i, resume := range resumes {
		r, err := s.scoreResume(ctx, i+1, resume, jdEmb.Embedding, jdSkills, settings)
		if err != nil {
			return nil, fmt.Errorf("score resume %q: %w", resume.Filename, err)
		}
		if r.BiasFlagged {
			metrics.BiasFlagsTotal.Inc()
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	metrics.ResumesRankedTotal.Add(float64(len(results)))
	metrics.RankDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("Ranked candidates",
		zap.Int("resumes", len(results)),
		zap.Int("jd_skills", len(jdSkills)),
		zap.Duration("duration", time.Since(start)),
	)
	return results, nil
}

// jobSkills tokenizes the JD's skills block: the "skills" section when
// present and non-empty, otherwise the relevance-block fallback.
func (s *Service) jobSkills(jdNorm string) []string {
	block := textproc.ExtractSections(jdNorm)[textproc.SectionSkills]
	if block == "" {
		block = textproc.ExtractJDRelevantBlock(jdNorm)
	}
	return s.lexicon.Tokenize(block)
}

func (s *Service) scoreResume(
	ctx context.Context, seq int, resume domain.Resume,
	jdVec []float32, jdSkills []string, settings domain.Settings,
) (domain.CandidateResult, error) {
	norm := textproc.Normalize(resume.Text)
	scan := bias.ScanAndMask(norm)

	orig, masked, err := s.embedPair(ctx, norm, scan.MaskedText)
	if err != nil {
		return domain.CandidateResult{}, err
	}

	sim := cosineSimilarity(jdVec, orig)
	simMasked := cosineSimilarity(jdVec, masked)

	sections := textproc.ExtractSections(norm)
	skillsBlock := sections[textproc.SectionSkills]
	if skillsBlock == "" {
		skillsBlock = norm
	}
	skillScore, matchedSkills, missingSkills := skillOverlap(jdSkills, s.lexicon.Tokenize(skillsBlock))

	years := textproc.YearsOfExperience(norm)
	expScore := math.Min(years/expCapYears, 1.0)

	score := settings.WEmbed*sim + settings.WSkill*skillScore + settings.WExp*expScore
	scoreMasked := settings.WEmbed*simMasked + settings.WSkill*skillScore + settings.WExp*expScore
	delta := round4(score - scoreMasked)

	return domain.CandidateResult{
		CandidateID:        fmt.Sprintf("C%03d", seq),
		Filename:           resume.Filename,
		Score:              round4(score),
		ScoreEmbed:         round4(sim),
		ScoreSkill:         round4(skillScore),
		ScoreExp:           round4(expScore),
		YearsExpGuess:      years,
		MatchedSkills:      matchedSkills,
		MissingSkills:      missingSkills,
		EvidenceSnippets:   evidenceSnippets(norm, matchedSkills),
		BiasSensitiveFound: scan.Found,
		BiasScoreDelta:     delta,
		BiasFlagged:        bias.Flagged(delta, settings.BiasDeltaFlag),
	}, nil
}

// embedPair vectorizes the original and masked resume text, in one provider
// call when the embedder supports batching.
func (s *Service) embedPair(ctx context.Context, original, masked string) ([]float32, []float32, error) {
	texts := []string{original, masked}

	var res domain.BatchEmbeddingResult
	var err error
	if be, ok := s.embed.(domain.BatchEmbedder); ok {
		res, err = be.BatchEmbed(ctx, texts)
	} else {
		res, err = domain.BatchFallback(ctx, s.embed, texts)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("embed resume pair: %w", err)
	}
	if len(res.Embeddings) != len(texts) {
		return nil, nil, fmt.Errorf("got %d embeddings for %d texts: %w",
			len(res.Embeddings), len(texts), domain.ErrEmbeddingProviderError)
	}
	return res.Embeddings[0], res.Embeddings[1], nil
}

// skillOverlap partitions the JD skill set into matched and missing against
// the resume's skills. Both slices come back sorted; with an empty JD skill
// set the score is 0 and both slices empty.
func skillOverlap(jdSkills, resumeSkills []string) (float64, []string, []string) {
	matched := []string{}
	missing := []string{}

	jdSet := toSet(jdSkills)
	if len(jdSet) == 0 {
		return 0, matched, missing
	}

	resumeSet := toSet(resumeSkills)
	for sk := range jdSet {
		if _, ok := resumeSet[sk]; ok {
			matched = append(matched, sk)
		} else {
			missing = append(missing, sk)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return float64(len(matched)) / float64(len(jdSet)), matched, missing
}

// evidenceSnippets collects, per matched skill in sorted order, the first
// non-empty resume line containing it, stopping once the global cap is hit.
func evidenceSnippets(resumeText string, matchedSkills []string) []string {
	var lines []string
	for _, ln := range strings.Split(resumeText, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	snippets := []string{}
	for _, skill := range matchedSkills {
		for _, ln := range lines {
			if strings.Contains(strings.ToLower(ln), skill) {
				snippets = append(snippets, ln)
				break
			}
		}
		if len(snippets) >= maxEvidenceSnippets {
			break
		}
	}
	return snippets
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = struct{}{}
	}
	return set
}
