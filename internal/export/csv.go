// Package export renders ranked candidate results as CSV and XLSX tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hirelens/hirelens/internal/domain"
)

// Header is the column layout of the ranked-candidates table, one row per
// CandidateResult.
var Header = []string{
	"Candidate",
	"Resume File",
	"Overall Score",
	"Embed Similarity",
	"Skill Match",
	"Exp Score",
	"Years Exp",
	"Bias Flagged",
	"Bias Delta",
	"Sensitive Detected",
}

// WriteCSV writes the ranked results as CSV, header included.
func WriteCSV(w io.Writer, results []domain.CandidateResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		if err := cw.Write(Row(r)); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.CandidateID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Row renders one result in the Header column order.
func Row(r domain.CandidateResult) []string {
	return []string{
		r.CandidateID,
		r.Filename,
		formatScore(r.Score),
		formatScore(r.ScoreEmbed),
		formatScore(r.ScoreSkill),
		formatScore(r.ScoreExp),
		strconv.FormatFloat(r.YearsExpGuess, 'f', -1, 64),
		strconv.FormatBool(r.BiasFlagged),
		formatScore(r.BiasScoreDelta),
		strings.Join(r.BiasSensitiveFound.Detected(), ", "),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
