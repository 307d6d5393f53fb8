package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/hirelens/hirelens/internal/domain"
)

func sampleResult() domain.CandidateResult {
	return domain.CandidateResult{
		CandidateID:   "C001",
		Filename:      "jane.txt",
		Score:         0.7123,
		ScoreEmbed:    0.91,
		ScoreSkill:    0.5,
		ScoreExp:      0.375,
		YearsExpGuess: 3,
		MatchedSkills: []string{"sql"},
		MissingSkills: []string{"python"},
		BiasSensitiveFound: domain.SensitiveFindings{
			domain.CategoryAge:             {"35 years old"},
			domain.CategoryMaritalParental: {"married"},
		},
		BiasScoreDelta: 0.08,
		BiasFlagged:    true,
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []domain.CandidateResult{sampleResult()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if !reflect.DeepEqual(records[0], Header) {
		t.Errorf("unexpected header: %v", records[0])
	}

	want := []string{
		"C001", "jane.txt",
		"0.7123", "0.9100", "0.5000", "0.3750",
		"3", "true", "0.0800",
		"age, marital_parental",
	}
	if !reflect.DeepEqual(records[1], want) {
		t.Errorf("unexpected row:\ngot:  %v\nwant: %v", records[1], want)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}

func TestRow_NoFindings(t *testing.T) {
	r := sampleResult()
	r.BiasSensitiveFound = nil
	r.BiasFlagged = false

	row := Row(r)
	if got := row[len(row)-1]; got != "" {
		t.Errorf("expected empty sensitive column, got %q", got)
	}
	if got := row[7]; got != "false" {
		t.Errorf("expected false flag column, got %q", got)
	}
}
