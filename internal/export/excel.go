package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hirelens/hirelens/internal/domain"
)

const (
	summarySheet    = "Summary"
	candidatesSheet = "Ranked Candidates"
)

// WriteXLSX writes the ranked results as an Excel workbook: a summary sheet
// with run statistics and a candidates sheet mirroring the CSV table.
func WriteXLSX(outputPath string, results []domain.CandidateResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return fmt.Errorf("create candidates sheet: %w", err)
	}

	if err := writeSummarySheet(f, results); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}
	if err := writeCandidatesSheet(f, results); err != nil {
		return fmt.Errorf("write candidates sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook %s: %w", outputPath, err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, results []domain.CandidateResult) error {
	_ = f.SetColWidth(summarySheet, "A", "A", 28)
	_ = f.SetColWidth(summarySheet, "B", "B", 40)

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	flagged := 0
	var top float64
	for _, r := range results {
		if r.BiasFlagged {
			flagged++
		}
		if r.Score > top {
			top = r.Score
		}
	}

	rows := []struct {
		label string
		value any
	}{
		{"Resume Ranking Report", ""},
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Candidates Scored:", len(results)},
		{"Flagged For Bias Review:", flagged},
		{"Top Score:", fmt.Sprintf("%.4f", top)},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		_ = f.SetCellValue(summarySheet, cell, row.label)
		_ = f.SetCellStyle(summarySheet, cell, cell, labelStyle)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row.value)
	}
	return nil
}

func writeCandidatesSheet(f *excelize.File, results []domain.CandidateResult) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	flaggedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for col, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(candidatesSheet, cell, h)
		_ = f.SetCellStyle(candidatesSheet, cell, cell, headerStyle)
	}

	for i, r := range results {
		row := i + 2
		for col, v := range Row(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(candidatesSheet, cell, v)
		}
		if r.BiasFlagged {
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(Header), row)
			_ = f.SetCellStyle(candidatesSheet, first, last, flaggedStyle)
		}
	}

	if len(results) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(Header), len(results)+1)
		_ = f.AutoFilter(candidatesSheet, "A1:"+last, nil)
	}
	return f.SetPanes(candidatesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
