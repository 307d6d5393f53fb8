package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hirelens/hirelens/internal/config"
	"github.com/hirelens/hirelens/internal/domain"
	"github.com/hirelens/hirelens/internal/export"
	"github.com/hirelens/hirelens/internal/loader"
	logpkg "github.com/hirelens/hirelens/internal/logger"
	"github.com/hirelens/hirelens/internal/metrics"
	"github.com/hirelens/hirelens/internal/usecase/explain"
)

type rankFlags struct {
	jdPath     string
	resumesDir string
	csvPath    string
	xlsxPath   string
	explainTop int
}

func newRankCmd() *cobra.Command {
	var flags rankFlags

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank a directory of resumes against a job description file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.jdPath, "jd", "", "path to the job description text file (required)")
	cmd.Flags().StringVar(&flags.resumesDir, "resumes", "", "directory of resume files, .txt or .md (required)")
	cmd.Flags().StringVar(&flags.csvPath, "csv", "", "write the ranked table to this CSV file")
	cmd.Flags().StringVar(&flags.xlsxPath, "xlsx", "", "write the ranked table to this Excel workbook")
	cmd.Flags().IntVar(&flags.explainTop, "explain-top", 0, "generate recruiter explanations for the top N candidates")
	_ = cmd.MarkFlagRequired("jd")
	_ = cmd.MarkFlagRequired("resumes")

	return cmd
}

func runRank(cmd *cobra.Command, flags rankFlags) error {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterRankingMetrics()

	jdBytes, err := os.ReadFile(flags.jdPath)
	if err != nil {
		return fmt.Errorf("read job description %s: %w", flags.jdPath, err)
	}

	resumes, err := loader.LoadDir(flags.resumesDir)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no supported resume files in %s (supported: %s)",
			flags.resumesDir, strings.Join(loader.SupportedExtensions(), ", "))
	}

	pipeline, err := buildPipeline(cmd.Context(), &cfg, logger)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	results, err := pipeline.Ranker.Rank(cmd.Context(), string(jdBytes), resumes, cfg.Settings())
	if err != nil {
		return err
	}

	printRankTable(cmd.OutOrStdout(), results)

	if flags.csvPath != "" {
		if err := writeCSVFile(flags.csvPath, results); err != nil {
			return err
		}
		logger.Info("Wrote CSV report", zap.String("path", flags.csvPath))
	}
	if flags.xlsxPath != "" {
		if err := export.WriteXLSX(flags.xlsxPath, results); err != nil {
			return err
		}
		logger.Info("Wrote Excel report", zap.String("path", flags.xlsxPath))
	}

	if flags.explainTop > 0 {
		if err := printExplanations(cmd, pipeline.Explainer, string(jdBytes), results, flags.explainTop); err != nil {
			return err
		}
	}
	return nil
}

func printRankTable(w io.Writer, results []domain.CandidateResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(export.Header, "\t"))
	for _, r := range results {
		fmt.Fprintln(tw, strings.Join(export.Row(r), "\t"))
	}
	_ = tw.Flush()
}

func writeCSVFile(path string, results []domain.CandidateResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}
	if err := export.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printExplanations(
	cmd *cobra.Command, explainer *explain.Service,
	jdText string, results []domain.CandidateResult, top int,
) error {
	if top > len(results) {
		top = len(results)
	}
	out := cmd.OutOrStdout()

	for _, r := range results[:top] {
		text, err := explainer.Explain(cmd.Context(), explain.Request{
			JDText:           jdText,
			MatchedSkills:    r.MatchedSkills,
			MissingSkills:    r.MissingSkills,
			EvidenceSnippets: r.EvidenceSnippets,
			SensitiveFound:   r.BiasSensitiveFound,
		})
		if err != nil {
			return fmt.Errorf("explain %s: %w", r.CandidateID, err)
		}
		fmt.Fprintf(out, "\n=== %s (%s) ===\n%s\n", r.CandidateID, r.Filename, text)
	}
	return nil
}
