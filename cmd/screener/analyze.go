package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/talentops/screener/internal/extraction"
	"github.com/talentops/screener/internal/logging"
	"github.com/talentops/screener/internal/requisition"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score one résumé against a requisition",
	Long:  "Extract text from a résumé file, derive skill and experience signals, and score it against a requisition JSON file.",
	RunE:  runAnalyze,
}

var (
	analyzeResume string
	analyzeReq    string
	analyzeOut    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the résumé file (pdf, doc, docx, txt)")
	analyzeCmd.Flags().StringVarP(&analyzeReq, "requisition", "q", "", "Path to the requisition JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the result JSON to this file instead of stdout")

	analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagRequired("requisition")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	req, err := requisition.Load(analyzeReq)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", analyzeResume, err)
	}

	text, err := extraction.New(logger).Extract(content, filepath.Base(analyzeResume))
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	engine := newEngine(logger)
	result := engine.Analyze(cmd.Context(), text, req.Description, req.SkillList(), req.ExperienceYears)

	return writeJSON(analyzeOut, result)
}
