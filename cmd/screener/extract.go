package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentops/screener/internal/extraction"
	"github.com/talentops/screener/internal/logging"
	"github.com/talentops/screener/internal/signals"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text and signals from a résumé file",
	Long:  "Extract normalized text from a résumé file and print the skills and experience signals derived from it.",
	RunE:  runExtract,
}

var extractFile string

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to the résumé file (pdf, doc, docx, txt)")
	extractCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	content, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", extractFile, err)
	}

	text, err := extraction.New(logger).Extract(content, filepath.Base(extractFile))
	if err != nil {
		return err
	}

	skills := signals.ExtractSkills(text)
	years := signals.ExtractExperienceYears(text)

	fmt.Fprintf(os.Stdout, "Extracted %d characters\n\n%s\n\n", len(text), text)
	fmt.Fprintf(os.Stdout, "Skills: %s\n", strings.Join(skills, ", "))
	fmt.Fprintf(os.Stdout, "Experience: %d years\n", years)

	return nil
}
