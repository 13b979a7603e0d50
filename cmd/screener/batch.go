package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talentops/screener/internal/batch"
	"github.com/talentops/screener/internal/extraction"
	"github.com/talentops/screener/internal/logging"
	"github.com/talentops/screener/internal/requisition"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every résumé in a directory against a requisition",
	Long:  "Screen all supported résumé files in a directory concurrently; per-file extraction failures are reported without aborting the batch.",
	RunE:  runBatch,
}

var (
	batchDir     string
	batchReq     string
	batchOut     string
	batchWorkers int
	batchTimeout time.Duration
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing résumé files")
	batchCmd.Flags().StringVarP(&batchReq, "requisition", "q", "", "Path to the requisition JSON file")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Write the report JSON to this file instead of stdout")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Number of concurrent workers (0 = default)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Second, "Per-résumé similarity deadline (0 = none)")

	batchCmd.MarkFlagRequired("dir")
	batchCmd.MarkFlagRequired("requisition")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	req, err := requisition.Load(batchReq)
	if err != nil {
		return err
	}

	files, err := collectResumeFiles(batchDir, logger)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported resume files found in %s", batchDir)
	}

	runner := batch.NewRunner(extraction.New(logger), newEngine(logger), logger, batchWorkers, batchTimeout)
	outcomes := runner.Run(cmd.Context(), req, files)

	return writeJSON(batchOut, batch.NewReport(req.Title, outcomes))
}

// collectResumeFiles gathers supported files from dir, skipping anything
// whose extension the extractor would reject.
func collectResumeFiles(dir string, logger *zap.Logger) ([]batch.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []batch.File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := extraction.DetectFormat(entry.Name()); err != nil {
			logger.Debug("skipping unsupported file", zap.String("file", entry.Name()))
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		files = append(files, batch.File{Name: entry.Name(), Content: content})
	}
	return files, nil
}
