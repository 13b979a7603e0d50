// Package batch screens many résumés against one requisition with bounded
// concurrency. Evaluations are independent; execution order never affects
// any individual result.
package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talentops/screener/internal/extraction"
	"github.com/talentops/screener/internal/matching"
	"github.com/talentops/screener/internal/requisition"
)

const defaultWorkers = 4

// File is one résumé payload queued for screening.
type File struct {
	Name    string
	Content []byte
}

// Outcome pairs one input file with its analysis or its failure reason.
type Outcome struct {
	AnalysisID string           `json:"analysis_id"`
	Filename   string           `json:"filename"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
	Result     *matching.Result `json:"result,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// Runner owns the extractor and engine shared by all workers.
type Runner struct {
	extractor *extraction.Extractor
	engine    *matching.Engine
	logger    *zap.Logger
	workers   int
	timeout   time.Duration
}

// NewRunner builds a batch runner. workers <= 0 selects the default; a zero
// timeout disables the per-evaluation deadline.
func NewRunner(extractor *extraction.Extractor, engine *matching.Engine, logger *zap.Logger, workers int, timeout time.Duration) *Runner {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		extractor: extractor,
		engine:    engine,
		logger:    logger,
		workers:   workers,
		timeout:   timeout,
	}
}

// Run screens every file against the requisition. A file that fails
// extraction is reported in its outcome and never aborts the rest of the
// batch. Outcomes come back in input order regardless of scheduling.
func (r *Runner) Run(ctx context.Context, req *requisition.Requisition, files []File) []Outcome {
	outcomes := make([]Outcome, len(files))
	skills := req.SkillList()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			outcomes[i] = r.screen(gctx, req, skills, f)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (r *Runner) screen(ctx context.Context, req *requisition.Requisition, skills []string, f File) Outcome {
	out := Outcome{
		AnalysisID: uuid.NewString(),
		Filename:   f.Name,
		AnalyzedAt: time.Now().UTC(),
	}

	text, err := r.extractor.Extract(f.Content, f.Name)
	if err != nil {
		r.logger.Warn("resume extraction failed",
			zap.String("file", f.Name),
			zap.Error(err))
		out.Error = err.Error()
		return out
	}

	// Embedding calls have no internal cancellation hook; the deadline here
	// bounds them, with the lexical fallback absorbing the timeout.
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	out.Result = r.engine.Analyze(ctx, text, req.Description, skills, req.ExperienceYears)
	return out
}
