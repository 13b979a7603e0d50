package similarity

import (
	"context"

	"go.uber.org/zap"
)

// Scorer produces a similarity in [0,1] for any pair of texts. When the
// primary backend is missing or fails, the lexical fallback keeps the match
// pipeline running; Score itself never fails.
type Scorer struct {
	backend Backend
	logger  *zap.Logger
}

// NewScorer wraps a backend. A nil backend means fallback-only scoring; a
// nil logger is replaced with a no-op one.
func NewScorer(backend Backend, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{backend: backend, logger: logger}
}

func (s *Scorer) Score(ctx context.Context, a, b string) float64 {
	if s.backend != nil {
		score, err := s.backend.Score(ctx, a, b)
		if err == nil {
			return clamp01(score)
		}
		s.logger.Warn("similarity backend failed, falling back to lexical overlap",
			zap.String("backend", s.backend.Name()),
			zap.Error(err))
	}
	return Jaccard(a, b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
