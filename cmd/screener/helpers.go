package main

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/talentops/screener/internal/matching"
	"github.com/talentops/screener/internal/similarity"
)

// apiKeyFromEnv resolves the Gemini API key, preferring the
// screener-specific variable over the generic one.
func apiKeyFromEnv() string {
	if key := os.Getenv("SCREENER_GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}

// newEngine wires the match engine. Without an API key the scorer runs on
// the lexical fallback only; that is degradation, not an error.
func newEngine(logger *zap.Logger) *matching.Engine {
	var backend similarity.Backend
	if key := apiKeyFromEnv(); key != "" {
		backend = similarity.NewGeminiBackend(key, os.Getenv("SCREENER_EMBEDDING_MODEL"))
	} else {
		logger.Info("no Gemini API key configured; scoring with lexical similarity only")
	}
	return matching.NewEngine(similarity.NewScorer(backend, logger))
}

// writeJSON writes v as indented JSON to path, or to stdout when path is
// empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
