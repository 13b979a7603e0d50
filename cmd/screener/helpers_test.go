package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAPIKeyFromEnv_PrefersScreenerVariable(t *testing.T) {
	t.Setenv("SCREENER_GEMINI_API_KEY", "specific")
	t.Setenv("GEMINI_API_KEY", "generic")

	assert.Equal(t, "specific", apiKeyFromEnv())
}

func TestAPIKeyFromEnv_FallsBackToGeneric(t *testing.T) {
	t.Setenv("SCREENER_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "generic")

	assert.Equal(t, "generic", apiKeyFromEnv())
}

func TestNewEngine_WithoutAPIKey(t *testing.T) {
	t.Setenv("SCREENER_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	assert.NotNil(t, newEngine(zap.NewNop()))
}

func TestWriteJSON_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, writeJSON(path, map[string]int{"total": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 2}`, string(data))
}

func TestCollectResumeFiles_SkipsUnsupportedAndDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("python"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.xlsx"), []byte("nope"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	files, err := collectResumeFiles(dir, zap.NewNop())

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.Equal(t, []byte("python"), files[0].Content)
}
