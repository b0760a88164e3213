package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-grades/internal/grading"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"MODE", "HTTP_ADDR", "PORT", "DB_DRIVER", "DB_DSN", "WEIGHTS_FILE", "SEED_FILE", "STRICT_MEANS", "ENABLE_METRICS", "CORS_ORIGINS_OFFLINE"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, ModeOffline, cfg.Mode)
	assert.Equal(t, ":5050", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.False(t, cfg.StrictMeans)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("STRICT_MEANS", "yes")
	t.Setenv("ENABLE_METRICS", "0")
	t.Setenv("CORS_ORIGINS_ONLINE", "https://a.example, ,https://b.example")

	cfg := FromEnv()
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "memory", cfg.DBDriver)
	assert.True(t, cfg.StrictMeans)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())

	t.Setenv("CORS_ORIGINS_ONLINE", "")
	assert.Empty(t, FromEnv().CORSOrigins())

	t.Setenv("HTTP_ADDR", "127.0.0.1:8081")
	assert.Equal(t, "127.0.0.1:8081", FromEnv().HTTPAddr)
}

func TestLoadWeights(t *testing.T) {
	w, err := LoadWeights("")
	require.NoError(t, err)
	assert.Equal(t, grading.DefaultWeights(), w)

	dir := t.TempDir()
	write := func(body string) string {
		p := filepath.Join(dir, "weights.yaml")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	w, err = LoadWeights(write("weights:\n  exam: 0.6\n  quiz: 0.2\n  homework: 0.2\n"))
	require.NoError(t, err)
	assert.InDelta(t, 0.6, w.Weight(grading.TypeExam), 1e-12)

	_, err = LoadWeights(write("weights:\n  exam: 0.6\n  quiz: 0.4\n"))
	assert.ErrorContains(t, err, "Homework")

	_, err = LoadWeights(write("weights:\n  exam: 0.6\n  quiz: 0.3\n  homework: 0.3\n"))
	assert.ErrorContains(t, err, "sum to 1")

	_, err = LoadWeights(write("weights:\n  exam: 1.5\n  quiz: 0\n  homework: 0\n"))
	assert.Error(t, err)

	_, err = LoadWeights(write("weights:\n  exam: 0.5\n  quiz: 0.3\n  homework: 0.2\n  lab: 0.1\n"))
	assert.ErrorContains(t, err, "lab")

	_, err = LoadWeights(write(""))
	assert.ErrorContains(t, err, "Exam")

	_, err = LoadWeights(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}
