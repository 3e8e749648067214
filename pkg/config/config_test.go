package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "pbpkit"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "pbpkit"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "pbpkit", "logs"),
		},
		{
			msg: "sources file",
			fn:  config.SourcesFilePath,
			res: filepath.Join(tempHome, ".config", "pbpkit", "sources.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "pbp", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10_000, cfg.Database.BatchSize)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []config.Option
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "sets valid host",
			opts: []config.Option{config.OptDatabaseHost("db.example.com")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "db.example.com", cfg.Database.Host)
			},
		},
		{
			name: "trims whitespace",
			opts: []config.Option{config.OptDatabaseUser("  nfl  ")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "nfl", cfg.Database.User)
			},
		},
		{
			name: "ignores empty string",
			opts: []config.Option{config.OptDatabaseHost("   ")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "localhost", cfg.Database.Host)
			},
		},
		{
			name: "ignores invalid port",
			opts: []config.Option{config.OptDatabasePort(-1)},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 5432, cfg.Database.Port)
			},
		},
		{
			name: "ignores unknown log level",
			opts: []config.Option{config.OptLogLevel("loud")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name: "lowercases log format",
			opts: []config.Option{config.OptLogFormat("TEXT")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "text", cfg.Log.Format)
			},
		},
		{
			name: "sets runtime enrich fields",
			opts: []config.Option{
				config.OptEnrichInputPath("plays_2015.csv"),
				config.OptEnrichStore(true),
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "plays_2015.csv", cfg.Enrich.InputPath)
				assert.True(t, cfg.Enrich.Store)
			},
		},
		{
			name: "historical nil means unset",
			opts: []config.Option{config.OptEnrichHistorical(nil)},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Nil(t, cfg.Enrich.Historical)
			},
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update(v.opts)
			v.check(t, cfg)
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.com"),
		config.OptDatabaseBatchSize(2500),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(3),
		// runtime-only, must not survive the round trip
		config.OptEnrichInputPath("plays.csv"),
		config.OptHomeDir("/tmp/home"),
	})

	restored := config.New()
	restored.Update(cfg.ToOptions())

	assert.Equal(t, "db.example.com", restored.Database.Host)
	assert.Equal(t, 2500, restored.Database.BatchSize)
	assert.Equal(t, "debug", restored.Log.Level)
	assert.Equal(t, 3, restored.JobsNumber)
	assert.Empty(t, restored.Enrich.InputPath)
	assert.Empty(t, restored.HomeDir)
}
