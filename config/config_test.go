package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shyptr/gqldb/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Threads)
	assert.Equal(t, []string{"tcp"}, cfg.Protocols)
	assert.Equal(t, "127.0.0.1:9874", cfg.TCP.Address)
	assert.True(t, cfg.HasProtocol(config.ProtocolTCP))
	assert.False(t, cfg.HasProtocol(config.ProtocolWS))
}

func TestLoad(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "gqldb.yaml", `
threads: 4
protocols: [tcp, ws]
ws:
  path: /query
log:
  level: debug
  format: json
parse_timeout: 250ms
store:
  url: file:///var/lib/gqldb
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Threads)
		assert.Equal(t, []string{"tcp", "ws"}, cfg.Protocols)
		assert.Equal(t, "/query", cfg.WS.Path)
		assert.Equal(t, "127.0.0.1:9875", cfg.WS.Address)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 250*time.Millisecond, cfg.ParseTimeout.Duration)
		assert.Equal(t, "file:///var/lib/gqldb", cfg.Store.URL)
		assert.Equal(t, 1<<20, cfg.MaxMessageBytes)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "gqldb.toml", `
threads = 8
protocols = ["ws"]
max_message_bytes = 4096
parse_timeout = "2s"

[health]
enabled = true
address = "127.0.0.1:7000"
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Threads)
		assert.Equal(t, []string{"ws"}, cfg.Protocols)
		assert.Equal(t, 4096, cfg.MaxMessageBytes)
		assert.Equal(t, 2*time.Second, cfg.ParseTimeout.Duration)
		assert.True(t, cfg.Health.Enabled)
		assert.Equal(t, "127.0.0.1:7000", cfg.Health.Address)
	})

	t.Run("rejects unknown extensions", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "gqldb.json", `{}`))
		assert.EqualError(t, err, `config: unsupported file type ".json"`)
	})

	t.Run("reports missing files", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reports malformed durations", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "gqldb.yaml", "parse_timeout: soon\n"))
		assert.Error(t, err)
	})

	t.Run("rejects a zero parse timeout", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "gqldb.yaml", "parse_timeout: 0s\n"))
		assert.EqualError(t, err, "config: parse_timeout must be positive, got 0s")
	})
}

func TestValidate(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate func(*config.Config)
		want   string
	}{
		"too many threads": {
			mutate: func(c *config.Config) { c.Threads = 17 },
			want:   "threads",
		},
		"no threads": {
			mutate: func(c *config.Config) { c.Threads = 0 },
			want:   "threads",
		},
		"unknown protocol": {
			mutate: func(c *config.Config) { c.Protocols = []string{"tcp", "udp"} },
			want:   "protocols[1] udp",
		},
		"no protocols": {
			mutate: func(c *config.Config) { c.Protocols = nil },
			want:   "protocols",
		},
		"bad log level": {
			mutate: func(c *config.Config) { c.Log.Level = "loud" },
			want:   "log.level",
		},
		"relative ws path": {
			mutate: func(c *config.Config) { c.WS.Path = "graphql" },
			want:   "ws.path",
		},
		"zero timeout": {
			mutate: func(c *config.Config) { c.ParseTimeout.Duration = 0 },
			want:   "parse_timeout",
		},
		"negative timeout": {
			mutate: func(c *config.Config) { c.ParseTimeout.Duration = -time.Second },
			want:   "parse_timeout",
		},
	} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
