package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "svc"
dbname = "availability"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, SourcePostgres, cfg.Upstream.Source)
	assert.Equal(t, domain.DefaultCapacity, cfg.Availability.DefaultCapacity)
	assert.Equal(t, domain.DefaultMaxRangeDays, cfg.Availability.MaxRangeDays)
	assert.Equal(t, domain.ModePerTimeslotCapacity, cfg.Availability.Policy().Mode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileValuesAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[database]
host = "db.internal"
port = 6432
user = "svc"
password = "from-file"
dbname = "availability"

[upstream]
source = "HTTP"
url = "http://offers.local"

[availability]
default_capacity = 4
mode = "hour_level_limit"
hour_limit = 2
`)

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("UPSTREAM_TOKEN", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "secret", cfg.Upstream.Token)
	assert.Equal(t, SourceHTTP, cfg.Upstream.Source)
	assert.Equal(t,
		"host=db.internal port=6432 user=svc password=from-env dbname=availability sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, domain.CapacityPolicy{
		DefaultCapacity: 4,
		Mode:            domain.ModeHourLevelLimit,
		HourLimit:       2,
	}, cfg.Availability.Policy())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "broken toml", content: "[server\nhttp_port = 1"},
		{name: "unknown source", content: "[upstream]\nsource = \"kafka\""},
		{name: "http source without url", content: "[upstream]\nsource = \"http\""},
		{name: "zero default capacity", content: "[availability]\ndefault_capacity = 0"},
		{name: "unknown mode", content: "[availability]\nmode = \"weekly\""},
		{name: "negative day limit", content: "[availability]\nday_limit = -1"},
		{name: "range too long", content: "[availability]\nmax_range_days = 100000"},
		{name: "cache without ttl", content: "[cache]\nenabled = true\nttl = 0"},
		{name: "bad port env", content: "", env: map[string]string{"HTTP_PORT": "eighty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
