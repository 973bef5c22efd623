package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5432
user = "seating"
password = "secret"
dbname = "velostudio"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true

[velo]
timeout = 5
default_ftp = 180

[[accounts]]
stand_id = 1
identifier = "studio-01"
email = "stand01@example.com"
password = "pw"
base_url = "https://velo.example.com"
display_name = "Stand 01"

[[accounts]]
stand_id = 2
identifier = "studio-02"
email = "stand02@example.com"
password = "pw"
base_url = "https://velo.example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Velo.Timeout)
	assert.Equal(t, 180, cfg.Velo.DefaultFTP)
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, int64(1), cfg.Accounts[0].StandID)
	assert.Equal(t, "studio-02", cfg.Accounts[1].Identifier)

	assert.Contains(t, cfg.Database.DSN(), "host=db.local")
	assert.Contains(t, cfg.Database.DSN(), "dbname=velostudio")
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "seating"
dbname = "velostudio"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "seating-service", cfg.Metrics.ServiceName)
	assert.Equal(t, 15, cfg.Velo.Timeout)
	assert.Equal(t, 150, cfg.Velo.DefaultFTP)
	assert.Empty(t, cfg.Accounts)
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "seating"
dbname = "velostudio"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
}

func TestLoad_DuplicateStandMapping(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "seating"
dbname = "velostudio"

[[accounts]]
stand_id = 1
identifier = "studio-01"
email = "a@example.com"
password = "pw"
base_url = "https://velo.example.com"

[[accounts]]
stand_id = 1
identifier = "studio-02"
email = "b@example.com"
password = "pw"
base_url = "https://velo.example.com"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stand 1")
}

func TestLoad_AccountMissingCredentials(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "seating"
dbname = "velostudio"

[[accounts]]
stand_id = 3
identifier = "studio-03"
email = "c@example.com"
base_url = "https://velo.example.com"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "studio-03")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
