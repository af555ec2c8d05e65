package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "admin_session", cfg.Session.CookieName)
	assert.Equal(t, 720, cfg.Session.TTLMinutes)
	assert.EqualValues(t, 5*1024*1024, cfg.Upload.MaxFileSize)
	assert.False(t, cfg.PublicAPI.UseStore())
	assert.False(t, cfg.LLM.Enabled)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "server:\n  port: 9100\nadmin:\n  username: root\npublic_api:\n  mode: store\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("RONGHUA_ADMIN_PASSWORD", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, "from-env", cfg.Admin.Password)
	assert.True(t, cfg.PublicAPI.UseStore())
}

func TestLoadRejectsUnknownModes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("public_api:\n  mode: live\n"), 0o600))
	_, err := Load(dir)
	assert.Error(t, err)

	t.Setenv("RONGHUA_SESSION_STORE", "file")
	_, err = Load(t.TempDir())
	assert.Error(t, err)
}
