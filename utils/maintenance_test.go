package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceActive(t *testing.T) {
	dir := t.TempDir()
	flag := filepath.Join(dir, ".maintenance")

	assert.False(t, MaintenanceActive(flag))

	require.NoError(t, os.WriteFile(flag, []byte{}, 0644))
	assert.True(t, MaintenanceActive(flag))
}

func TestMaintenanceConfigRoundTrip(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "maintenance.json")

	conf := MaintenanceConfig{
		Enabled:           true,
		StartTime:         time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC),
		EstimatedDuration: "30m",
		Reason:            "database migration",
		AllowedIPs:        []string{"10.0.0.1", "10.0.0.2"},
		BypassKey:         "letmein",
	}
	require.NoError(t, SaveMaintenanceConfig(confFile, conf))

	loaded := LoadMaintenanceConfig(confFile)
	assert.Equal(t, conf, loaded)
}

func TestLoadMaintenanceConfigMissingFile(t *testing.T) {
	loaded := LoadMaintenanceConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, MaintenanceConfig{}, loaded)
}

func TestLoadMaintenanceConfigCorruptFile(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "maintenance.json")
	require.NoError(t, os.WriteFile(confFile, []byte("{not json"), 0644))

	loaded := LoadMaintenanceConfig(confFile)
	assert.Equal(t, MaintenanceConfig{}, loaded)
}

func TestAllowsIP(t *testing.T) {
	conf := MaintenanceConfig{AllowedIPs: []string{"192.168.1.10"}}

	assert.True(t, conf.AllowsIP("192.168.1.10"))
	assert.False(t, conf.AllowsIP("192.168.1.11"))
	assert.False(t, MaintenanceConfig{}.AllowsIP("192.168.1.10"))
}
