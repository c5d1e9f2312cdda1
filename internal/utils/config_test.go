package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "text", config.OutputFormat)
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log_level: debug
log_format: json
output_format: json
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	config, err := LoadConfigFromFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "json", config.OutputFormat)
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	_, err := LoadConfigFromFile("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfigFromFileEmptyPath(t *testing.T) {
	_, err := LoadConfigFromFile("")
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("ELF_INSPECT_LOG_LEVEL", "error")

	config, err := LoadDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad log level", content: "log_level: loud\n"},
		{name: "bad log format", content: "log_format: xml\n"},
		{name: "bad output format", content: "output_format: yaml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(tempDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			_, err := LoadConfigFromFile(configFile)
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}
