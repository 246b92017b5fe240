package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roufai-ne/crou-management-system-sub010/pkg/constant"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, constant.DefaultLocale, cfg.Report.Locale)
	assert.Equal(t, constant.DefaultCurrency, cfg.Report.Currency)
	assert.Equal(t, constant.DefaultTimezone, cfg.Report.Timezone)
	assert.Equal(t, constant.PDFDefaultTimeout, cfg.Browser.RenderTimeout())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
log_level: debug
output_dir: /tmp/exports
report:
  locale: en-US
  currency: USD
browser:
  timeout_seconds: 30
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
	assert.Equal(t, "en-US", cfg.Report.Locale)
	assert.Equal(t, "USD", cfg.Report.Currency)
	// Unset fields keep their defaults.
	assert.Equal(t, constant.DefaultTimezone, cfg.Report.Timezone)
	assert.Equal(t, 30*time.Second, cfg.Browser.RenderTimeout())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CROU_LOG_LEVEL", "warn")
	t.Setenv("CROU_REPORT_LOCALE", "en-US")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "en-US", cfg.Report.Locale)
}
