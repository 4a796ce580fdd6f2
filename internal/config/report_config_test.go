package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReportConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	content := `customer: Acme
lenient: true
hidden_languages:
  - Cobol
  - VB6
table_style: TableStyleLight1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadReportConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Customer)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, []string{"Cobol", "VB6"}, cfg.HiddenLanguages)
	assert.Equal(t, "TableStyleLight1", cfg.TableStyle)
}

func TestLoadReportConfigMissingFile(t *testing.T) {
	_, err := LoadReportConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadReportConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customer: [unclosed"), 0644))

	_, err := LoadReportConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report config")
}
