package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/retireplan/internal/catalog"
)

func writeConfig(t *testing.T, projectDir, body string) {
	t.Helper()
	stateDir := filepath.Join(projectDir, StateDirName)
	require.NoError(t, os.MkdirAll(stateDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, configFileName), []byte(strings.TrimSpace(body)), 0o644))
}

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	c, err := NewConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1, c.Project.Version)
	assert.Equal(t, "info", c.LogLevel())
	assert.Equal(t, ThemeAuto, c.Theme())

	form := c.InitialForm()
	assert.Equal(t, 30, form.Age)
	assert.Equal(t, 65, form.RetirementAge)
	assert.True(t, form.CurrentSuper.Equal(decimal.NewFromInt(50000)), "current super %s", form.CurrentSuper)
	assert.True(t, form.MonthlyContribution.Equal(decimal.NewFromInt(500)), "monthly %s", form.MonthlyContribution)
	assert.Equal(t, catalog.RiskBalanced, form.RiskTolerance)
}

func TestInitDirWritesParsableConfig(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, InitDir(projectDir))

	_, err := os.Stat(filepath.Join(projectDir, StateDirName, "logs"))
	require.NoError(t, err, "logs dir missing")

	c, err := NewConfig(projectDir)
	require.NoError(t, err, "default config did not load")
	assert.Equal(t, "balanced", c.Project.Defaults.RiskTolerance)
}

func TestInitDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, "version: 1\nui:\n  theme: dark\n")
	require.NoError(t, InitDir(projectDir))

	c, err := NewConfig(projectDir)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, c.Theme(), "existing config was overwritten")
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	writeConfig(t, projectDir, `
version: 1
defaults:
  name: "  Ada  "
  age: 41
  retirement_age: 60
  current_super: "120000.50"
  monthly_contribution: "1250"
  risk_tolerance: Growth
logging:
  level: DEBUG
ui:
  theme: light
`)
	c, err := NewConfig(projectDir)
	require.NoError(t, err)

	form := c.InitialForm()
	assert.Equal(t, "Ada", form.Name)
	assert.Equal(t, 41, form.Age)
	assert.Equal(t, 60, form.RetirementAge)
	assert.True(t, form.CurrentSuper.Equal(decimal.RequireFromString("120000.50")), "current super %s", form.CurrentSuper)
	assert.Equal(t, catalog.RiskGrowth, form.RiskTolerance)
	assert.Equal(t, "debug", c.LogLevel())
	assert.Equal(t, ThemeLight, c.Theme())
}

func TestLoadProjectConfigValidation(t *testing.T) {
	cases := map[string]string{
		"version":  "version: 2",
		"risk":     "version: 1\ndefaults:\n  risk_tolerance: reckless",
		"money":    "version: 1\ndefaults:\n  current_super: lots",
		"level":    "version: 1\nlogging:\n  level: chatty",
		"theme":    "version: 1\nui:\n  theme: neon",
		"bad yaml": "version: [1",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			projectDir := t.TempDir()
			writeConfig(t, projectDir, body)
			_, err := NewConfig(projectDir)
			assert.Error(t, err)
		})
	}
}

func TestSetThemePersists(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, InitDir(projectDir))
	c, err := NewConfig(projectDir)
	require.NoError(t, err)

	require.NoError(t, c.SetTheme("Dark"))
	assert.Equal(t, ThemeDark, c.Theme())

	reloaded, err := NewConfig(projectDir)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, reloaded.Theme(), "theme not persisted")

	assert.Error(t, c.SetTheme("neon"))
	assert.Equal(t, ThemeDark, c.Theme(), "rejected theme must not stick")
}

func TestSetThemeFailureLeavesConfigUntouched(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	c := &Config{
		ProjectDir: blocker,
		StateDir:   filepath.Join(blocker, StateDirName),
		Project:    defaultProjectConfig(),
	}
	c.Project.Defaults.Name = "  Ada  "
	c.Project.Logging.Level = "INFO"
	before := c.Project

	err := c.SetTheme(ThemeLight)
	require.Error(t, err, "state dir under a regular file cannot be created")
	assert.Equal(t, before, c.Project)
}
