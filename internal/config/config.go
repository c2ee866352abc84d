// internal/config/config.go
//
// This package handles configuration and the .retireplan directory structure.
// The directory is created next to wherever the tool is launched and holds the
// YAML config plus the session log. Onboarding answers are never written here.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/retireplan/internal/catalog"
	"github.com/kingrea/retireplan/internal/onboarding"
)

const (
	// StateDirName is the name of the directory we create in each project
	StateDirName = ".retireplan"

	configFileName = "config.yaml"
)

// Themes accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const defaultProjectConfigYAML = `# retireplan configuration
version: 1

# Values the onboarding wizard starts with. Money is in whole or fractional dollars.
defaults:
  age: 30
  retirement_age: 65
  current_super: "50000"
  monthly_contribution: "500"
  risk_tolerance: balanced

logging:
  # debug, info, warn or error
  level: info

ui:
  # auto, dark or light
  theme: auto
`

// DefaultsConfig seeds the onboarding form.
type DefaultsConfig struct {
	Name                string `yaml:"name,omitempty"`
	Age                 int    `yaml:"age"`
	RetirementAge       int    `yaml:"retirement_age"`
	CurrentSuper        string `yaml:"current_super"`
	MonthlyContribution string `yaml:"monthly_contribution"`
	RiskTolerance       string `yaml:"risk_tolerance"`
}

// LoggingConfig controls the session log.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// UIConfig captures presentation preferences.
type UIConfig struct {
	Theme string `yaml:"theme"`
}

// ProjectConfig models .retireplan/config.yaml.
type ProjectConfig struct {
	Version  int            `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
	UI       UIConfig       `yaml:"ui"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory the tool was launched from
	ProjectDir string

	// StateDir is ProjectDir/.retireplan
	StateDir string

	Project ProjectConfig
}

// InitDir creates the .retireplan directory structure in the given project directory.
//
// Structure created:
// .retireplan/
// ├── config.yaml
// └── logs/
func InitDir(projectDir string) error {
	stateDir := filepath.Join(projectDir, StateDirName)
	if err := os.MkdirAll(filepath.Join(stateDir, "logs"), 0o755); err != nil {
		return fmt.Errorf("config: create state dir: %w", err)
	}
	return ensureProjectConfig(filepath.Join(stateDir, configFileName))
}

// NewConfig creates a Config populated from .retireplan/config.yaml when present.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		StateDir:   filepath.Join(projectDir, StateDirName),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.StateDir, "logs")
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.StateDir, configFileName)
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() string {
	return c.Project.Logging.Level
}

// Theme returns the configured UI theme.
func (c *Config) Theme() string {
	return c.Project.UI.Theme
}

// SetTheme updates ui.theme and persists it back to config.yaml. On failure
// the in-memory config is left untouched.
func (c *Config) SetTheme(theme string) error {
	next := c.Project
	next.UI.Theme = normalizeKeyword(theme)
	if err := c.saveProjectConfig(next); err != nil {
		return err
	}
	c.Project = next
	return nil
}

// InitialForm converts the defaults section into a working form.
func (c *Config) InitialForm() onboarding.WorkingForm {
	d := c.Project.Defaults
	form := onboarding.DefaultForm()
	form.Name = d.Name
	form.Age = d.Age
	form.RetirementAge = d.RetirementAge
	// validate has already proven both amounts parse.
	form.CurrentSuper = decimal.RequireFromString(d.CurrentSuper)
	form.MonthlyContribution = decimal.RequireFromString(d.MonthlyContribution)
	form.RiskTolerance = catalog.RiskTolerance(d.RiskTolerance)
	return form
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Defaults: DefaultsConfig{
			Age:                 30,
			RetirementAge:       65,
			CurrentSuper:        "50000",
			MonthlyContribution: "500",
			RiskTolerance:       string(catalog.DefaultRisk),
		},
		Logging: LoggingConfig{Level: "info"},
		UI:      UIConfig{Theme: ThemeAuto},
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Defaults.Name = strings.TrimSpace(pc.Defaults.Name)
	pc.Defaults.CurrentSuper = strings.TrimSpace(pc.Defaults.CurrentSuper)
	pc.Defaults.MonthlyContribution = strings.TrimSpace(pc.Defaults.MonthlyContribution)
	pc.Defaults.RiskTolerance = normalizeKeyword(pc.Defaults.RiskTolerance)
	if pc.Defaults.RiskTolerance == "" {
		pc.Defaults.RiskTolerance = string(catalog.DefaultRisk)
	}
	pc.Logging.Level = normalizeKeyword(pc.Logging.Level)
	if pc.Logging.Level == "" {
		pc.Logging.Level = "info"
	}
	pc.UI.Theme = normalizeKeyword(pc.UI.Theme)
	if pc.UI.Theme == "" {
		pc.UI.Theme = ThemeAuto
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version != 1 {
		return fmt.Errorf("unsupported config version %d", pc.Version)
	}
	if _, err := catalog.ParseRisk(pc.Defaults.RiskTolerance); err != nil {
		return fmt.Errorf("defaults.risk_tolerance: %w", err)
	}
	if _, err := decimal.NewFromString(pc.Defaults.CurrentSuper); err != nil {
		return fmt.Errorf("defaults.current_super: %w", err)
	}
	if _, err := decimal.NewFromString(pc.Defaults.MonthlyContribution); err != nil {
		return fmt.Errorf("defaults.monthly_contribution: %w", err)
	}
	if !ValidLogLevel(pc.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn or error")
	}
	switch pc.UI.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("ui.theme must be 'auto', 'dark' or 'light'")
	}
	return nil
}

// ValidLogLevel reports whether level is one the logger understands.
func ValidLogLevel(level string) bool {
	switch normalizeKeyword(level) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func normalizeKeyword(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

// saveProjectConfig writes a normalized, validated copy of pc.
func (c *Config) saveProjectConfig(pc ProjectConfig) error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	pc.normalize()
	if err := pc.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.StateDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure state dir: %w", err)
	}
	data, err := yaml.Marshal(pc)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
