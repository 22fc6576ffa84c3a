package config

import (
	"github.com/ameypusalkar001/EPMATest/library/yamlenv"
)

type Config struct {
	UserAPI ApiConfig `yaml:"userAPI"`
	Log     LogConfig `yaml:"log"`
	UI      UIConfig  `yaml:"ui"`
}

type ApiConfig struct {
	Port *yamlenv.Env[int] `yaml:"port"`
}

type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level *yamlenv.Env[string] `yaml:"level"`
}

// UIConfig holds the texts of the form page.
type UIConfig struct {
	Title    *yamlenv.Env[string] `yaml:"title"`
	Subtitle *yamlenv.Env[string] `yaml:"subtitle"`
	// IntroHTML is an optional operator-supplied HTML snippet shown under the
	// subtitle. It is sanitized before rendering.
	IntroHTML *yamlenv.Env[string] `yaml:"introHTML"`
}

const (
	DefaultPort     = 8080
	DefaultLogLevel = "info"
	DefaultTitle    = "Employee Registration"
	DefaultSubtitle = "Please fill out all required information"
)

// WithDefaults fills every value missing from the file.
func (c *Config) WithDefaults() *Config {
	if c.UserAPI.Port == nil {
		c.UserAPI.Port = yamlenv.New(DefaultPort)
	}
	if c.Log.Level == nil || c.Log.Level.Value == "" {
		c.Log.Level = yamlenv.New(DefaultLogLevel)
	}
	if c.UI.Title == nil || c.UI.Title.Value == "" {
		c.UI.Title = yamlenv.New(DefaultTitle)
	}
	if c.UI.Subtitle == nil {
		c.UI.Subtitle = yamlenv.New(DefaultSubtitle)
	}
	if c.UI.IntroHTML == nil {
		c.UI.IntroHTML = yamlenv.New("")
	}

	return c
}
