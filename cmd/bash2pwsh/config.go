package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"bash2pwsh/pkg/transpile"
)

// Config is the optional TOML configuration accepted via -config. It is
// intentionally a single flat file — the teacher's multi-file config
// chain (global / project / project-local / explicit, with stricter-wins
// merge semantics) doesn't have an analogue here: there is no policy to
// shadow, just a handful of CLI defaults to override.
type Config struct {
	Path    string        `toml:"-"` // path this config was loaded from (not in TOML)
	Tools   ToolsConfig   `toml:"tools"`
	Options OptionsConfig `toml:"options"`
	Debug   DebugConfig   `toml:"debug"`
}

// ToolsConfig overrides the PATH-probed tool-availability result. Any
// field left unset in the TOML (detected via a *bool) falls back to the
// probe's answer instead of forcing it off.
type ToolsConfig struct {
	Rg   *bool `toml:"rg"`
	Fd   *bool `toml:"fd"`
	Curl *bool `toml:"curl"`
	Jq   *bool `toml:"jq"`
}

// OptionsConfig mirrors pkg/transpile.Options' caller-facing knobs.
type OptionsConfig struct {
	PreferNativeTools *bool  `toml:"prefer_native_tools"`
	PSVersion         string `toml:"ps_version"`
}

// DebugConfig controls debug logging behavior.
type DebugConfig struct {
	LogFile string `toml:"log_file"` // path to debug log file (default: $TMPDIR/bash2pwsh.log)
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", transpile.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", transpile.ErrConfigRead, path, err)
	}
	cfg, err := ParseConfig(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// ParseConfig parses a TOML configuration string and validates it.
func ParseConfig(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", transpile.ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects a ps_version this module doesn't know how to target.
func (cfg *Config) Validate() error {
	switch cfg.Options.PSVersion {
	case "", "5.1", "7":
		return nil
	default:
		return fmt.Errorf("%w: options.ps_version: unsupported value %q (want \"5.1\" or \"7\")", transpile.ErrInvalidConfig, cfg.Options.PSVersion)
	}
}

// resolveTools layers TOML overrides on top of a probed baseline.
func (cfg *Config) resolveTools(probed transpile.ToolAvailability) transpile.ToolAvailability {
	if cfg == nil {
		return probed
	}
	if cfg.Tools.Rg != nil {
		probed.Rg = *cfg.Tools.Rg
	}
	if cfg.Tools.Fd != nil {
		probed.Fd = *cfg.Tools.Fd
	}
	if cfg.Tools.Curl != nil {
		probed.Curl = *cfg.Tools.Curl
	}
	if cfg.Tools.Jq != nil {
		probed.Jq = *cfg.Tools.Jq
	}
	return probed
}

// toTranspileOptions builds pkg/transpile.Options from the config plus a
// freshly probed (and config-overridden) tool availability record.
func (cfg *Config) toTranspileOptions() transpile.Options {
	tools := transpile.DetectTools()
	opts := transpile.Options{
		PreferNativeTools: true,
		PSVersion:         "5.1",
	}
	if cfg == nil {
		opts.AvailableTools = &tools
		return opts
	}
	tools = cfg.resolveTools(tools)
	opts.AvailableTools = &tools
	if cfg.Options.PreferNativeTools != nil {
		opts.PreferNativeTools = *cfg.Options.PreferNativeTools
	}
	if cfg.Options.PSVersion != "" {
		opts.PSVersion = cfg.Options.PSVersion
	}
	return opts
}

func (cfg *Config) logFile() string {
	if cfg != nil && cfg.Debug.LogFile != "" {
		return cfg.Debug.LogFile
	}
	return ""
}
