package transpile

import "errors"

// Sentinel errors for bash2pwsh's configuration path.
// Use errors.Is() to check for these error types. Never used for
// translation-path failures — those are always absorbed into
// Result.Warnings/Result.Unsupported per spec.md §7's contract.
var (
	// ErrConfigNotFound indicates a config file does not exist at the
	// requested path.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigRead indicates an I/O error reading the config file.
	ErrConfigRead = errors.New("failed to read config file")

	// ErrConfigParse indicates a TOML syntax error in the config file.
	ErrConfigParse = errors.New("config parse error")

	// ErrInvalidConfig indicates the configuration parsed but failed
	// validation (e.g. an unknown ps_version).
	ErrInvalidConfig = errors.New("invalid configuration")
)
