package types

import "errors"

// Config holds backend selection and parameters for App.Attach.
type Config struct {
	Backend      string `json:"backend" yaml:"backend"`
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	HistoryLimit int    `json:"history_limit,omitempty" yaml:"history_limit,omitempty"`
}

// Supported annotation store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultHistoryLimit is the number of history entries kept when
// Config.HistoryLimit is zero.
const DefaultHistoryLimit = 100

// Config validation errors.
var (
	ErrBackendEmpty        = errors.New("backend must not be empty")
	ErrBackendUnknown      = errors.New("unknown backend")
	ErrHistoryLimitInvalid = errors.New("history limit must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendMemory: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.HistoryLimit < 0 {
		return ErrHistoryLimitInvalid
	}
	return nil
}

// GetHistoryLimit returns the effective history cap.
func (c Config) GetHistoryLimit() int {
	if c.HistoryLimit <= 0 {
		return DefaultHistoryLimit
	}
	return c.HistoryLimit
}
