package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/lamp/internal/paths"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envFileName    = ".env"
	envPrefix      = "LAMP"

	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeyHistoryLimit = "history_limit"
	cfgKeyLogLevel     = "log.level"
	cfgKeyLogFormat    = "log.format"
	cfgKeyLogFile      = "log.file"
)

// envKeys are the settings LAMP_* variables may override. data_dir is
// absent: LAMP_DATA_DIR ranks below config.yaml and is applied by
// paths.ResolveDataDir.
var envKeys = []string{cfgKeyBackend, cfgKeyHistoryLimit, cfgKeyLogLevel, cfgKeyLogFormat, cfgKeyLogFile}

// configFile is the structure written to config.yaml.
type configFile struct {
	Backend      string `yaml:"backend"`
	DataDir      string `yaml:"data_dir,omitempty"`
	HistoryLimit int    `yaml:"history_limit"`
}

// loadConfig reads config.yaml from configDir after loading configDir/.env
// into the environment. A missing config.yaml or .env is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := loadEnvFile(configDir); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendFile)
	v.SetDefault(cfgKeyHistoryLimit, types.DefaultHistoryLimit)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "console")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadEnvFile loads configDir/.env without overriding variables that are
// already set.
func loadEnvFile(configDir string) error {
	path := filepath.Join(configDir, envFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with cfg. It reports whether the
// file was written; an existing file is left alone.
func writeConfigIfMissing(configDir string, cfg configFile) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := paths.EnsureDir(configDir); err != nil {
		return false, err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

// appConfig builds the application configuration from flags and settings.
func (c *cli) appConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(c.flags.dataDir, c.settings.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg := types.Config{
		Backend:      c.settings.GetString(cfgKeyBackend),
		DataDir:      dataDir,
		HistoryLimit: c.settings.GetInt(cfgKeyHistoryLimit),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
