package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tpb/internal/apperr"
	"tpb/internal/logger"
	"tpb/pkg/models"
)

const (
	AppName    = "tpb"
	ConfigDir  = ".config"
	ConfigFile = AppName + ".json"
	MirrorEnv  = "TPB_MIRROR"
)

// ErrUnconfigured is returned while the config file is still empty.
var ErrUnconfigured = errors.New("no mirror configured, run `tpb configure --mirror=<mirror>` first")

func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", apperr.Config("resolve config path", fmt.Errorf("failed to get home directory: %w", err))
	}
	return filepath.Join(homeDir, ConfigDir, ConfigFile), nil
}

// EnsureConfigFile creates an empty config file on first run. A path that
// exists but is not a regular file is an error.
func EnsureConfigFile() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	info, err := os.Stat(configPath)
	switch {
	case err == nil:
		if !info.Mode().IsRegular() {
			return "", apperr.Config("check config file",
				fmt.Errorf("%s is not a regular file, please remove it and try again", configPath))
		}
		return configPath, nil
	case !os.IsNotExist(err):
		return "", apperr.Config("check config file", err)
	}

	logger.Debug("Creating empty configuration at %s", configPath)
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", apperr.Config("create config dir", err)
	}
	f, err := os.OpenFile(configPath, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", apperr.Config("create config file", err)
	}
	return configPath, f.Close()
}

func LoadConfig() (*models.Config, error) {
	configPath, err := EnsureConfigFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, apperr.Config("read config file", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperr.Config("load config", ErrUnconfigured)
	}

	config := &models.Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, apperr.Config("load config", fmt.Errorf("failed to parse %s: %w", configPath, err))
	}

	logger.Debug("Loaded configuration from %s: mirror=%q", configPath, config.Mirror)
	return config, nil
}

// SaveConfig overwrites the config file with the given configuration.
func SaveConfig(config *models.Config) error {
	configPath, err := EnsureConfigFile()
	if err != nil {
		return err
	}

	data, err := Marshal(config)
	if err != nil {
		return apperr.Config("save config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return apperr.Config("save config", err)
	}
	return nil
}

// Marshal renders the configuration the way it is stored and shown:
// sorted keys, four-space indent.
func Marshal(config *models.Config) ([]byte, error) {
	data, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

// MergeWithFlags merges the stored configuration with the --mirror flag and
// the environment.
// Priority: flag > config file > environment variable
func MergeWithFlags(config *models.Config, mirror string) *models.Config {
	merged := &models.Config{}
	if config != nil {
		*merged = *config
	}

	if mirror != "" {
		merged.Mirror = mirror
	} else if envMirror := os.Getenv(MirrorEnv); envMirror != "" && merged.Mirror == "" {
		merged.Mirror = envMirror
	}
	return merged
}

// ResolveMirror returns the mirror a mirror-dependent command should talk to.
// An unconfigured store is only an error when neither the flag nor the
// environment provide a mirror.
func ResolveMirror(flagMirror string) (string, error) {
	cfg, err := LoadConfig()
	if err != nil && !errors.Is(err, ErrUnconfigured) {
		return "", err
	}

	merged := MergeWithFlags(cfg, flagMirror)
	if merged.Mirror == "" {
		return "", apperr.Config("resolve mirror", ErrUnconfigured)
	}
	return merged.Mirror, nil
}
