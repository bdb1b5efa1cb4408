// Package yaml loads selkocards configuration files using gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/selkocards"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// working and home directories.
const DefaultConfigFile = ".selkocards.yaml"

// ConfigEnv names the environment variable holding a config file path.
const ConfigEnv = "SELKOCARDS_CONFIG"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// file is the on-disk layout. Pointer fields distinguish "unset" from
// zero values so that defaults survive partial files.
type file struct {
	Front      *string `yaml:"front"`
	Back       *string `yaml:"back"`
	Topic      *string `yaml:"topic"`
	ArchiveURL *string `yaml:"archive_url"`
	IssueURL   *string `yaml:"issue_url"`
	OutputDir  *string `yaml:"output_dir"`
	Decorate   *bool   `yaml:"decorate"`
}

// LoadConfig reads the YAML file at path and overlays it on
// selkocards.DefaultConfig. If the file does not exist, it returns
// ErrConfigNotFound.
func LoadConfig(path string) (selkocards.Config, error) {
	cfg := selkocards.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, selkocards.Errorf(selkocards.EINVALID, "invalid config %s: %v", path, err)
	}

	if f.Front != nil {
		cfg.Pair.Primary = selkocards.ParseLanguage(*f.Front)
	}
	if f.Back != nil {
		cfg.Pair.Secondary = selkocards.ParseLanguage(*f.Back)
	}
	if f.Topic != nil {
		cfg.Topic = *f.Topic
	}
	if f.ArchiveURL != nil {
		cfg.ArchiveURL = *f.ArchiveURL
	}
	if f.IssueURL != nil {
		cfg.IssueURL = *f.IssueURL
	}
	if f.OutputDir != nil {
		cfg.OutputDir = *f.OutputDir
	}
	if f.Decorate != nil {
		cfg.Decorate = *f.Decorate
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FindConfig searches for the configuration file in the following order:
//  1. If explicit is specified, use it directly
//  2. The path in $SELKOCARDS_CONFIG
//  3. .selkocards.yaml in the current directory
//  4. .selkocards.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfig(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if env := os.Getenv(ConfigEnv); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		path := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
