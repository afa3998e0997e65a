package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "pandalint.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "pandalint.yml"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// LoadFromDir loads a ProjectConfig from the given directory.
// It looks for pandalint.yaml or pandalint.yml in the directory.
// Without a config file the defaults are returned.
func LoadFromDir(dir string) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if configPath := FindConfigFile(dir); configPath != "" {
		k := koanf.New(".")
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
		if err := k.Unmarshal("", &cfg); err != nil {
			return nil, fmt.Errorf("unable to decode config: %w", err)
		}
		if cfg.DesignConfig != "" && !filepath.IsAbs(cfg.DesignConfig) {
			cfg.DesignConfig = filepath.Join(dir, cfg.DesignConfig)
		}
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing pandalint.yaml or pandalint.yml.
// Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
	return ""
}
