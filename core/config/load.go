package config

import (
	"log"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	return LoadFs(afero.NewBasePathFs(afero.NewOsFs(), path))
}

// LoadFs loads the configuration from the root of configFs.
func LoadFs(configFs afero.Fs) (*Configuration, error) {
	configContents, err := afero.ReadFile(configFs, ConfigurationName)
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", ConfigurationName)
	}
	if err := out.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", ConfigurationName)
	}
	out.configFs = configFs
	return &out, nil
}

// Initialize writes the default configuration into path if one doesn't exist
// yet and returns the loaded result.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	if err := afero.NewOsFs().MkdirAll(path, 0700); err != nil {
		return nil, err
	}

	return InitializeFs(afero.NewBasePathFs(afero.NewOsFs(), path), logger)
}

// InitializeFs is like Initialize but writes to the root of configFs.
func InitializeFs(configFs afero.Fs, logger *log.Logger) (*Configuration, error) {
	exists, err := afero.Exists(configFs, ConfigurationName)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("%s already exists, leaving it in place\n", ConfigurationName)
	} else {
		logger.Printf("Writing %s\n", ConfigurationName)
		if err := afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	return LoadFs(configFs)
}
