package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/dshills/pathstorm/internal/config"
)

// YAMLLoader loads configuration overlays from YAML files. Decoding is
// strict: a field the Config schema does not declare is a parse error,
// not a silent drop.
type YAMLLoader struct {
	fs   FileSystem
	path string
}

// NewYAMLLoader creates a new YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{
		fs:   fs,
		path: path,
	}
}

// Load reads configuration from the configured path.
func (l *YAMLLoader) Load() (*config.Config, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path.
func (l *YAMLLoader) LoadFrom(path string) (*config.Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("no config file, using defaults")
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := l.parse(path, data)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Str("version", cfg.Version).Msg("loaded config")
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader.
func (l *YAMLLoader) LoadFromReader(r io.Reader) (*config.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return l.parse("<reader>", data)
}

// parse decodes YAML data into a Config.
func (l *YAMLLoader) parse(source string, data []byte) (*config.Config, error) {
	var cfg config.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, &config.ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}

	if cfg.Version == "" {
		return nil, &config.ParseError{
			Path:    source,
			Message: config.ErrMissingVersion.Error(),
			Err:     config.ErrMissingVersion,
		}
	}

	return &cfg, nil
}
