// Package config provides the settings loader for bom.
package config

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/bom/internal/adapters/fs"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/bom/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the settings file version understood by this loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	FS     fs.FileSystem
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given filesystem and logger.
func NewLoader(fsys fs.FileSystem, logger ports.Logger) *Loader {
	return &Loader{FS: fsys, Logger: logger}
}

// Load walks up from cwd to the filesystem root looking for bom.yaml.
// Finding no file is not an error: empty settings are returned.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	path, found, err := l.findSettings(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		return &domain.Settings{}, nil
	}
	return l.LoadFile(path)
}

// LoadFile reads and validates the settings file at path.
func (l *Loader) LoadFile(path string) (*domain.Settings, error) {
	var file Settingsfile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, file.Version, SupportedVersion))
	}

	if file.Format != nil && !domain.ValidFormat(*file.Format) {
		err := zerr.Wrap(domain.ErrInvalidFormat, "unsupported format in "+path)
		return nil, zerr.With(err, "format", *file.Format)
	}
	if file.LogFormat != nil && !domain.ValidLogFormat(*file.LogFormat) {
		err := zerr.Wrap(domain.ErrInvalidLogFormat, "unsupported log format in "+path)
		return nil, zerr.With(err, "log_format", *file.LogFormat)
	}

	return &domain.Settings{
		Path:      path,
		Detailed:  file.Detailed,
		Limit:     file.Limit,
		Output:    resolveOutput(path, file.Output),
		Format:    file.Format,
		LogFormat: file.LogFormat,
	}, nil
}

func (l *Loader) findSettings(cwd string) (string, bool, error) {
	currentDir, err := l.FS.Abs(cwd)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, statErr := l.FS.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, true, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false, nil
		}
		currentDir = parentDir
	}
}

// resolveOutput makes a relative output path relative to the settings file.
func resolveOutput(settingsPath string, output *string) *string {
	if output == nil || *output == "" || filepath.IsAbs(*output) {
		return output
	}
	resolved := filepath.Join(filepath.Dir(settingsPath), *output)
	return &resolved
}

func (l *Loader) readAndUnmarshalYAML(path string, target *Settingsfile) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "file", path)
	}

	return nil
}
