package app

import (
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/zerr"
)

// settings is the effective configuration of one run.
type settings struct {
	detailed  bool
	limit     int64
	output    string
	format    string
	logFormat string
}

// jsonSwitcher is implemented by loggers that can emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// resolveSettings loads the settings file and applies flags over it.
// Built-in defaults apply to whatever neither of them sets.
func (a *App) resolveSettings(configPath string, flags domain.Settings) (settings, error) {
	var (
		file *domain.Settings
		err  error
	)
	if configPath != "" {
		file, err = a.configLoader.LoadFile(configPath)
	} else {
		file, err = a.configLoader.Load(".")
	}
	if err != nil {
		return settings{}, zerr.Wrap(err, "failed to load settings")
	}
	s := settings{
		format:    domain.FormatJSON,
		logFormat: domain.LogFormatPretty,
	}
	for _, layer := range []*domain.Settings{file, &flags} {
		if layer.Detailed != nil {
			s.detailed = *layer.Detailed
		}
		if layer.Limit != nil {
			s.limit = *layer.Limit
		}
		if layer.Output != nil {
			s.output = *layer.Output
		}
		if layer.Format != nil {
			s.format = *layer.Format
		}
		if layer.LogFormat != nil {
			s.logFormat = *layer.LogFormat
		}
	}

	if !domain.ValidFormat(s.format) {
		err := zerr.Wrap(domain.ErrInvalidFormat, "unsupported bill format")
		return settings{}, zerr.With(err, "format", s.format)
	}
	if err := a.UseLogFormat(s.logFormat); err != nil {
		return settings{}, err
	}
	if file.Path != "" {
		a.logger.Info("using settings from " + file.Path)
	}

	return s, nil
}

// UseLogFormat switches the logger between pretty and JSON output.
func (a *App) UseLogFormat(format string) error {
	if !domain.ValidLogFormat(format) {
		err := zerr.Wrap(domain.ErrInvalidLogFormat, "unsupported log format")
		return zerr.With(err, "log_format", format)
	}
	if sw, ok := a.logger.(jsonSwitcher); ok {
		sw.SetJSON(format == domain.LogFormatJSON)
	}
	return nil
}
