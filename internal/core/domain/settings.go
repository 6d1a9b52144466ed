package domain

const (
	// FormatJSON encodes bills as indented JSON.
	FormatJSON = "json"
	// FormatYAML encodes bills as YAML.
	FormatYAML = "yaml"

	// LogFormatPretty renders colored human-readable logs.
	LogFormatPretty = "pretty"
	// LogFormatJSON renders logs as JSON lines.
	LogFormatJSON = "json"
)

// Settings holds the defaults read from the settings file.
// Pointer fields distinguish an absent key from its zero value.
type Settings struct {
	// Path is the file the settings were read from, empty when none was found.
	Path      string
	Detailed  *bool
	Limit     *int64
	Output    *string
	Format    *string
	LogFormat *string
}

// ValidFormat reports whether f names a supported report encoding.
func ValidFormat(f string) bool {
	return f == FormatJSON || f == FormatYAML
}

// ValidLogFormat reports whether f names a supported log format.
func ValidLogFormat(f string) bool {
	return f == LogFormatPretty || f == LogFormatJSON
}
