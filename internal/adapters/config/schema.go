package config

// Settingsfile represents the structure of the bom.yaml settings file.
type Settingsfile struct {
	Version   string  `yaml:"version"`
	Detailed  *bool   `yaml:"detailed"`
	Limit     *int64  `yaml:"limit"`
	Output    *string `yaml:"output"`
	Format    *string `yaml:"format"`
	LogFormat *string `yaml:"log_format"`
}
