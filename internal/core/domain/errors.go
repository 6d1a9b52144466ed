package domain

import "go.trai.ch/zerr"

var (
	// ErrDocumentReadFailed is returned when the top-level design file cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read design file")

	// ErrDocumentParseFailed is returned when the top-level design file is not a valid design document.
	ErrDocumentParseFailed = zerr.New("failed to parse design file")

	// ErrLibraryNotFound is reported when a linked library file does not exist.
	ErrLibraryNotFound = zerr.New("library file not found")

	// ErrLibraryParseFailed is reported when a linked library file cannot be read or parsed.
	ErrLibraryParseFailed = zerr.New("failed to load library")

	// ErrCircuitNotFound is returned when no loaded document defines the requested circuit.
	ErrCircuitNotFound = zerr.New("circuit not found")

	// ErrUnknownComponentType is returned when the price table has no entry for a component key.
	ErrUnknownComponentType = zerr.New("unknown component type")

	// ErrInvalidAttribute is returned when a component attribute cannot be used by its price formula.
	ErrInvalidAttribute = zerr.New("invalid component attribute")

	// ErrRecursionDepthExceeded is returned when circuit nesting goes deeper than MaxDepth.
	ErrRecursionDepthExceeded = zerr.New("maximum circuit nesting depth exceeded")

	// ErrPriceLimitExceeded is returned when the computed price is above the requested limit.
	ErrPriceLimitExceeded = zerr.New("price limit exceeded")

	// ErrNoCircuitSpecified is returned when the price command is given no circuit name.
	ErrNoCircuitSpecified = zerr.New("no circuit specified")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidFormat is returned when an unsupported report format is requested.
	ErrInvalidFormat = zerr.New("invalid report format, expected 'json' or 'yaml'")

	// ErrInvalidLogFormat is returned when an unsupported log format is requested.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrReportMarshalFailed is returned when the bill cannot be encoded.
	ErrReportMarshalFailed = zerr.New("failed to encode bill")

	// ErrReportWriteFailed is returned when the encoded bill cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write bill")
)
