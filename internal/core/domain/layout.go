package domain

const (
	// ConfigFileName is the name of the optional settings file.
	ConfigFileName = "bom.yaml"


	// MaxDepth is the deepest circuit nesting level that can be priced.
	// The requested circuit sits at depth 0.
	MaxDepth = 100

	// FilePerm is the default permission for written reports (rw-r--r--).
	FilePerm = 0o644
)
