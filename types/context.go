package types

// DefaultVersion is reported when the binary was built without version info.
const DefaultVersion = "dev"

// AppContext carries process-wide values into command Run methods.
type AppContext struct {
	Version string
}

// NewAppContext builds an AppContext for the given build version, falling
// back to DefaultVersion when the linker did not set one.
func NewAppContext(version string) *AppContext {
	if version == "" {
		version = DefaultVersion
	}
	return &AppContext{Version: version}
}
