package version

import (
	"errors"
	"runtime/debug"
)

// BuildInfo returns the build information embedded in the running binary.
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return nil, errors.New("build information is not available")
	}

	return bi, nil
}

// Version returns the module version recorded in the build info, or "devel"
// when the binary was not built from a released module.
func Version() string {
	bi, err := BuildInfo()
	if err != nil || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return "devel"
	}

	return bi.Main.Version
}
