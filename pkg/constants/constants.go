// Package constants defines shared constants used across figtrack.
package constants

import "time"

// Network constants.
const (
	// DefaultHTTPTimeout bounds every remote source request.
	DefaultHTTPTimeout = 30 * time.Second
)

// Run constants.
const (
	// DefaultCacheTTL is how fresh the catalog must be for the staleness
	// gate to skip a run.
	DefaultCacheTTL = 6 * time.Hour

	// DefaultStorePath is where the catalog persists when unconfigured.
	DefaultStorePath = "figures.json"
)

// File permission constants.
const (
	// DirPermissions is the permission for created directories.
	DirPermissions = 0o755

	// FilePermissions is the permission for created files.
	FilePermissions = 0o644
)
