// ============================================================================
// cmdcall - String-driven command dispatcher
// ============================================================================
//
// Package:     version
// Description: Build version information for the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Set at build time via -ldflags "-X github.com/msto63/cmdcall/pkg/core/version.Version=..."
var (
	Version   = "0.2.0"
	Commit    = "none"
	BuildDate = "unknown"
)

// String returns the full version line
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Short returns the version, or the commit when Version is empty
func Short() string {
	if Version == "" {
		return Commit
	}
	return Version
}
