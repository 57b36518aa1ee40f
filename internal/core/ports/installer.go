package ports

import (
	"context"

	"go.trai.ch/setupjs/internal/core/domain"
)

// Installer installs a pinned tool and puts it on PATH.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install makes version of tool available and returns the version the binary reports.
	Install(ctx context.Context, tool domain.ToolName, version string) (string, error)
}

// ToolCache stores extracted tool distributions keyed by tool, version and architecture.
type ToolCache interface {
	// Find returns the directory of a complete cached install.
	Find(tool domain.ToolName, version, arch string) (string, bool)

	// Add moves srcDir into the cache and marks it complete. It returns the cached directory.
	Add(srcDir string, tool domain.ToolName, version, arch string) (string, error)
}

// Downloader fetches remote artifacts.
type Downloader interface {
	// Download stores the response body of url in a temporary file and returns its path.
	Download(ctx context.Context, url string) (string, error)

	// Fetch returns the response body of url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
