package domain

import (
	"os"
	"path/filepath"
)

const (
	// WorkDirName is the name of the internal workspace directory.
	WorkDirName = ".setupjs"

	// StateFileName is the name of the local cross-phase state file.
	StateFileName = "state.json"

	// ManifestFileName is the default name of the project manifest.
	ManifestFileName = "package.json"

	// AppCacheDirName is the name of the per-user cache directory.
	AppCacheDirName = "setupjs"

	// ToolsDirName is the name of the tool cache directory.
	ToolsDirName = "tools"

	// BlobsDirName is the name of the dependency cache snapshot directory.
	BlobsDirName = "cache"

	// ToolCacheEnv overrides the tool cache root. CI runners set it.
	ToolCacheEnv = "RUNNER_TOOL_CACHE"

	// BlobCacheEnv overrides the dependency cache snapshot root.
	BlobCacheEnv = "SETUPJS_CACHE_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission applied to installed executables (rwxr-xr-x).
	ExecPerm = 0o755
)

// DefaultStatePath returns the local state file for the given working directory.
// It joins dir, .setupjs and state.json.
func DefaultStatePath(dir string) string {
	return filepath.Join(dir, WorkDirName, StateFileName)
}

// DefaultToolCachePath returns the tool cache root.
// RUNNER_TOOL_CACHE wins; otherwise the per-user cache directory is used.
func DefaultToolCachePath() string {
	if dir := os.Getenv(ToolCacheEnv); dir != "" {
		return dir
	}
	return filepath.Join(userCacheDir(), AppCacheDirName, ToolsDirName)
}

// DefaultBlobCachePath returns the dependency cache snapshot root.
func DefaultBlobCachePath() string {
	if dir := os.Getenv(BlobCacheEnv); dir != "" {
		return dir
	}
	return filepath.Join(userCacheDir(), AppCacheDirName, BlobsDirName)
}

func userCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	return filepath.Join(os.TempDir(), WorkDirName)
}
