package domain

import "go.trai.ch/zerr"

// Configuration errors. These are fatal and surface before any installer runs.
var (
	// ErrMissingDevEngines is returned when the manifest has no devEngines field.
	ErrMissingDevEngines = zerr.New("package.json has no devEngines field")

	// ErrInvalidDevEngines is returned when devEngines or one of its entries has the wrong shape.
	ErrInvalidDevEngines = zerr.New("invalid devEngines")

	// ErrMissingRuntime is returned when devEngines declares no runtime.
	ErrMissingRuntime = zerr.New("devEngines.runtime is required")

	// ErrMissingPackageManager is returned when devEngines declares no package manager.
	ErrMissingPackageManager = zerr.New("devEngines.packageManager is required")

	// ErrMissingField is returned when a required field is absent or not a string.
	ErrMissingField = zerr.New("missing required field")

	// ErrNotAbsoluteVersion is returned when a version is a range or otherwise not an exact semver.
	ErrNotAbsoluteVersion = zerr.New("not an absolute version")

	// ErrUnsupportedName is returned when a runtime or package manager name is not supported.
	ErrUnsupportedName = zerr.New("unsupported name")

	// ErrPackageManagerVersionWithoutName is returned when package-manager-version is set alone.
	ErrPackageManagerVersionWithoutName = zerr.New("package-manager-version requires package-manager")

	// ErrMissingPackageManagerVersion is returned when a package manager is named without a version.
	ErrMissingPackageManagerVersion = zerr.New("package-manager requires package-manager-version")

	// ErrMissingRuntimeVersion is returned when a package manager needs a runtime that was not declared.
	ErrMissingRuntimeVersion = zerr.New("missing runtime version")

	// ErrConflictingVersions is returned when two inputs declare different versions of the same tool.
	ErrConflictingVersions = zerr.New("conflicting versions")

	// ErrNoPackageManager is returned when explicit inputs cannot determine a package manager.
	ErrNoPackageManager = zerr.New("no package manager could be determined from inputs")

	// ErrInvalidInput is returned when an input value cannot be parsed.
	ErrInvalidInput = zerr.New("invalid input")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrInputsReadFailed is returned when the inputs file cannot be read.
	ErrInputsReadFailed = zerr.New("failed to read inputs file")

	// ErrInputsParseFailed is returned when inputs cannot be decoded.
	ErrInputsParseFailed = zerr.New("failed to parse inputs")
)

// Installer errors.
var (
	// ErrMissingVersion is returned when an install is requested without a version.
	ErrMissingVersion = zerr.New("version is required")

	// ErrUnknownTool is returned when no distribution is registered for a tool.
	ErrUnknownTool = zerr.New("unknown tool")

	// ErrUnsupportedPlatform is returned when a tool has no build for the host os/arch.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrInstallFailed is returned when downloading, extracting or caching a tool fails.
	ErrInstallFailed = zerr.New("install failed")

	// ErrVerifyFailed is returned when an installed binary cannot report its version.
	ErrVerifyFailed = zerr.New("installed binary failed verification")

	// ErrDownloadFailed is returned when an HTTP download fails.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrChecksumMismatch is returned when a downloaded archive does not match its published digest.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrChecksumNotFound is returned when the checksum file has no entry for the archive.
	ErrChecksumNotFound = zerr.New("checksum not found")

	// ErrUnsupportedArchive is returned when an archive format cannot be extracted.
	ErrUnsupportedArchive = zerr.New("unsupported archive format")

	// ErrUnsafeArchivePath is returned when an archive entry escapes the extraction root.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes destination")

	// ErrToolCacheWriteFailed is returned when a tool cannot be registered in the tool cache.
	ErrToolCacheWriteFailed = zerr.New("failed to write tool cache")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrActivationFailed is returned when the package manager cannot be activated.
	ErrActivationFailed = zerr.New("failed to activate package manager")

	// ErrDependencyInstallFailed is returned when the dependency install command fails.
	ErrDependencyInstallFailed = zerr.New("failed to install dependencies")
)

// Runner and cache errors.
var (
	// ErrUnknownOutput is returned when an output key is not in the allow-list.
	ErrUnknownOutput = zerr.New("unknown output key")

	// ErrOutputWriteFailed is returned when an output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrStateWriteFailed is returned when cross-phase state cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write state")

	// ErrStateReadFailed is returned when cross-phase state cannot be read.
	ErrStateReadFailed = zerr.New("failed to read state")

	// ErrEnvironmentWriteFailed is returned when PATH or an exported variable cannot be written.
	ErrEnvironmentWriteFailed = zerr.New("failed to update environment")

	// ErrCacheEntryExists is returned when saving a key that is already stored.
	ErrCacheEntryExists = zerr.New("cache entry already exists")

	// ErrNothingToCache is returned when none of the cache paths exist.
	ErrNothingToCache = zerr.New("no files found in cache paths")

	// ErrCacheArchiveFailed is returned when a cache snapshot cannot be written.
	ErrCacheArchiveFailed = zerr.New("failed to archive cache")

	// ErrCacheRestoreFailed is returned when a cache snapshot cannot be extracted.
	ErrCacheRestoreFailed = zerr.New("failed to restore cache")
)
