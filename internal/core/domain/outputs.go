package domain

// OutputKey names a CI output.
type OutputKey string

// Allowed outputs.
const (
	OutputNodeVersion           OutputKey = "node-version"
	OutputNodeEnabled           OutputKey = "node-enabled"
	OutputBunVersion            OutputKey = "bun-version"
	OutputBunEnabled            OutputKey = "bun-enabled"
	OutputDenoVersion           OutputKey = "deno-version"
	OutputDenoEnabled           OutputKey = "deno-enabled"
	OutputPackageManager        OutputKey = "package-manager"
	OutputPackageManagerVersion OutputKey = "package-manager-version"
	OutputBiomeVersion          OutputKey = "biome-version"
	OutputBiomeEnabled          OutputKey = "biome-enabled"
	OutputCacheEnabled          OutputKey = "cache-enabled"
	OutputCacheHit              OutputKey = "cache-hit"
	OutputCachePrimaryKey       OutputKey = "cache-primary-key"
	OutputLockFiles             OutputKey = "lock-files"
	OutputCachePaths            OutputKey = "cache-paths"
)

var allowedOutputs = map[OutputKey]struct{}{
	OutputNodeVersion:           {},
	OutputNodeEnabled:           {},
	OutputBunVersion:            {},
	OutputBunEnabled:            {},
	OutputDenoVersion:           {},
	OutputDenoEnabled:           {},
	OutputPackageManager:        {},
	OutputPackageManagerVersion: {},
	OutputBiomeVersion:          {},
	OutputBiomeEnabled:          {},
	OutputCacheEnabled:          {},
	OutputCacheHit:              {},
	OutputCachePrimaryKey:       {},
	OutputLockFiles:             {},
	OutputCachePaths:            {},
}

// IsValid reports whether k is in the output allow-list.
func (k OutputKey) IsValid() bool {
	_, ok := allowedOutputs[k]
	return ok
}

// RuntimeOutputs returns the version and enabled output keys for a runtime.
func RuntimeOutputs(name RuntimeName) (version, enabled OutputKey) {
	switch name {
	case RuntimeNode:
		return OutputNodeVersion, OutputNodeEnabled
	case RuntimeBun:
		return OutputBunVersion, OutputBunEnabled
	default:
		return OutputDenoVersion, OutputDenoEnabled
	}
}
