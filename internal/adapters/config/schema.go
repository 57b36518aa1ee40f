package config

// InputsDTO is the raw form of the run inputs.
// CI passes each input as an INPUT_<NAME> variable; the inputs file uses the same names.
type InputsDTO struct {
	NodeVersion           string `env:"INPUT_NODE-VERSION"             yaml:"node-version"`
	BunVersion            string `env:"INPUT_BUN-VERSION"              yaml:"bun-version"`
	DenoVersion           string `env:"INPUT_DENO-VERSION"             yaml:"deno-version"`
	PackageManager        string `env:"INPUT_PACKAGE-MANAGER"          yaml:"package-manager"`
	PackageManagerVersion string `env:"INPUT_PACKAGE-MANAGER-VERSION"  yaml:"package-manager-version"`
	BiomeVersion          string `env:"INPUT_BIOME-VERSION"            yaml:"biome-version"`
	SkipInstall           string `env:"INPUT_SKIP-INSTALL"             yaml:"skip-install"`
	Cache                 string `env:"INPUT_CACHE"                    yaml:"cache"`
	CacheKeySalt          string `env:"INPUT_CACHE-KEY-SALT"           yaml:"cache-key-salt"`
	CacheExactMatch       string `env:"INPUT_CACHE-EXACT-MATCH"        yaml:"cache-exact-match"`
	LockFilePatterns      string `env:"INPUT_LOCK-FILE-PATTERNS"       yaml:"lock-file-patterns"`
	CachePaths            string `env:"INPUT_CACHE-PATHS"              yaml:"cache-paths"`
	WorkingDirectory      string `env:"INPUT_WORKING-DIRECTORY"        yaml:"working-directory"`
	Manifest              string `env:"INPUT_MANIFEST"                 yaml:"manifest"`
}

// overlay returns d with every non-empty field of top applied over it.
func (d InputsDTO) overlay(top InputsDTO) InputsDTO {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return InputsDTO{
		NodeVersion:           pick(d.NodeVersion, top.NodeVersion),
		BunVersion:            pick(d.BunVersion, top.BunVersion),
		DenoVersion:           pick(d.DenoVersion, top.DenoVersion),
		PackageManager:        pick(d.PackageManager, top.PackageManager),
		PackageManagerVersion: pick(d.PackageManagerVersion, top.PackageManagerVersion),
		BiomeVersion:          pick(d.BiomeVersion, top.BiomeVersion),
		SkipInstall:           pick(d.SkipInstall, top.SkipInstall),
		Cache:                 pick(d.Cache, top.Cache),
		CacheKeySalt:          pick(d.CacheKeySalt, top.CacheKeySalt),
		CacheExactMatch:       pick(d.CacheExactMatch, top.CacheExactMatch),
		LockFilePatterns:      pick(d.LockFilePatterns, top.LockFilePatterns),
		CachePaths:            pick(d.CachePaths, top.CachePaths),
		WorkingDirectory:      pick(d.WorkingDirectory, top.WorkingDirectory),
		Manifest:              pick(d.Manifest, top.Manifest),
	}
}

// manifestDTO is the subset of package.json that is decoded.
type manifestDTO struct {
	DevEngines      any            `json:"devEngines"`
	DevDependencies map[string]any `json:"devDependencies"`
}
