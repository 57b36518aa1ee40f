package domain

// Inputs are the user-supplied settings for one run.
type Inputs struct {
	NodeVersion           string
	BunVersion            string
	DenoVersion           string
	PackageManager        string
	PackageManagerVersion string
	BiomeVersion          string

	SkipInstall     bool
	Cache           bool
	CacheKeySalt    string
	CacheExactMatch bool

	LockFilePatterns []string
	CachePaths       []string

	WorkingDirectory string
	Manifest         string
}

// Explicit reports whether any version or package-manager input is set.
// Explicit inputs replace manifest detection entirely.
func (i Inputs) Explicit() bool {
	return i.NodeVersion != "" ||
		i.BunVersion != "" ||
		i.DenoVersion != "" ||
		i.PackageManager != "" ||
		i.PackageManagerVersion != ""
}

// Manifest is the subset of package.json this tool reads.
type Manifest struct {
	Path string
	// DevEngines is the decoded devEngines object, nil when absent.
	DevEngines      map[string]any
	DevDependencies map[string]string
}

// DevDependency returns the declared version of a dev dependency.
func (m *Manifest) DevDependency(name string) (string, bool) {
	if m == nil || m.DevDependencies == nil {
		return "", false
	}
	v, ok := m.DevDependencies[name]
	return v, ok
}
