package domain

// RuntimeName identifies a JavaScript runtime.
type RuntimeName string

// Supported runtimes.
const (
	RuntimeNode RuntimeName = "node"
	RuntimeBun  RuntimeName = "bun"
	RuntimeDeno RuntimeName = "deno"
)

// PackageManagerName identifies a package manager.
type PackageManagerName string

// Supported package managers. Deno only appears when it is implied by a deno runtime.
const (
	PackageManagerNpm  PackageManagerName = "npm"
	PackageManagerPnpm PackageManagerName = "pnpm"
	PackageManagerYarn PackageManagerName = "yarn"
	PackageManagerBun  PackageManagerName = "bun"
	PackageManagerDeno PackageManagerName = "deno"
)

// ToolName identifies an installable binary distribution.
type ToolName string

// Installable tools.
const (
	ToolNode  ToolName = "node"
	ToolBun   ToolName = "bun"
	ToolDeno  ToolName = "deno"
	ToolBiome ToolName = "biome"
)

// BiomePackage is the npm package name of the lint tool.
const BiomePackage = "@biomejs/biome"

// RuntimeSpec is a runtime pinned to an absolute version.
type RuntimeSpec struct {
	Name    RuntimeName `json:"name"`
	Version string      `json:"version"`
}

// PackageManagerSpec is a package manager pinned to an absolute version.
type PackageManagerSpec struct {
	Name    PackageManagerName `json:"name"`
	Version string             `json:"version"`
}

// String returns name@version.
func (p PackageManagerSpec) String() string {
	return string(p.Name) + "@" + p.Version
}

// Toolchain is the resolved set of runtimes and the package manager for a project.
// Runtimes keep their declared order.
type Toolchain struct {
	PackageManager PackageManagerSpec `json:"packageManager"`
	Runtimes       []RuntimeSpec      `json:"runtimes"`
}

// Runtime returns the runtime with the given name.
func (t Toolchain) Runtime(name RuntimeName) (RuntimeSpec, bool) {
	for _, r := range t.Runtimes {
		if r.Name == name {
			return r, true
		}
	}
	return RuntimeSpec{}, false
}

// ActivePackageManagers returns the package managers whose caches apply to this toolchain:
// the declared one plus the implicit package managers of bun and deno runtimes.
func (t Toolchain) ActivePackageManagers() []PackageManagerSpec {
	out := []PackageManagerSpec{t.PackageManager}
	seen := map[PackageManagerName]bool{t.PackageManager.Name: true}
	for _, r := range t.Runtimes {
		var name PackageManagerName
		switch r.Name {
		case RuntimeBun:
			name = PackageManagerBun
		case RuntimeDeno:
			name = PackageManagerDeno
		default:
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, PackageManagerSpec{Name: name, Version: r.Version})
	}
	return out
}

// ToolFor maps a runtime to the tool that installs it.
func ToolFor(name RuntimeName) ToolName {
	return ToolName(name)
}

// Plan is the fully resolved setup for one run, before anything is installed.
type Plan struct {
	Toolchain    Toolchain `json:"toolchain"`
	BiomeVersion string    `json:"biomeVersion,omitempty"`
	Explicit     bool      `json:"explicit"`
}
