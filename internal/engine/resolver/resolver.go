// Package resolver turns devEngines declarations and explicit inputs into a validated toolchain.
package resolver

import (
	"fmt"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

var runtimeNames = map[string]domain.RuntimeName{
	"node": domain.RuntimeNode,
	"bun":  domain.RuntimeBun,
	"deno": domain.RuntimeDeno,
}

// manifestPackageManagers are the package managers devEngines may declare.
var manifestPackageManagers = map[string]domain.PackageManagerName{
	"npm":  domain.PackageManagerNpm,
	"pnpm": domain.PackageManagerPnpm,
	"yarn": domain.PackageManagerYarn,
	"bun":  domain.PackageManagerBun,
}

// entry is one name/version object of devEngines.runtime or devEngines.packageManager.
type entry[N ~string] struct {
	name    N
	version string
}

// Resolve reads devEngines.runtime and devEngines.packageManager.
// Both accept an object or a non-empty array. Every runtime element is validated;
// for the package manager only the first element is read.
func Resolve(devEngines map[string]any) (domain.Toolchain, error) {
	if devEngines == nil {
		return domain.Toolchain{}, domain.ErrMissingDevEngines
	}

	rawRuntime, ok := devEngines["runtime"]
	if !ok || rawRuntime == nil {
		return domain.Toolchain{}, domain.ErrMissingRuntime
	}
	rawPM, ok := devEngines["packageManager"]
	if !ok || rawPM == nil {
		return domain.Toolchain{}, domain.ErrMissingPackageManager
	}

	runtimeItems, err := elements("runtime", rawRuntime)
	if err != nil {
		return domain.Toolchain{}, err
	}

	var tc domain.Toolchain
	seen := make(map[domain.RuntimeName]int, len(runtimeItems))
	for i, item := range runtimeItems {
		e, err := parseEntry("runtime", i, item, runtimeNames)
		if err != nil {
			return domain.Toolchain{}, err
		}
		if first, dup := seen[e.name]; dup {
			return domain.Toolchain{}, zerr.Wrap(domain.ErrInvalidDevEngines,
				fmt.Sprintf("runtime[%d].name %q repeats runtime[%d]", i, e.name, first))
		}
		seen[e.name] = i
		tc.Runtimes = append(tc.Runtimes, domain.RuntimeSpec{Name: e.name, Version: e.version})
	}

	pmItems, err := elements("packageManager", rawPM)
	if err != nil {
		return domain.Toolchain{}, err
	}
	pm, err := parseEntry("packageManager", 0, pmItems[0], manifestPackageManagers)
	if err != nil {
		return domain.Toolchain{}, err
	}
	tc.PackageManager = domain.PackageManagerSpec{Name: pm.name, Version: pm.version}

	return tc, nil
}

// elements normalizes an object-or-array field into a non-empty list.
func elements(field string, raw any) ([]any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return []any{v}, nil
	case []any:
		if len(v) == 0 {
			return nil, zerr.Wrap(domain.ErrInvalidDevEngines, "devEngines."+field+" must not be an empty array")
		}
		return v, nil
	default:
		return nil, zerr.Wrap(domain.ErrInvalidDevEngines, "devEngines."+field+" must be an object or an array")
	}
}

// parseEntry validates one {name, version} element field by field in declaration order.
// The name must be a key of known.
func parseEntry[N ~string](field string, index int, raw any, known map[string]N) (entry[N], error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return entry[N]{}, zerr.Wrap(domain.ErrInvalidDevEngines, fmt.Sprintf("%s[%d] must be an object", field, index))
	}

	rawName, ok := obj["name"].(string)
	if !ok || rawName == "" {
		return entry[N]{}, zerr.Wrap(domain.ErrMissingField, fmt.Sprintf("%s[%d].name must be a string", field, index))
	}
	name, ok := known[rawName]
	if !ok {
		return entry[N]{}, zerr.Wrap(domain.ErrUnsupportedName, fmt.Sprintf("%s[%d].name %q", field, index, rawName))
	}

	version, ok := obj["version"].(string)
	if !ok {
		return entry[N]{}, zerr.Wrap(domain.ErrMissingField, fmt.Sprintf("%s[%d].version must be a string", field, index))
	}
	if err := domain.ValidateAbsoluteVersion(version); err != nil {
		return entry[N]{}, zerr.Wrap(domain.ErrNotAbsoluteVersion, fmt.Sprintf("%s[%d].version %q", field, index, version))
	}

	return entry[N]{name: name, version: version}, nil
}

// Complete adds the runtimes implied by the package manager and checks that
// node-based package managers have a node runtime.
func Complete(tc domain.Toolchain) (domain.Toolchain, error) {
	pm := tc.PackageManager
	switch pm.Name {
	case domain.PackageManagerBun:
		return withRuntime(tc, domain.RuntimeBun, pm.Version)
	case domain.PackageManagerDeno:
		return withRuntime(tc, domain.RuntimeDeno, pm.Version)
	case domain.PackageManagerNpm, domain.PackageManagerPnpm, domain.PackageManagerYarn:
		if _, ok := tc.Runtime(domain.RuntimeNode); !ok {
			return domain.Toolchain{}, zerr.Wrap(domain.ErrMissingRuntimeVersion,
				fmt.Sprintf("package manager %q requires a node runtime", pm.Name))
		}
	}
	return tc, nil
}

func withRuntime(tc domain.Toolchain, name domain.RuntimeName, version string) (domain.Toolchain, error) {
	if r, ok := tc.Runtime(name); ok {
		if r.Version != version {
			return domain.Toolchain{}, zerr.Wrap(domain.ErrConflictingVersions,
				fmt.Sprintf("%s runtime %s differs from package manager %s", name, r.Version, version))
		}
		return tc, nil
	}
	out := domain.Toolchain{PackageManager: tc.PackageManager}
	out.Runtimes = append(append(out.Runtimes, tc.Runtimes...), domain.RuntimeSpec{Name: name, Version: version})
	return out, nil
}
