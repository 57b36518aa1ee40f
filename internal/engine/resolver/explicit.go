package resolver

import (
	"fmt"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

var explicitPackageManagers = map[string]domain.PackageManagerName{
	"npm":  domain.PackageManagerNpm,
	"pnpm": domain.PackageManagerPnpm,
	"yarn": domain.PackageManagerYarn,
	"bun":  domain.PackageManagerBun,
	"deno": domain.PackageManagerDeno,
}

// ResolveExplicit builds a toolchain from version inputs alone.
//
// npm, pnpm and yarn need package-manager-version and node-version. bun and deno take
// their version from package-manager-version or from bun-version/deno-version, which
// must agree when both are set. Without package-manager, bun-version selects bun and
// otherwise deno-version selects deno.
func ResolveExplicit(in domain.Inputs) (domain.Toolchain, error) {
	for _, v := range []struct{ input, value string }{
		{"node-version", in.NodeVersion},
		{"bun-version", in.BunVersion},
		{"deno-version", in.DenoVersion},
		{"package-manager-version", in.PackageManagerVersion},
	} {
		if v.value == "" {
			continue
		}
		if err := domain.ValidateAbsoluteVersion(v.value); err != nil {
			return domain.Toolchain{}, zerr.Wrap(domain.ErrNotAbsoluteVersion, fmt.Sprintf("%s %q", v.input, v.value))
		}
	}

	if in.PackageManager == "" && in.PackageManagerVersion != "" {
		return domain.Toolchain{}, domain.ErrPackageManagerVersionWithoutName
	}

	var pm domain.PackageManagerSpec
	bunVersion, denoVersion := in.BunVersion, in.DenoVersion

	if in.PackageManager == "" {
		switch {
		case in.BunVersion != "":
			pm = domain.PackageManagerSpec{Name: domain.PackageManagerBun, Version: in.BunVersion}
		case in.DenoVersion != "":
			pm = domain.PackageManagerSpec{Name: domain.PackageManagerDeno, Version: in.DenoVersion}
		default:
			return domain.Toolchain{}, domain.ErrNoPackageManager
		}
	} else {
		name, ok := explicitPackageManagers[in.PackageManager]
		if !ok {
			return domain.Toolchain{}, zerr.Wrap(domain.ErrUnsupportedName, fmt.Sprintf("package-manager %q", in.PackageManager))
		}

		switch name {
		case domain.PackageManagerBun:
			v, err := runtimeManagedVersion(name, in.PackageManagerVersion, in.BunVersion, "bun-version")
			if err != nil {
				return domain.Toolchain{}, err
			}
			bunVersion = v
			pm = domain.PackageManagerSpec{Name: name, Version: v}
		case domain.PackageManagerDeno:
			v, err := runtimeManagedVersion(name, in.PackageManagerVersion, in.DenoVersion, "deno-version")
			if err != nil {
				return domain.Toolchain{}, err
			}
			denoVersion = v
			pm = domain.PackageManagerSpec{Name: name, Version: v}
		default:
			if in.PackageManagerVersion == "" {
				return domain.Toolchain{}, zerr.Wrap(domain.ErrMissingPackageManagerVersion, fmt.Sprintf("package-manager %q", name))
			}
			if in.NodeVersion == "" {
				return domain.Toolchain{}, zerr.Wrap(domain.ErrMissingRuntimeVersion,
					fmt.Sprintf("package-manager %q requires node-version", name))
			}
			pm = domain.PackageManagerSpec{Name: name, Version: in.PackageManagerVersion}
		}
	}

	tc := domain.Toolchain{PackageManager: pm}
	if in.NodeVersion != "" {
		tc.Runtimes = append(tc.Runtimes, domain.RuntimeSpec{Name: domain.RuntimeNode, Version: in.NodeVersion})
	}
	if bunVersion != "" {
		tc.Runtimes = append(tc.Runtimes, domain.RuntimeSpec{Name: domain.RuntimeBun, Version: bunVersion})
	}
	if denoVersion != "" {
		tc.Runtimes = append(tc.Runtimes, domain.RuntimeSpec{Name: domain.RuntimeDeno, Version: denoVersion})
	}
	return tc, nil
}

// runtimeManagedVersion picks the version of a package manager that is also its runtime.
func runtimeManagedVersion(name domain.PackageManagerName, pmVersion, runtimeVersion, runtimeInput string) (string, error) {
	switch {
	case pmVersion != "" && runtimeVersion != "" && pmVersion != runtimeVersion:
		return "", zerr.Wrap(domain.ErrConflictingVersions,
			fmt.Sprintf("package-manager-version %s and %s %s", pmVersion, runtimeInput, runtimeVersion))
	case pmVersion != "":
		return pmVersion, nil
	case runtimeVersion != "":
		return runtimeVersion, nil
	default:
		return "", zerr.Wrap(domain.ErrMissingPackageManagerVersion,
			fmt.Sprintf("package-manager %q requires package-manager-version or %s", name, runtimeInput))
	}
}
