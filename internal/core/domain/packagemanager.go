package domain

// Command is an external tool invocation. Name is resolved on PATH.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// String renders the command line for logs.
func (c Command) String() string {
	s := c.Name
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

// lockFiles lists the lock-file names each package manager writes.
var lockFiles = map[PackageManagerName][]string{
	PackageManagerNpm:  {"package-lock.json", "npm-shrinkwrap.json"},
	PackageManagerPnpm: {"pnpm-lock.yaml"},
	PackageManagerYarn: {"yarn.lock"},
	PackageManagerBun:  {"bun.lock", "bun.lockb"},
	PackageManagerDeno: {"deno.lock"},
}

// cacheDirEnv names the variable that relocates a package manager's global cache.
var cacheDirEnv = map[PackageManagerName]string{
	PackageManagerBun:  "BUN_INSTALL_CACHE_DIR",
	PackageManagerDeno: "DENO_DIR",
}

// CacheDirEnv returns the environment variable that pins pm's cache directory.
func CacheDirEnv(pm PackageManagerName) (string, bool) {
	name, ok := cacheDirEnv[pm]
	return name, ok
}

// LockFileNames returns the lock-file names written by pm.
func LockFileNames(pm PackageManagerName) []string {
	return lockFiles[pm]
}

// LockFilePatterns returns the recursive globs matching pm's lock files.
func LockFilePatterns(pm PackageManagerName) []string {
	names := lockFiles[pm]
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, "**/"+n)
	}
	return out
}

// IsYarnBerry reports whether a yarn version is 2.x or later.
func IsYarnBerry(version string) bool {
	return MajorVersion(version) >= 2
}

// InstallCommand returns the dependency install command for pm.
// lockPresent selects the frozen variant. The second result is false when pm
// manages dependencies itself and no install step runs.
func InstallCommand(pm PackageManagerSpec, lockPresent bool) (Command, bool) {
	switch pm.Name {
	case PackageManagerNpm:
		if lockPresent {
			return Command{Name: "npm", Args: []string{"ci"}}, true
		}
		return Command{Name: "npm", Args: []string{"install"}}, true
	case PackageManagerPnpm:
		if lockPresent {
			return Command{Name: "pnpm", Args: []string{"install", "--frozen-lockfile"}}, true
		}
		return Command{Name: "pnpm", Args: []string{"install"}}, true
	case PackageManagerYarn:
		if !lockPresent {
			return Command{Name: "yarn", Args: []string{"install"}}, true
		}
		if IsYarnBerry(pm.Version) {
			return Command{Name: "yarn", Args: []string{"install", "--immutable"}}, true
		}
		return Command{Name: "yarn", Args: []string{"install", "--frozen-lockfile"}}, true
	case PackageManagerBun:
		if lockPresent {
			return Command{Name: "bun", Args: []string{"install", "--frozen-lockfile"}}, true
		}
		return Command{Name: "bun", Args: []string{"install"}}, true
	default:
		return Command{}, false
	}
}

// ActivationCommand returns the global npm install that provides pm at its pinned version.
// The second result is false for package managers that ship with their runtime.
func ActivationCommand(pm PackageManagerSpec) (Command, bool) {
	var pkg string
	switch pm.Name {
	case PackageManagerNpm:
		pkg = "npm@" + pm.Version
	case PackageManagerPnpm:
		pkg = "pnpm@" + pm.Version
	case PackageManagerYarn:
		if IsYarnBerry(pm.Version) {
			pkg = "@yarnpkg/cli-dist@" + pm.Version
		} else {
			pkg = "yarn@" + pm.Version
		}
	default:
		return Command{}, false
	}
	return Command{Name: "npm", Args: []string{"install", "-g", pkg}}, true
}
