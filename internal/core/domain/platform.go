package domain

import "runtime"

// Platform is a host operating system and CPU architecture in Go's naming.
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform returns the platform the process runs on.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// IsWindows reports whether the platform is Windows.
func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// NodeOS returns the operating system as Node.js distributions name it.
func (p Platform) NodeOS() string {
	switch p.OS {
	case "windows":
		return "win"
	default:
		return p.OS
	}
}

// NodeArch returns the architecture as Node.js distributions name it.
func (p Platform) NodeArch() string {
	switch p.Arch {
	case "amd64":
		return "x64"
	case "386":
		return "x86"
	case "arm":
		return "armv7l"
	default:
		return p.Arch
	}
}

// Key returns the platform component of a cache key, for example linux-x64.
func (p Platform) Key() string {
	return p.NodeOS() + "-" + p.NodeArch()
}
