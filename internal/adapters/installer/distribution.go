package installer

import (
	"fmt"
	"strings"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// Default download hosts.
const (
	NodeBaseURL  = "https://nodejs.org/dist"
	BunBaseURL   = "https://github.com/oven-sh/bun/releases/download"
	DenoBaseURL  = "https://github.com/denoland/deno/releases/download"
	BiomeBaseURL = "https://github.com/biomejs/biome/releases/download"
)

// Release describes one downloadable build of a tool.
type Release struct {
	// URL is the archive or binary to download.
	URL string
	// FileName is the published file name, used to find the checksum entry.
	FileName string
	// ChecksumURL points at a SHASUMS256-style file. Empty skips verification.
	ChecksumURL string
	// BinDir is the directory holding the executable, relative to the extraction root.
	BinDir string
	// Executable is the file name of the binary inside BinDir.
	Executable string
	// Raw marks a download that is the executable itself rather than an archive.
	Raw bool
}

// Distribution maps a tool version and platform to a Release.
type Distribution interface {
	// Tool returns the tool this distribution installs.
	Tool() domain.ToolName
	// Release returns the build for p. Unsupported platforms fail with domain.ErrUnsupportedPlatform.
	Release(p domain.Platform, version string) (Release, error)
	// VersionArgs are passed to the installed binary to print its version.
	VersionArgs() []string
}

// DefaultDistributions returns the distributions for every installable tool.
func DefaultDistributions() []Distribution {
	return []Distribution{
		NodeDistribution{BaseURL: NodeBaseURL},
		BunDistribution{BaseURL: BunBaseURL},
		DenoDistribution{BaseURL: DenoBaseURL},
		BiomeDistribution{BaseURL: BiomeBaseURL},
	}
}

func unsupported(tool domain.ToolName, p domain.Platform) error {
	err := zerr.With(zerr.Wrap(domain.ErrUnsupportedPlatform, "no release"), "tool", string(tool))
	err = zerr.With(err, "os", p.OS)
	return zerr.With(err, "arch", p.Arch)
}

func exe(p domain.Platform, name string) string {
	if p.IsWindows() {
		return name + ".exe"
	}
	return name
}

// NodeDistribution installs Node.js from the official dist server.
type NodeDistribution struct {
	BaseURL string
}

// Tool implements Distribution.
func (NodeDistribution) Tool() domain.ToolName { return domain.ToolNode }

// VersionArgs implements Distribution.
func (NodeDistribution) VersionArgs() []string { return []string{"--version"} }

// Release implements Distribution.
func (d NodeDistribution) Release(p domain.Platform, version string) (Release, error) {
	var arch string
	switch p.Arch {
	case "amd64", "arm64":
		arch = p.NodeArch()
	case "arm", "ppc64le", "s390x":
		if p.OS != "linux" {
			return Release{}, unsupported(domain.ToolNode, p)
		}
		arch = p.NodeArch()
	default:
		return Release{}, unsupported(domain.ToolNode, p)
	}

	switch p.OS {
	case "linux", "darwin", "windows":
	default:
		return Release{}, unsupported(domain.ToolNode, p)
	}

	base := strings.TrimSuffix(d.BaseURL, "/")
	stem := fmt.Sprintf("node-v%s-%s-%s", version, p.NodeOS(), arch)
	ext, binDir := ".tar.gz", stem+"/bin"
	if p.IsWindows() {
		ext, binDir = ".zip", stem
	}

	return Release{
		URL:         fmt.Sprintf("%s/v%s/%s%s", base, version, stem, ext),
		FileName:    stem + ext,
		ChecksumURL: fmt.Sprintf("%s/v%s/SHASUMS256.txt", base, version),
		BinDir:      binDir,
		Executable:  exe(p, "node"),
	}, nil
}

// BunDistribution installs Bun from its GitHub releases.
type BunDistribution struct {
	BaseURL string
}

// Tool implements Distribution.
func (BunDistribution) Tool() domain.ToolName { return domain.ToolBun }

// VersionArgs implements Distribution.
func (BunDistribution) VersionArgs() []string { return []string{"--version"} }

// Release implements Distribution.
func (d BunDistribution) Release(p domain.Platform, version string) (Release, error) {
	var arch string
	switch p.Arch {
	case "amd64":
		arch = "x64"
	case "arm64":
		arch = "aarch64"
	default:
		return Release{}, unsupported(domain.ToolBun, p)
	}

	switch p.OS {
	case "linux", "darwin", "windows":
	default:
		return Release{}, unsupported(domain.ToolBun, p)
	}

	stem := fmt.Sprintf("bun-%s-%s", p.OS, arch)
	return Release{
		URL:        fmt.Sprintf("%s/bun-v%s/%s.zip", strings.TrimSuffix(d.BaseURL, "/"), version, stem),
		FileName:   stem + ".zip",
		BinDir:     stem,
		Executable: exe(p, "bun"),
	}, nil
}

// DenoDistribution installs Deno from its GitHub releases.
type DenoDistribution struct {
	BaseURL string
}

var denoTargets = map[domain.Platform]string{
	{OS: "linux", Arch: "amd64"}:   "x86_64-unknown-linux-gnu",
	{OS: "linux", Arch: "arm64"}:   "aarch64-unknown-linux-gnu",
	{OS: "darwin", Arch: "amd64"}:  "x86_64-apple-darwin",
	{OS: "darwin", Arch: "arm64"}:  "aarch64-apple-darwin",
	{OS: "windows", Arch: "amd64"}: "x86_64-pc-windows-msvc",
}

// Tool implements Distribution.
func (DenoDistribution) Tool() domain.ToolName { return domain.ToolDeno }

// VersionArgs implements Distribution.
func (DenoDistribution) VersionArgs() []string { return []string{"--version"} }

// Release implements Distribution.
func (d DenoDistribution) Release(p domain.Platform, version string) (Release, error) {
	target, ok := denoTargets[p]
	if !ok {
		return Release{}, unsupported(domain.ToolDeno, p)
	}

	file := "deno-" + target + ".zip"
	return Release{
		URL:        fmt.Sprintf("%s/v%s/%s", strings.TrimSuffix(d.BaseURL, "/"), version, file),
		FileName:   file,
		BinDir:     ".",
		Executable: exe(p, "deno"),
	}, nil
}

// BiomeDistribution installs the Biome standalone binary.
type BiomeDistribution struct {
	BaseURL string
}

// Tool implements Distribution.
func (BiomeDistribution) Tool() domain.ToolName { return domain.ToolBiome }

// VersionArgs implements Distribution.
func (BiomeDistribution) VersionArgs() []string { return []string{"--version"} }

// Release implements Distribution.
func (d BiomeDistribution) Release(p domain.Platform, version string) (Release, error) {
	var osName string
	switch p.OS {
	case "linux", "darwin":
		osName = p.OS
	case "windows":
		osName = "win32"
	default:
		return Release{}, unsupported(domain.ToolBiome, p)
	}

	var arch string
	switch p.Arch {
	case "amd64":
		arch = "x64"
	case "arm64":
		arch = "arm64"
	default:
		return Release{}, unsupported(domain.ToolBiome, p)
	}

	file := exe(p, fmt.Sprintf("biome-%s-%s", osName, arch))
	return Release{
		URL:        fmt.Sprintf("%s/%%40biomejs%%2Fbiome%%40%s/%s", strings.TrimSuffix(d.BaseURL, "/"), version, file),
		FileName:   file,
		BinDir:     ".",
		Executable: exe(p, "biome"),
		Raw:        true,
	}, nil
}
