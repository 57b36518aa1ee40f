package domain

import (
	_ "crypto/sha256" // registers the digest algorithm
	"slices"
	"strings"

	"github.com/opencontainers/go-digest"
)

// CacheHit is the tri-state result of a cache restore.
type CacheHit string

// Restore outcomes.
const (
	CacheHitExact   CacheHit = "true"
	CacheHitPartial CacheHit = "partial"
	CacheHitMiss    CacheHit = "false"
)

// SaveOutcome is the result of the post-phase cache save.
type SaveOutcome string

// Save outcomes.
const (
	SaveSaved           SaveOutcome = "saved"
	SaveSkippedNoKey    SaveOutcome = "skipped-no-key"
	SaveSkippedExactHit SaveOutcome = "skipped-exact-hit"
	SaveFailed          SaveOutcome = "save-failed"
)

// State keys shared between the main and post phases.
const (
	StateCachePrimaryKey = "cache-primary-key"
	StateCacheMatchedKey = "cache-matched-key"
	StateCachePaths      = "cache-paths"
	StatePackageManagers = "package-managers"
)

// CacheConfig lists the directories to cache and the lock-file globs that key them.
type CacheConfig struct {
	CachePaths       []string
	LockFilePatterns []string
}

// Union merges two configs. Both lists keep first occurrences and drop duplicates.
func (c CacheConfig) Union(other CacheConfig) CacheConfig {
	return CacheConfig{
		CachePaths:       unionStrings(c.CachePaths, other.CachePaths),
		LockFilePatterns: unionStrings(c.LockFilePatterns, other.LockFilePatterns),
	}
}

func unionStrings(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// CacheKey identifies a dependency cache snapshot.
type CacheKey struct {
	Platform     string
	VersionHash  string
	LockfileHash string
}

// String renders the primary key {platform}-{versionHash}-{lockfileHash}.
func (k CacheKey) String() string {
	return k.RestorePrefix() + k.LockfileHash
}

// RestorePrefix renders {platform}-{versionHash}-, used for partial restores.
func (k CacheKey) RestorePrefix() string {
	return k.Platform + "-" + k.VersionHash + "-"
}

// VersionHash digests the optional salt, the runtime versions and the package manager.
// Runtime lines are sorted so declaration order does not change the key.
func VersionHash(salt string, runtimes []RuntimeSpec, pm PackageManagerSpec) string {
	lines := make([]string, 0, len(runtimes))
	for _, r := range runtimes {
		lines = append(lines, string(r.Name)+":"+r.Version)
	}
	slices.Sort(lines)

	var sb strings.Builder
	if salt != "" {
		sb.WriteString("salt:")
		sb.WriteString(salt)
		sb.WriteByte('\n')
	}
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(string(pm.Name))
	sb.WriteByte(':')
	sb.WriteString(pm.Version)
	sb.WriteByte('\n')

	return digest.FromString(sb.String()).Encoded()
}

// EmptyLockfileHash is the lock-file digest when no lock file exists.
func EmptyLockfileHash() string {
	return digest.FromBytes(nil).Encoded()
}

// CacheState is persisted by the main phase and read by the post phase.
type CacheState struct {
	PrimaryKey      string
	MatchedKey      string
	CachePaths      []string
	PackageManagers []PackageManagerSpec
}

// RestoreResult describes what the main phase restored.
type RestoreResult struct {
	Hit        CacheHit
	PrimaryKey string
	MatchedKey string
	LockFiles  []string
	CachePaths []string
}

// RestoreRequest carries everything the main phase knows when restoring the dependency cache.
type RestoreRequest struct {
	Toolchain  Toolchain
	WorkDir    string
	Extra      CacheConfig
	Salt       string
	ExactMatch bool
}
