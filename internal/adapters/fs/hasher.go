package fs

import (
	"context"
	_ "crypto/sha256" // registers the digest algorithm
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.LockfileHasher = (*Hasher)(nil)

// maxParallelReads bounds concurrent lock-file reads.
const maxParallelReads = 8

// Hasher digests lock-file contents.
type Hasher struct {
	logger ports.Logger
}

// NewHasher creates a new Hasher.
func NewHasher(logger ports.Logger) *Hasher {
	return &Hasher{logger: logger}
}

// HashLockFiles returns the SHA-256 of the concatenated contents of files in sorted order.
// Files are read in parallel; unreadable ones are skipped with a warning.
func (h *Hasher) HashLockFiles(ctx context.Context, root string, files []string) (string, error) {
	if len(files) == 0 {
		return domain.EmptyLockfileHash(), nil
	}

	sorted := slices.Clone(files)
	slices.Sort(sorted)

	contents := make([][]byte, len(sorted))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	for i, rel := range sorted {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(root, filepath.FromSlash(rel))
			data, err := os.ReadFile(path) //nolint:gosec // path comes from the lock-file walk
			if err != nil {
				h.logger.Warn(fmt.Sprintf("skipping unreadable lock file %s: %v", rel, err))
				return nil
			}
			contents[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", zerr.Wrap(err, "failed to hash lock files")
	}

	digester := digest.Canonical.Digester()
	for _, data := range contents {
		_, _ = digester.Hash().Write(data)
	}
	return digester.Digest().Encoded(), nil
}
