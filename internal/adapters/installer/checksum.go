package installer

import (
	"bufio"
	"bytes"
	"context"
	_ "crypto/sha256" // registers the digest algorithm
	"io"
	"os"
	"strings"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// lookupChecksum finds the digest of fileName in a SHASUMS256-style listing.
func lookupChecksum(listing []byte, fileName string) (digest.Digest, error) {
	sc := bufio.NewScanner(bytes.NewReader(listing))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		if strings.TrimPrefix(fields[1], "*") != fileName {
			continue
		}
		d := digest.NewDigestFromEncoded(digest.SHA256, strings.ToLower(fields[0]))
		if err := d.Validate(); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrChecksumNotFound.Error()), "file", fileName)
		}
		return d, nil
	}
	return "", zerr.With(zerr.Wrap(domain.ErrChecksumNotFound, "not listed"), "file", fileName)
}

// verifyChecksum checks file against the published digest of rel.
func (i *Installer) verifyChecksum(ctx context.Context, file string, rel Release) error {
	if rel.ChecksumURL == "" {
		return nil
	}

	listing, err := i.downloader.Fetch(ctx, rel.ChecksumURL)
	if err != nil {
		return err
	}
	expected, err := lookupChecksum(listing, rel.FileName)
	if err != nil {
		return err
	}

	f, err := os.Open(file) //nolint:gosec // file is our own download
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	verifier := expected.Verifier()
	if _, err := io.Copy(verifier, f); err != nil {
		return err
	}
	if !verifier.Verified() {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "download rejected"), "file", rel.FileName), "expected", expected.String())
	}
	return nil
}
