package installer

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

type archiveKind int

const (
	archiveUnknown archiveKind = iota
	archiveTarGz
	archiveZip
)

// sniff detects the archive format from the file contents.
func sniff(file string) (archiveKind, error) {
	mt, err := mimetype.DetectFile(file)
	if err != nil {
		return archiveUnknown, err
	}
	for m := mt; m != nil; m = m.Parent() {
		switch {
		case m.Is("application/gzip"):
			return archiveTarGz, nil
		case m.Is("application/zip"):
			return archiveZip, nil
		}
	}
	return archiveUnknown, nil
}

// unpack extracts file into dest according to rel. Raw releases are copied as the executable.
func unpack(file, dest string, rel Release) error {
	kind, err := sniff(file)
	if err != nil {
		return err
	}

	switch kind {
	case archiveTarGz:
		return extractTarGz(file, dest)
	case archiveZip:
		return extractZip(file, dest)
	default:
		if !rel.Raw {
			return zerr.With(zerr.Wrap(domain.ErrUnsupportedArchive, "unrecognized format"), "file", rel.FileName)
		}
		target := filepath.Join(dest, rel.BinDir, rel.Executable)
		if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return err
		}
		src, err := os.Open(file) //nolint:gosec // file is our own download
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()
		return writeFile(target, src, domain.ExecPerm)
	}
}

// safeJoin resolves an archive entry name under root, rejecting entries that escape it.
func safeJoin(root, name string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(name, `\`, "/"))
	if clean == "." {
		return root, nil
	}
	if !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "entry escapes destination"), "entry", name)
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}

func extractTarGz(file, dest string) error {
	f, err := os.Open(file) //nolint:gosec // file is our own download
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, tar.ErrInsecurePath) {
			return zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "insecure tar entry"), "entry", hdr.Name)
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
				return err
			}
			if err := writeFile(target, tr, os.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := checkLink(dest, target, hdr.Linkname); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
				return err
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return err
			}
		case tar.TypeLink:
			source, err := safeJoin(dest, hdr.Linkname)
			if err != nil {
				return err
			}
			if err := os.Link(source, target); err != nil {
				return err
			}
		}
	}
}

// checkLink rejects symlinks whose target resolves outside root.
func checkLink(root, target, link string) error {
	if filepath.IsAbs(link) || path.IsAbs(link) {
		return zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "link escapes destination"), "link", link)
	}
	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(link))
	rel, err := filepath.Rel(root, resolved)
	if err != nil || !filepath.IsLocal(rel) {
		return zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "link escapes destination"), "link", link)
	}
	return nil
}

func extractZip(file, dest string) error {
	zr, err := zip.OpenReader(file)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return err
	}
	defer func() { _ = zr.Close() }()

	for _, zf := range zr.File {
		target, err := safeJoin(dest, zf.Name)
		if err != nil {
			return err
		}

		if zf.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return err
		}
		rc, err := zf.Open()
		if err != nil {
			return err
		}
		perm := zf.Mode().Perm()
		if perm == 0 {
			perm = domain.FilePerm
		}
		err = writeFile(target, rc, perm)
		_ = rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(target string, r io.Reader, perm os.FileMode) error {
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // target passed safeJoin
	if err != nil {
		return err
	}
	//nolint:gosec // archives come from pinned release URLs
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
