package blobcache

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// rootVolume names the volume of paths without a drive letter.
const rootVolume = "_"

// encodeName maps an absolute path to a slash-separated archive name that keeps the volume.
// /home/x becomes _/home/x and C:\Users\x becomes C/Users/x.
func encodeName(abs string) string {
	vol := filepath.VolumeName(abs)
	rest := strings.TrimLeft(filepath.ToSlash(abs[len(vol):]), "/")
	prefix := rootVolume
	if vol != "" {
		prefix = strings.TrimSuffix(vol, ":")
	}
	if rest == "" {
		return prefix
	}
	return prefix + "/" + rest
}

// decodeName reverses encodeName, rejecting names that climb out of their volume.
func decodeName(name string) (string, error) {
	clean := path.Clean(name)
	if clean != name || strings.HasPrefix(clean, "/") {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "entry escapes its volume"), "entry", name)
	}
	for _, seg := range strings.Split(clean, "/") {
		if seg == ".." {
			return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "entry escapes its volume"), "entry", name)
		}
	}

	vol, rest, _ := strings.Cut(clean, "/")
	if vol == rootVolume {
		return filepath.FromSlash("/" + rest), nil
	}
	return vol + `:\` + filepath.FromSlash(rest), nil
}

// writeArchive streams the given absolute paths into a gzip-compressed tar.
// The exclude directory and everything below it is left out.
func writeArchive(ctx context.Context, w io.Writer, paths []string, exclude string) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	for _, root := range paths {
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if within(p, exclude) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			return addEntry(tw, p, d)
		})
		if err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gz.Close()
}

// within reports whether p is dir or below it.
func within(p, dir string) bool {
	rel, err := filepath.Rel(dir, p)
	return err == nil && filepath.IsLocal(rel)
}

func addEntry(tw *tar.Writer, p string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	var link string
	if info.Mode()&fs.ModeSymlink != 0 {
		if link, err = os.Readlink(p); err != nil {
			return err
		}
	} else if !info.Mode().IsRegular() && !info.IsDir() {
		return nil
	}

	hdr, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	hdr.Name = encodeName(p)
	if info.IsDir() {
		hdr.Name += "/"
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(p) //nolint:gosec // p comes from walking a configured cache path
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = io.Copy(tw, f)
	return err
}

// extractArchive restores every entry of the archive at file to its original location.
func extractArchive(ctx context.Context, file string) error {
	f, err := os.Open(file) //nolint:gosec // file is inside the store root
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
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil && !errors.Is(err, tar.ErrInsecurePath) {
			return err
		}

		target, err := decodeName(strings.TrimSuffix(hdr.Name, "/"))
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, os.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
				return err
			}
			_ = os.Remove(target)
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return err
			}
		}
	}
}

func writeEntry(target string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // target passed decodeName
	if err != nil {
		return err
	}
	//nolint:gosec // archives are written by this store
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
