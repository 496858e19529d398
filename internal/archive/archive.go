// Package archive packs project files into a single zip for download.
package archive

import (
	"archive/zip"
	"compress/flate"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"resume-builder/internal/logging"
)

// DefaultName is the archive written when no output path is given.
const DefaultName = "resume-builder-complete.zip"

// DefaultEntries are the project files and directories packed by default.
var DefaultEntries = []string{
	"go.mod",
	"go.sum",
	"README.md",
	"DESIGN.md",
	".env.example",
	".gitignore",
	"cmd/",
	"internal/",
	"pkg/",
}

// Result describes a written archive.
type Result struct {
	Path    string
	Size    int64
	Files   int
	Skipped []string
}

// Create zips entries, relative to root, into out at best compression.
// Entries that do not exist are skipped and reported.
func Create(ctx context.Context, root, out string, entries []string) (*Result, error) {
	if out == "" {
		out = DefaultName
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}

	res := &Result{Path: out}
	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	absOut, _ := filepath.Abs(out)
	err = func() error {
		for _, entry := range entries {
			clean := filepath.Clean(entry)
			src := filepath.Join(root, clean)
			info, err := os.Stat(src)
			if errors.Is(err, fs.ErrNotExist) {
				res.Skipped = append(res.Skipped, entry)
				continue
			}
			if err != nil {
				return err
			}
			if !info.IsDir() {
				if err := addFile(zw, src, clean); err != nil {
					return err
				}
				res.Files++
				continue
			}
			err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if abs, _ := filepath.Abs(path); abs == absOut {
					return nil
				}
				rel, err := filepath.Rel(root, path)
				if err != nil {
					return err
				}
				if err := addFile(zw, path, rel); err != nil {
					return err
				}
				res.Files++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}()
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(out)
		return nil, fmt.Errorf("write archive: %w", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		return nil, err
	}
	res.Size = info.Size()
	logging.Logger.WithField("path", out).WithField("bytes", res.Size).WithField("files", res.Files).Info("archive: written")
	return res, nil
}

func addFile(zw *zip.Writer, src, name string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(name)
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
