package pkg

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// CompressFile compresses the file at src into dst.
func CompressFile(ctx context.Context, src, dst string, opts Options) (Stats, error) {
	var stats Stats
	err := withFiles(src, dst, func(r io.Reader, w io.Writer) error {
		var err error
		stats, err = Compress(ctx, w, r, opts)
		return err
	})
	return stats, err
}

// DecompressFile restores the file at src into dst.
func DecompressFile(ctx context.Context, src, dst string, opts Options) (Stats, error) {
	var stats Stats
	err := withFiles(src, dst, func(r io.Reader, w io.Writer) error {
		var err error
		stats, err = Decompress(ctx, w, r, opts)
		return err
	})
	return stats, err
}

// InspectFile reads the header and code table of the artifact at path.
func InspectFile(path string) (*FileHeader, Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ioError("open source", err)
	}
	defer f.Close()

	return Inspect(f)
}

// withFiles runs fn with src open for reading and a temporary file next to
// dst for writing. dst is only created, by rename, when fn succeeds; on any
// failure the temporary file is removed.
func withFiles(src, dst string, fn func(io.Reader, io.Writer) error) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return ioError("open source", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return ioError("create destination", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = fn(in, tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return ioError("create destination", err)
	}
	if err = tmp.Close(); err != nil {
		return ioError("close destination", err)
	}
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return ioError("rename destination", err)
	}
	return nil
}
