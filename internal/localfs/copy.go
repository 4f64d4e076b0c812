package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ProgressFunc receives the number of bytes copied so far.
type ProgressFunc func(copied int64)

// CopyFile copies src to dst, creating or truncating dst. The context is
// checked between chunks; a cancelled copy removes the partial dst.
func CopyFile(ctx context.Context, src, dst string, chunkSize int, progress ProgressFunc) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()|0o200)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	if chunkSize <= 0 {
		chunkSize = 32 * 1024
	}
	pooled := getBuffer(chunkSize)
	defer putBuffer(pooled)
	buf := *pooled
	var copied int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return werr
			}
			copied += int64(n)
			if progress != nil {
				progress(copied)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// CopyTree copies the directory src into dst (dst becomes the copy of src).
// Hidden entries are copied only when includeHidden is set. progress receives
// the running byte total across all files.
func CopyTree(ctx context.Context, src, dst string, includeHidden bool, chunkSize int, progress ProgressFunc) error {
	var done int64
	return Walk(src, includeHidden, func(e FileEntry) error {
		rel, err := filepath.Rel(src, e.Path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if e.IsDir {
			return os.MkdirAll(target, 0o755)
		}
		base := done
		err = CopyFile(ctx, e.Path, target, chunkSize, func(copied int64) {
			if progress != nil {
				progress(base + copied)
			}
		})
		done += e.Size
		return err
	})
}
