// Package assets selects and copies the public image and icon files that
// ship alongside the rendered pages.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// File is one public asset.
type File struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the public dir.
	Size    int64
}

// Walk lists the regular files under root that pass the include and
// exclude patterns. A missing root yields no files.
func Walk(root string, include, exclude []string) ([]File, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return nil, nil
	}

	var files []File
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(abs, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !Allowed(rel, include, exclude) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, File{Path: p, RelPath: rel, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: walking %s: %w", root, err)
	}
	return files, nil
}

// Copy writes each file to destDir, keeping its relative path.
func Copy(files []File, destDir string) error {
	for _, f := range files {
		out := filepath.Join(destDir, filepath.FromSlash(f.RelPath))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := copyFile(f.Path, out); err != nil {
			return fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Handler serves files from root, answering 404 for anything the patterns
// reject and for directory listings.
func Handler(root string, include, exclude []string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if rel == "" || strings.HasSuffix(r.URL.Path, "/") || !Allowed(rel, include, exclude) {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
