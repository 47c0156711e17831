// Package install handles installing the ringring binary and theme
// bundles. Theme bundles are zip archives with a single top-level
// directory containing a manifest.json.
package install

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ariel-frischer/ringring/internal/theme"
)

// DefaultHTTPTimeout bounds theme bundle downloads.
const DefaultHTTPTimeout = 60 * time.Second

// BinaryName is the installed executable name.
const BinaryName = "ringring"

// Binary copies the running executable to destDir/ringring with executable
// permissions, creating destDir if needed. Returns the installed path.
func Binary(destDir string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating running executable: %w", err)
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", destDir, err)
	}

	dest := filepath.Join(destDir, BinaryName)
	src, err := os.Open(exe)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", exe, err)
	}
	defer src.Close()

	// Write beside the target then rename, so a running install never
	// truncates an executable something else is launching.
	tmp, err := os.CreateTemp(destDir, BinaryName+"-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("copying binary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o755); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("installing binary: %w", err)
	}
	return dest, nil
}

// Theme installs a theme bundle from a local zip path or an http(s) URL
// into dataDir. The archive must contain exactly one top-level directory
// with a manifest.json inside it. Returns the theme name.
func Theme(ctx context.Context, source, dataDir string, force bool) (string, error) {
	zipPath := source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		downloaded, err := download(ctx, source)
		if err != nil {
			return "", err
		}
		defer os.Remove(downloaded)
		zipPath = downloaded
	}

	archive, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("opening theme archive: %w", err)
	}
	defer archive.Close()

	name, err := archiveRoot(&archive.Reader)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(dataDir, name)
	if _, err := os.Stat(dest); err == nil {
		if !force {
			return "", fmt.Errorf("theme %q already exists; use --force to overwrite", name)
		}
		if err := os.RemoveAll(dest); err != nil {
			return "", fmt.Errorf("removing existing theme: %w", err)
		}
	}

	if err := extract(&archive.Reader, dataDir); err != nil {
		os.RemoveAll(dest)
		return "", err
	}

	if _, err := os.Stat(filepath.Join(dest, theme.ManifestFileName)); err != nil {
		os.RemoveAll(dest)
		return "", fmt.Errorf("theme %q has no %s", name, theme.ManifestFileName)
	}

	return name, nil
}

// download fetches url to a temp file and returns its path. The caller
// removes the file.
func download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	client := &http.Client{Timeout: DefaultHTTPTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading theme: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "ringring-theme-*.zip")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing to temp file: %w", err)
	}
	return tmp.Name(), nil
}

// archiveRoot finds the single top-level directory name in the archive.
func archiveRoot(r *zip.Reader) (string, error) {
	roots := make(map[string]struct{})
	for _, f := range r.File {
		if !safeEntryName(f.Name) {
			continue
		}
		first, _, _ := strings.Cut(f.Name, "/")
		if first != "" {
			roots[first] = struct{}{}
		}
	}

	if len(roots) == 0 {
		return "", fmt.Errorf("zip is empty or contains no files")
	}
	if len(roots) > 1 {
		names := make([]string, 0, len(roots))
		for name := range roots {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("zip must contain exactly one top-level directory, found %d: %s",
			len(names), strings.Join(names, ", "))
	}
	for name := range roots {
		return name, nil
	}
	return "", nil
}

// safeEntryName reports whether an archive entry name can be extracted
// without escaping the destination: relative, no empty name, no ".."
// elements anywhere in the path.
func safeEntryName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") {
		return false
	}
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

// extract writes every archive entry under destParent. Entries whose
// names would escape destParent are skipped.
func extract(r *zip.Reader, destParent string) error {
	for _, f := range r.File {
		if !safeEntryName(f.Name) {
			continue
		}
		outPath := filepath.Join(destParent, filepath.FromSlash(f.Name))

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(outPath, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := extractFile(f, outPath); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, outPath string) error {
	in, err := f.Open()
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.Name, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	return nil
}
