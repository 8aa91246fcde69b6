// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides local-disk file storage for uploaded media.
// Files are written to subdirectories of a single uploads root and
// served back through the router's static file handler.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const dirPerm = 0o755

// Client stores and removes files under a single uploads root.
type Client struct {
	root string
}

// New creates a storage client rooted at the given directory, creating
// it if necessary.
func New(root string) (*Client, error) {
	if root == "" {
		return nil, fmt.Errorf("storage: empty root directory")
	}
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("storage create root %s: %w", root, err)
	}
	return &Client{root: root}, nil
}

// Save stores a file under the given subdirectory and returns the name
// it was stored as. The name is sanitized and de-duplicated against
// existing files, so the returned name may differ from the requested one.
func (c *Client) Save(subdir, filename string, src io.Reader) (string, error) {
	dir := filepath.Join(c.root, subdir)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("storage create dir %s: %w", dir, err)
	}

	name := uniqueName(dir, sanitizeFilename(filename))
	target := filepath.Join(dir, name)
	tmp := target + ".tmp"

	// Write to a temp file first so a failed upload never leaves a
	// partial file at the final name.
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("storage create %s: %w", target, err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("storage write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("storage close %s: %w", target, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("storage rename %s: %w", target, err)
	}

	return name, nil
}

// Delete removes a stored file. Missing files are not an error so
// callers can clean up records whose files are already gone.
func (c *Client) Delete(subdir, filename string) error {
	target := filepath.Join(c.root, subdir, filepath.Base(filename))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage delete %s: %w", target, err)
	}
	return nil
}

// Path returns the on-disk path of a stored file.
func (c *Client) Path(subdir, filename string) string {
	return filepath.Join(c.root, subdir, filepath.Base(filename))
}

// Root returns the uploads root directory.
func (c *Client) Root() string {
	return c.root
}

// sanitizeFilename strips path components and characters outside a
// conservative allowlist so uploaded names are safe on any filesystem.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	name = strings.Trim(b.String(), "._")
	if name == "" {
		name = "file"
	}
	return name
}

// uniqueName appends a numeric suffix to the base name until the name
// is free in dir.
func uniqueName(dir, name string) string {
	if !exists(filepath.Join(dir, name)) {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
