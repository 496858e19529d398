package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
}

func TestCreate(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"go.mod":                 "module x\n",
		"cmd/server/main.go":     "package main\n",
		"internal/model/a.go":    strings.Repeat("package model\n", 200),
		"internal/model/b/c.txt": "c",
		"unlisted.txt":           "nope",
	})
	out := filepath.Join(t.TempDir(), "out.zip")

	res, err := Create(context.Background(), root, out, []string{"go.mod", "cmd/", "internal/", "missing.json"})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Files)
	assert.Equal(t, []string{"missing.json"}, res.Skipped)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), res.Size)

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.Equal(t, zip.Deflate, f.Method)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"cmd/server/main.go", "go.mod", "internal/model/a.go", "internal/model/b/c.txt"}, names)

	for _, f := range zr.File {
		if f.Name != "internal/model/a.go" {
			continue
		}
		assert.Less(t, f.CompressedSize64, f.UncompressedSize64)
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("package model\n", 200), string(body))
	}
}

func TestCreate_SkipsOwnOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"pkg/a.go": "package pkg\n"})
	out := filepath.Join(root, "pkg", DefaultName)

	res, err := Create(context.Background(), root, out, []string{"pkg/"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
}

func TestCreate_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"internal/a.go": "package internal\n"})
	out := filepath.Join(t.TempDir(), "out.zip")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Create(ctx, root, out, []string{"internal/"})
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
