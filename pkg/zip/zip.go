// Package zip bundles generated files into a single archive download.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

type Asset struct {
	Filename string
	MIME     string
	Data     []byte
}

// Archive writes assets to w as a zip archive. Duplicate names get a
// numeric suffix so no entry is shadowed.
func Archive(w io.Writer, assets []Asset) error {
	zw := zip.NewWriter(w)
	seen := make(map[string]int, len(assets))
	now := time.Now()
	for i, asset := range assets {
		name := uniqueName(seen, asset.Filename, i)
		// Images are already compressed.
		f, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store, Modified: now})
		if err != nil {
			return fmt.Errorf("zip: add %s: %w", name, err)
		}
		if _, err := f.Write(asset.Data); err != nil {
			return fmt.Errorf("zip: write %s: %w", name, err)
		}
	}
	return zw.Close()
}

// ArchiveAssets returns the archive as bytes.
func ArchiveAssets(assets []Asset) ([]byte, error) {
	var buf bytes.Buffer
	if err := Archive(&buf, assets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func uniqueName(seen map[string]int, name string, index int) string {
	name = strings.TrimLeft(path.Clean("/"+strings.ReplaceAll(name, "\\", "/")), "/")
	if name == "" || name == "." {
		name = fmt.Sprintf("file_%d", index+1)
	}
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	ext := path.Ext(name)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n+1, ext)
}
