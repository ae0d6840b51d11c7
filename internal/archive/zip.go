// Package archive turns a generated project into a downloadable zip and
// optionally uploads it to an S3-compatible store.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"previewforge/internal/convert"
)

// Build writes every generated file into a zip archive, preserving the
// file map's path order. Timestamps are pinned so identical input produces an
// identical archive.
func Build(files *convert.FileMap, root string) ([]byte, error) {
	if files == nil || files.Len() == 0 {
		return nil, fmt.Errorf("archive: no files to pack")
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	stamp := time.Unix(0, 0).UTC()
	for _, path := range files.Paths() {
		name := path
		if root != "" {
			name = root + "/" + path
		}
		header := &zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: stamp,
		}
		f, err := w.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("archive: create %s: %w", name, err)
		}
		content, _ := files.Get(path)
		if _, err := f.Write([]byte(content)); err != nil {
			return nil, fmt.Errorf("archive: write %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("archive: close: %w", err)
	}
	return buf.Bytes(), nil
}
