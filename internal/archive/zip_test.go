package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"previewforge/internal/convert"
)

func TestBuildRoundTrip(t *testing.T) {
	files := convert.NewFileMap()
	files.Set("package.json", `{"name": "app"}`)
	files.Set("src/screens/HomeScreen.tsx", "export default function HomeScreen() {}")
	files.Set("README.md", "# app")

	data, err := Build(files, "my-app")
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, r.File, 3)

	// Member order follows the file map.
	require.Equal(t, "my-app/package.json", r.File[0].Name)
	require.Equal(t, "my-app/src/screens/HomeScreen.tsx", r.File[1].Name)
	require.Equal(t, "my-app/README.md", r.File[2].Name)

	rc, err := r.File[0].Open()
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, `{"name": "app"}`, string(content))
}

func TestBuildDeterministic(t *testing.T) {
	files := convert.NewFileMap()
	files.Set("a.txt", "one")
	files.Set("b.txt", "two")

	first, err := Build(files, "")
	require.NoError(t, err)
	second, err := Build(files, "")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := Build(convert.NewFileMap(), "app")
	require.Error(t, err)
	_, err = Build(nil, "app")
	require.Error(t, err)
}
