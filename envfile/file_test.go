package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// unsetAfter makes sure variables loaded by a test do not leak into others.
func unsetAfter(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestRead_ExistingFile(t *testing.T) {
	unsetAfter(t, "ENVFILE_A_STRING", "ENVFILE_QUOTED")

	path := filepath.Join(t.TempDir(), ".env.test")
	writeFile(t, path, "ENVFILE_A_STRING=blabla\nENVFILE_QUOTED=\"with spaces\"\n")

	found, err := Read(path, Options{})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "blabla", os.Getenv("ENVFILE_A_STRING"))
	assert.Equal(t, "with spaces", os.Getenv("ENVFILE_QUOTED"))
}

func TestRead_SearchesAncestors(t *testing.T) {
	unsetAfter(t, "ENVFILE_FROM_PARENT")

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), "ENVFILE_FROM_PARENT=yes\n")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := Read("", Options{Dir: nested})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "yes", os.Getenv("ENVFILE_FROM_PARENT"))
}

func TestRead_NotFound(t *testing.T) {
	dir := t.TempDir()

	found, err := Read("definitely-not-here.env", Options{Dir: dir})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRead_Override(t *testing.T) {
	t.Setenv("ENVFILE_EXISTING", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "ENVFILE_EXISTING=from-file\n")

	found, err := Read(path, Options{})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "from-env", os.Getenv("ENVFILE_EXISTING"), "existing entries win without override")

	found, err = Read(path, Options{Override: true})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "from-file", os.Getenv("ENVFILE_EXISTING"))
}

func TestRead_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "ENVFILE_BROKEN='unterminated\n")

	found, err := Read(path, Options{})
	assert.Error(t, err)
	assert.False(t, found)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "config", ".env.local"), "X=1\n")
	nested := filepath.Join(root, "config", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, err := Find(".env.local", nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", ".env.local"), got)

	// A directory with the wanted name is not a match
	require.NoError(t, os.MkdirAll(filepath.Join(nested, "dir.env"), 0755))
	got, err = Find("dir.env", nested)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "ONE=1\nTWO='2'\nTHREE = \"3\"\n# comment\n")

	values, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ONE": "1", "TWO": "2", "THREE": "3"}, values)
}
