package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/halide/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectPythonFiles_RecursiveAndExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "x = 1")
	writeFile(t, filepath.Join(dir, "nested", "b.py"), "y = 2")
	writeFile(t, filepath.Join(dir, "readme.md"), "not python")

	files, err := CollectPythonFiles([]string{dir}, Options{Recursive: true})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestCollectPythonFiles_NonRecursiveSkipsNested(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "x = 1")
	writeFile(t, filepath.Join(dir, "nested", "b.py"), "y = 2")

	files, err := CollectPythonFiles([]string{dir}, Options{Recursive: false})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestCollectPythonFiles_ExcludePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "x = 1")
	writeFile(t, filepath.Join(dir, "a_test.py"), "x = 1")

	files, err := CollectPythonFiles([]string{dir}, Options{Recursive: true, Exclude: []string{"*_test.py"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.py", filepath.Base(files[0]))
}

func TestCollectPythonFiles_MissingPathIsUserInputError(t *testing.T) {
	_, err := CollectPythonFiles([]string{"/does/not/exist"}, Options{})
	require.Error(t, err)
	assert.True(t, domain.IsUserInputError(err))
}

func TestCollectPythonFiles_SkipsVenvDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "x = 1")
	writeFile(t, filepath.Join(dir, ".venv", "lib", "b.py"), "y = 2")

	files, err := CollectPythonFiles([]string{dir}, Options{Recursive: true})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
