package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/halide/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectionService_OxygenOnDuplicatedFunctions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mod.py", `
def f():
    x = 1
    return x

def g():
    x = 1
    return x
`)

	svc := NewDetectionService()
	svc.ShowProgress = false

	req := domain.DefaultDetectRequest()
	req.Paths = []string{dir}
	req.Algorithm = domain.AlgorithmOxygen

	result, err := svc.Detect(context.Background(), &req)
	require.NoError(t, err)
	assert.Equal(t, domain.AlgorithmOxygen, result.Algorithm)
}

func TestDetectionService_RejectsUnsupportedCombination(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mod.py", "def f():\n    return 1\n")

	svc := NewDetectionService()
	svc.ShowProgress = false

	req := domain.DefaultDetectRequest()
	req.Paths = []string{dir}
	req.Algorithm = domain.AlgorithmIodine

	_, err := svc.Detect(context.Background(), &req)
	require.Error(t, err)
	assert.True(t, domain.IsUserInputError(err))
}
