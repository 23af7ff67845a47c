package expensetypes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jhaabhiiishek/finmanBackend/internal/fixtures/expensetypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	names, err := expensetypes.Load("")
	require.NoError(t, err)
	assert.Contains(t, names, "Food")
	assert.Contains(t, names, "Other")
	assert.Len(t, names, 10)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.csv")
	content := "name\nFood\n\n  Pets \nFood\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	names, err := expensetypes.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Pets"}, names)
}

func TestLoad_BadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.csv")
	require.NoError(t, os.WriteFile(path, []byte("code,label\nX,Y\n"), 0o600))

	_, err := expensetypes.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := expensetypes.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
