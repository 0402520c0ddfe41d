package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	content := "# local overrides\nNEXUS_LOADER_PORT=18081\nNEXUS_LOADER_TITLE=\"Nexus Tube\"\nNEXUS_LOADER_KEEP=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("NEXUS_LOADER_KEEP", "from-env")
	t.Cleanup(func() {
		_ = os.Unsetenv("NEXUS_LOADER_PORT")
		_ = os.Unsetenv("NEXUS_LOADER_TITLE")
	})

	set := LoadEnvFromFile(filepath.Join(dir, "missing.env"), path)

	assert.Equal(t, 2, set)
	assert.Equal(t, "18081", os.Getenv("NEXUS_LOADER_PORT"))
	assert.Equal(t, "Nexus Tube", os.Getenv("NEXUS_LOADER_TITLE"))
	assert.Equal(t, "from-env", os.Getenv("NEXUS_LOADER_KEEP"))
}
