package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("tilde prefix", func(t *testing.T) {
		got := ExpandPath("~/data/garantia.db")
		assert.Equal(t, filepath.Join(home, "data", "garantia.db"), got)
	})

	t.Run("bare tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandPath("~"))
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("GARANTIA_TEST_DIR", "/tmp/garantia")
		assert.Equal(t, "/tmp/garantia/orders.db", ExpandPath("$GARANTIA_TEST_DIR/orders.db"))
	})

	t.Run("absolute path unchanged", func(t *testing.T) {
		assert.Equal(t, "/var/lib/garantia.db", ExpandPath("/var/lib/garantia.db"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandPath(""))
	})
}
