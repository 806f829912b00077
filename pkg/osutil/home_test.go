package osutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvHomeDirProvider(t *testing.T) {
	t.Run("HOME wins", func(t *testing.T) {
		t.Setenv("HOME", "/home/alpha")
		t.Setenv("USERPROFILE", "/home/beta")

		dir, err := EnvHomeDirProvider{}.HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/alpha", dir)
	})

	t.Run("USERPROFILE when HOME unset", func(t *testing.T) {
		t.Setenv("HOME", "")
		t.Setenv("USERPROFILE", "/home/beta")

		dir, err := EnvHomeDirProvider{}.HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/beta", dir)
	})
}

func TestStaticHomeDir(t *testing.T) {
	t.Run("fixed value", func(t *testing.T) {
		dir, err := StaticHomeDir("/home/static").HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/static", dir)
	})

	t.Run("empty means unresolvable", func(t *testing.T) {
		_, err := StaticHomeDir("").HomeDir()
		assert.Error(t, err)
	})
}
