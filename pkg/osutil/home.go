// Package osutil isolates process-environment concerns behind small
// injectable interfaces so the code that depends on them stays pure and
// testable.
package osutil

import (
	"os"

	"github.com/pkg/errors"
)

// HomeDirProvider reports the process's notion of the user home
// directory. Implementations must be deterministic for a given
// environment.
type HomeDirProvider interface {
	HomeDir() (string, error)
}

// EnvHomeDirProvider resolves the home directory from OS-conventional
// environment variables with first-match-wins precedence: HOME, then
// USERPROFILE. os.UserHomeDir is the final fallback.
type EnvHomeDirProvider struct{}

// HomeDir implements HomeDirProvider.
func (EnvHomeDirProvider) HomeDir() (string, error) {
	for _, key := range []string{"HOME", "USERPROFILE"} {
		if dir := os.Getenv(key); dir != "" {
			return dir, nil
		}
	}
	return os.UserHomeDir()
}

// StaticHomeDir is a fixed-value provider. The empty string means no
// home directory is resolvable.
type StaticHomeDir string

// HomeDir implements HomeDirProvider.
func (s StaticHomeDir) HomeDir() (string, error) {
	if s == "" {
		return "", errors.New("no home directory available")
	}
	return string(s), nil
}
