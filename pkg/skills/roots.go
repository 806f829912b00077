package skills

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jingkaihe/kagent/pkg/osutil"
)

// userSkillsCandidates are the home-relative directories probed for the
// user skills tier, highest priority first. The first one that exists
// on disk wins.
var userSkillsCandidates = []string{
	filepath.Join(".agents", "skills"),
	filepath.Join(".codex", "skills"),
	filepath.Join(".config", "agents", "skills"),
}

// Resolver computes the ordered list of skills roots. The zero
// configuration resolves the home directory from the environment and
// the builtin directory relative to the running binary.
type Resolver struct {
	home       osutil.HomeDirProvider
	builtinDir string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithHomeDirProvider substitutes the home directory provider.
func WithHomeDirProvider(p osutil.HomeDirProvider) ResolverOption {
	return func(r *Resolver) {
		r.home = p
	}
}

// WithBuiltinSkillsDir overrides the builtin skills directory.
func WithBuiltinSkillsDir(dir string) ResolverOption {
	return func(r *Resolver) {
		r.builtinDir = dir
	}
}

// NewResolver creates a root resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		home:       osutil.EnvHomeDirProvider{},
		builtinDir: defaultBuiltinSkillsDir(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// defaultBuiltinSkillsDir locates the skills directory shipped next to
// the running binary.
func defaultBuiltinSkillsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "skills"
	}
	return filepath.Join(filepath.Dir(exe), "skills")
}

// BuiltinSkillsDir returns the installation's builtin skills directory.
// It is always the first, lowest-precedence root; whether it exists is
// checked by the scan, not here.
func (r *Resolver) BuiltinSkillsDir() string {
	return r.builtinDir
}

// FindUserSkillsDir probes the user skills candidates under the home
// directory and returns the first one that exists. ok is false when no
// candidate exists or no home directory can be determined.
func (r *Resolver) FindUserSkillsDir() (string, bool) {
	home, err := r.home.HomeDir()
	if err != nil || home == "" {
		return "", false
	}

	for _, candidate := range userSkillsCandidates {
		dir := filepath.Join(home, candidate)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	return "", false
}

// ResolveSkillsRoots returns the roots to scan, lowest precedence
// first: the builtin directory, then either the override directory or
// the user and project tiers.
//
// An override replaces the user and project tiers entirely, and unlike
// the best-effort candidate probing it must exist: a caller naming an
// explicit directory gets a hard error when it is missing.
func (r *Resolver) ResolveSkillsRoots(projectDir, overrideDir string) ([]string, error) {
	roots := []string{r.builtinDir}

	if overrideDir != "" {
		info, err := os.Stat(overrideDir)
		if err != nil {
			return nil, errors.Wrapf(err, "skills override directory %q is not usable", overrideDir)
		}
		if !info.IsDir() {
			return nil, errors.Errorf("skills override path %q is not a directory", overrideDir)
		}
		return append(roots, overrideDir), nil
	}

	if userDir, ok := r.FindUserSkillsDir(); ok {
		roots = append(roots, userDir)
	}
	return append(roots, filepath.Join(projectDir, ".agents", "skills")), nil
}

// GetBuiltinSkillsDir is the package-level form of
// Resolver.BuiltinSkillsDir using the default resolver.
func GetBuiltinSkillsDir() string {
	return NewResolver().BuiltinSkillsDir()
}

// FindUserSkillsDir is the package-level form of
// Resolver.FindUserSkillsDir using the default resolver.
func FindUserSkillsDir() (string, bool) {
	return NewResolver().FindUserSkillsDir()
}

// ResolveSkillsRoots is the package-level form of
// Resolver.ResolveSkillsRoots using the default resolver.
func ResolveSkillsRoots(projectDir, overrideDir string) ([]string, error) {
	return NewResolver().ResolveSkillsRoots(projectDir, overrideDir)
}
