package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/jingkaihe/kagent/pkg/logger"
)

// DiscoverSkills discovers the skills under a single root directory.
// See DiscoverSkillsFromRoots for the merge and error semantics.
func DiscoverSkills(ctx context.Context, root string) ([]Skill, error) {
	return DiscoverSkillsFromRoots(ctx, []string{root})
}

// DiscoverSkillsFromRoots scans each root's immediate subdirectories
// for skills and merges the results by name, with later roots
// overriding earlier ones wholesale.
//
// The returned slice is in first-discovery order: a skill's position is
// fixed when its name is first seen, and a later override replaces the
// record in place. When two directories inside one root derive the same
// name, the last one in directory-listing order wins; callers must not
// rely on that beyond last-writer-wins.
//
// Missing roots and directories without a SKILL.md are skipped
// silently. Unreadable definition files never abort the scan; they are
// accumulated into the returned error, which callers may ignore — the
// skill list is valid either way.
func DiscoverSkillsFromRoots(ctx context.Context, roots []string) ([]Skill, error) {
	positions := make(map[string]int)
	var out []Skill
	var loadErrs *multierror.Error

	for _, root := range roots {
		loaded, err := scanRoot(ctx, root)
		loadErrs = multierror.Append(loadErrs, err)

		for _, skill := range loaded {
			if idx, seen := positions[skill.Name]; seen {
				out[idx] = skill
				continue
			}
			positions[skill.Name] = len(out)
			out = append(out, skill)
		}
	}

	return out, loadErrs.ErrorOrNil()
}

// scanRoot loads every skill subdirectory of root. Per-directory loads
// run concurrently; results are folded back in directory-listing order
// so the outcome is deterministic regardless of completion order.
func scanRoot(ctx context.Context, root string) ([]Skill, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		// A root that does not exist contributes nothing.
		return nil, nil
	}

	type result struct {
		skill Skill
		ok    bool
		err   error
	}
	results := make([]result, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			dir := filepath.Join(root, entry.Name())

			// Stat follows symlinks so a skill directory linked into
			// the root is still discovered.
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				return nil
			}

			skill, ok, err := loadSkill(gctx, dir)
			results[i] = result{skill: skill, ok: ok, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var errs *multierror.Error
	skills := make([]Skill, 0, len(results))
	for _, res := range results {
		if res.err != nil {
			logger.G(ctx).WithError(res.err).WithField("root", root).
				Debug("Skipping unloadable skill directory")
			errs = multierror.Append(errs, res.err)
			continue
		}
		if res.ok {
			skills = append(skills, res.skill)
		}
	}
	return skills, errs.ErrorOrNil()
}
