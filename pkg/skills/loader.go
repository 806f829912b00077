package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jingkaihe/kagent/pkg/logger"
)

// SkillFileName is the definition file expected inside every skill
// directory.
const SkillFileName = "SKILL.md"

// loadSkill loads the skill defined in dir. ok is false when the
// directory contains no SKILL.md; a read failure is returned as an
// error scoped to this directory only.
//
// A `type: flow` skill whose flow block is absent or malformed degrades
// to a standard skill instead of failing the load.
func loadSkill(ctx context.Context, dir string) (Skill, bool, error) {
	path := filepath.Join(dir, SkillFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Skill{}, false, nil
		}
		return Skill{}, false, errors.Wrapf(err, "failed to read %s", path)
	}

	md, body := parseMetadata(string(content))

	skill := Skill{
		Name:        md.Name,
		Description: md.Description,
		Type:        SkillTypeStandard,
		Dir:         dir,
		Content:     body,
	}
	if skill.Name == "" {
		skill.Name = filepath.Base(dir)
	}
	if skill.Description == "" {
		skill.Description = DefaultDescription
	}

	if md.Type == string(SkillTypeFlow) {
		flow, err := parseFlow(body)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("skill", skill.Name).
				Debug("Rejected flow block, treating skill as standard")
		}
		if flow != nil {
			skill.Type = SkillTypeFlow
			skill.Flow = flow
		}
	}

	return skill, true, nil
}
