package skills

import (
	"context"

	"github.com/spf13/viper"

	"github.com/jingkaihe/kagent/pkg/logger"
)

// Config controls skill discovery as sourced from application
// configuration.
type Config struct {
	// Enabled gates discovery entirely.
	Enabled bool
	// Allowed, when non-empty, restricts the result to the named skills.
	Allowed []string
	// Override, when non-empty, replaces the user and project tiers with
	// a single explicit root.
	Override string
}

// ConfigFromViper reads the skills configuration. skills.enabled
// defaults to true; the --no-skills flag is bound to no_skills.
func ConfigFromViper() Config {
	enabled := true
	if viper.IsSet("skills.enabled") {
		enabled = viper.GetBool("skills.enabled")
	}

	return Config{
		Enabled:  enabled && !viper.GetBool("no_skills"),
		Allowed:  viper.GetStringSlice("skills.allowed"),
		Override: viper.GetString("skills.dir"),
	}
}

// Initialize resolves the skills roots for projectDir and discovers
// skills according to configuration. It returns the discovered skills
// and whether skills are enabled at all.
func Initialize(ctx context.Context, projectDir string) ([]Skill, bool) {
	cfg := ConfigFromViper()
	if !cfg.Enabled {
		return nil, false
	}

	roots, err := ResolveSkillsRoots(projectDir, cfg.Override)
	if err != nil {
		logger.G(ctx).WithError(err).Error("Failed to resolve skills roots")
		return nil, false
	}

	skills, err := DiscoverSkillsFromRoots(ctx, roots)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("Some skills failed to load")
	}

	if len(cfg.Allowed) > 0 {
		skills = FilterByAllowlist(skills, cfg.Allowed)
	}
	return skills, true
}

// FilterByAllowlist filters skills by an allowlist of names, preserving
// discovery order. An empty allowlist returns all skills.
func FilterByAllowlist(skills []Skill, allowed []string) []Skill {
	if len(allowed) == 0 {
		return skills
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	filtered := make([]Skill, 0, len(skills))
	for _, skill := range skills {
		if _, ok := allowedSet[skill.Name]; ok {
			filtered = append(filtered, skill)
		}
	}
	return filtered
}
