// Package skills discovers agent skills from layered directories. A
// skill is packaged as a directory containing a SKILL.md file whose
// frontmatter describes the skill and whose body carries free-form
// instructions. Flow skills additionally embed a mermaid flowchart that
// a flow executor can run; discovery only parses the chart and locates
// its begin node.
//
// Skills are gathered from an ordered list of roots, lowest precedence
// first: the builtin directory shipped next to the binary, the user's
// skills directory, and the project-local directory. A skill defined in
// a later root replaces a same-named skill from an earlier root.
package skills

// SkillType distinguishes plain instruction skills from flow skills.
type SkillType string

const (
	// SkillTypeStandard is a skill whose body is free-form guidance text.
	SkillTypeStandard SkillType = "standard"
	// SkillTypeFlow is a skill whose body embeds an executable flowchart.
	SkillTypeFlow SkillType = "flow"
)

// Skill represents a discovered skill. Values are immutable once
// returned from discovery.
type Skill struct {
	Name        string          // Unique name from frontmatter, or the directory base name
	Description string          // Brief description for model decision-making
	Type        SkillType       // Standard unless a flow block parsed successfully
	Dir         string          // Full path to the skill directory
	Flow        *FlowDefinition // Parsed flowchart, nil for standard skills
	Content     string          // Body of SKILL.md with the frontmatter stripped
}

// Metadata represents the recognized frontmatter fields of a SKILL.md
// file. Unknown keys are ignored.
type Metadata struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Type        string `mapstructure:"type"`
}
