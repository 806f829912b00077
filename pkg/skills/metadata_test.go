package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetadata(t *testing.T) {
	t.Run("full header", func(t *testing.T) {
		content := `---
name: test-skill
description: A test skill
type: flow
---

# Body

Instructions here.`

		md, body := parseMetadata(content)
		assert.Equal(t, "test-skill", md.Name)
		assert.Equal(t, "A test skill", md.Description)
		assert.Equal(t, "flow", md.Type)
		assert.Equal(t, "# Body\n\nInstructions here.", body)
	})

	t.Run("no header", func(t *testing.T) {
		content := "# Just content\nNo frontmatter here.\n"

		md, body := parseMetadata(content)
		assert.Equal(t, Metadata{}, md)
		assert.Equal(t, content, body)
	})

	t.Run("unterminated header is body", func(t *testing.T) {
		content := "---\nname: test\n# No closing fence"

		md, body := parseMetadata(content)
		assert.Equal(t, Metadata{}, md)
		assert.Equal(t, content, body)
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		content := "---\nname: alpha\npriority: 3\nauthor: someone\n---\nbody\n"

		md, body := parseMetadata(content)
		assert.Equal(t, "alpha", md.Name)
		assert.Empty(t, md.Description)
		assert.Equal(t, "body\n", body)
	})

	t.Run("malformed header falls back to line scan", func(t *testing.T) {
		content := `---
name: alpha
this line has no separator
description: Uses: extra colons
---
body`

		md, body := parseMetadata(content)
		assert.Equal(t, "alpha", md.Name)
		assert.Equal(t, "Uses: extra colons", md.Description)
		assert.Equal(t, "body", body)
	})

	t.Run("blank lines and padding tolerated", func(t *testing.T) {
		content := "---\nname:   padded   \n\ndescription: ok\n---\n\n\nbody"

		md, body := parseMetadata(content)
		assert.Equal(t, "padded", md.Name)
		assert.Equal(t, "ok", md.Description)
		assert.Equal(t, "body", body)
	})
}
