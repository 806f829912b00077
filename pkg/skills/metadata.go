package skills

import (
	"bytes"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const headerFence = "---"

// DefaultDescription is used when a skill's frontmatter provides none.
const DefaultDescription = "No description provided."

// parseMetadata splits content into its frontmatter fields and body.
// Parsing is best-effort: a missing header yields zero metadata with the
// whole input as body, and a header that fails YAML parsing is re-read
// line by line so that well-formed `key: value` lines still contribute.
func parseMetadata(content string) (Metadata, string) {
	header, body, ok := splitHeader(content)
	if !ok {
		return Metadata{}, content
	}

	fields, err := parseFrontmatter(content)
	if err != nil || fields == nil {
		fields = scanHeaderLines(header)
	}

	var md Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &md,
		WeaklyTypedInput: true,
	})
	if err == nil {
		// Best-effort: fields with incompatible values are dropped.
		_ = decoder.Decode(fields)
	}
	return md, body
}

// parseFrontmatter runs the document through goldmark with the meta
// extension and returns the raw frontmatter mapping.
func parseFrontmatter(content string) (map[string]interface{}, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert([]byte(content), &buf, parser.WithContext(pctx)); err != nil {
		return nil, err
	}

	return meta.TryGet(pctx)
}

// splitHeader separates the `---` delimited header from the body. ok is
// false when no complete header exists, in which case body is the whole
// input.
func splitHeader(content string) (header []string, body string, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != headerFence {
		return nil, content, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == headerFence {
			body = strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
			return lines[1:i], body, true
		}
	}

	// Unterminated header is not a header at all.
	return nil, content, false
}

// scanHeaderLines is the tolerant fallback for headers that are not
// valid YAML documents: each `key: value` line is taken on its own and
// anything else is skipped.
func scanHeaderLines(header []string) map[string]interface{} {
	fields := make(map[string]interface{}, len(header))
	for _, line := range header {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	return fields
}
