package models

import (
	"regexp"
	"strings"
	"time"
)

// Note represents a markdown note as the completion engine sees it.
// RawBody is the full content including any frontmatter header;
// displayable content is derived by stripping the header, not stored.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	RawBody    string    `json:"raw_body"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	ModifiedAt time.Time `json:"modified_at,omitempty"`
}

var inlineTagPattern = regexp.MustCompile(`(?:^|\s)#([A-Za-z0-9_-]+(?:/[A-Za-z0-9_-]+)*)`)

// InlineTags extracts hierarchical #tag tokens from a note body.
// Returned paths never contain empty segments.
func InlineTags(body string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, m := range inlineTagPattern.FindAllStringSubmatch(body, -1) {
		tag := m[1]
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// IsValidTagPath reports whether a /-delimited tag path has only
// non-empty segments.
func IsValidTagPath(path string) bool {
	if path == "" {
		return false
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			return false
		}
	}
	return true
}
