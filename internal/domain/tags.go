package domain

import "strings"

// AddTag returns tags with tag appended. The tag is trimmed first; blanks
// and exact duplicates are ignored. The input slice is not modified.
func AddTag(tags []string, tag string) []string {
	out := append(make([]string, 0, len(tags)+1), tags...)
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return out
	}
	for _, existing := range out {
		if existing == tag {
			return out
		}
	}
	return append(out, tag)
}

// RemoveTag returns tags without tag.
func RemoveTag(tags []string, tag string) []string {
	out := make([]string, 0, len(tags))
	for _, existing := range tags {
		if existing != tag {
			out = append(out, existing)
		}
	}
	return out
}

// NormalizeTags trims every tag, drops blanks and keeps the first of any
// duplicates. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = AddTag(out, tag)
	}
	return out
}
