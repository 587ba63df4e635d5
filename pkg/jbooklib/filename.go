package jbooklib

import "strings"

// SanitizeComponent replaces characters that are illegal in file or
// folder names on common filesystems with underscores. It is applied to
// every path component derived from manifest strings before joining.
func SanitizeComponent(name string) string {
	const invalid = `\/:*?"<>|`
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalid, r) {
			return '_'
		}
		return r
	}, name)
}
