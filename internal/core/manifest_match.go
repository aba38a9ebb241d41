package core

import (
	"strings"

	"platform-tools/internal/types"
)

// DeclarationNeedle is the quoted-key form a manifest uses to declare a
// dependency, e.g. `"lodash":`. Matching on it catches the target in
// dependencies, devDependencies, peerDependencies and overrides alike
// without parsing the manifest.
func DeclarationNeedle(target string) string {
	return `"` + target + `":`
}

// FindDeclarations scans manifest content line by line for direct
// declarations of the target. Line numbers are 1-based and the matched
// text keeps its original indentation.
func FindDeclarations(path string, content []byte, target string) []types.DirectMatch {
	needle := DeclarationNeedle(target)
	var matches []types.DirectMatch
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.Contains(line, needle) {
			continue
		}
		matches = append(matches, types.DirectMatch{
			Target: target,
			Path:   path,
			Line:   i + 1,
			Text:   line,
		})
	}
	return matches
}
