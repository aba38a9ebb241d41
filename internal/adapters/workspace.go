package adapters

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

func (a WorkspaceAdapter) FindManifests(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if shouldSkipWorkspaceDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Base(path) == "package.json" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan workspace").
			WithCause(err)
	}
	return paths, nil
}

// Projects expands the packages globs from pnpm-workspace.yaml into
// named projects. A missing workspace file is not an error; the
// workspace is then treated as a single-project tree.
func (a WorkspaceAdapter) Projects(root string) ([]types.WorkspaceProject, error) {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read pnpm-workspace.yaml").
			WithCause(err)
	}
	var workspace struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &workspace); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pnpm-workspace.yaml").
			WithCause(err)
	}
	var projects []types.WorkspaceProject
	seen := map[string]struct{}{}
	for _, pattern := range workspace.Packages {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "!") {
			continue
		}
		dirs, err := expandPackagesPattern(root, pattern)
		if err != nil {
			log.Debug().Str("pattern", pattern).Err(err).Msg("skipping workspace pattern")
			continue
		}
		for _, dir := range dirs {
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			name := manifestName(filepath.Join(dir, "package.json"))
			if name == "" {
				continue
			}
			projects = append(projects, types.WorkspaceProject{Name: name, Dir: dir})
		}
	}
	return projects, nil
}

// expandPackagesPattern resolves one packages glob to directories. The
// common single-star forms go through filepath.Glob; recursive globs
// fall back to walking the static prefix.
func expandPackagesPattern(root string, pattern string) ([]string, error) {
	if !strings.Contains(pattern, "**") {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, err
		}
		var dirs []string
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				dirs = append(dirs, match)
			}
		}
		return dirs, nil
	}
	base := root
	if prefix, _, ok := strings.Cut(pattern, "**"); ok {
		base = filepath.Join(root, strings.TrimSuffix(prefix, "/"))
	}
	var dirs []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkipWorkspaceDir(d.Name()) {
			return filepath.SkipDir
		}
		if _, statErr := os.Stat(filepath.Join(path, "package.json")); statErr == nil {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

func manifestName(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}

func shouldSkipWorkspaceDir(name string) bool {
	switch name {
	case "node_modules", ".git", "dist", "build", ".turbo", "coverage":
		return true
	default:
		return false
	}
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
