package ports

import "platform-tools/internal/types"

// WorkspacePort discovers manifest files and projects within a
// workspace root.
type WorkspacePort interface {
	// FindManifests walks the root for package.json files, skipping
	// dependency and build output directories.
	FindManifests(root string) ([]string, error)

	// Projects enumerates the workspace projects declared by
	// pnpm-workspace.yaml. Returns nil without error when the root
	// carries no workspace file.
	Projects(root string) ([]types.WorkspaceProject, error)
}

// ManifestPort scans manifest files for direct dependency
// declarations.
type ManifestPort interface {
	FindDeclarations(paths []string, target string) ([]types.DirectMatch, error)
}
