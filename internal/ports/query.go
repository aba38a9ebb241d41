package ports

import "context"

// UsageQueryPort asks the package manager why a target is installed
// across the whole workspace.
type UsageQueryPort interface {
	Why(ctx context.Context, workspaceRoot string, target string) (string, error)
}
