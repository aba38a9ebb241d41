package adapters

import (
	"context"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"platform-tools/internal/ports"
	"platform-tools/internal/shared"
)

// PnpmWhyAdapter shells out to pnpm to explain why a package is
// installed anywhere in the workspace.
type PnpmWhyAdapter struct {
	// Command is the package manager executable, overridable in tests.
	Command string
}

func NewPnpmWhyAdapter() PnpmWhyAdapter {
	return PnpmWhyAdapter{Command: "pnpm"}
}

// Why runs a recursive why query from the workspace root and returns
// raw stdout. Stderr is discarded: the query legitimately fails for
// packages nothing depends on, and callers treat those as no usage.
func (a PnpmWhyAdapter) Why(ctx context.Context, workspaceRoot string, target string) (string, error) {
	cmd := exec.CommandContext(ctx, a.Command, "why", "-r", target)
	cmd.Dir = workspaceRoot
	output, err := cmd.Output()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pnpm why failed for " + target).
			WithCause(shared.CommandError(output, err))
	}
	return string(output), nil
}

var _ ports.UsageQueryPort = PnpmWhyAdapter{}
