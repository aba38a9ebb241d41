package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"platform-tools/internal/ports"
)

type TargetListAdapter struct{}

func NewTargetListAdapter() TargetListAdapter {
	return TargetListAdapter{}
}

// Read loads the newline-delimited target list. Blank lines are
// dropped; everything else is taken verbatim as a package name.
func (a TargetListAdapter) Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("target list not found: " + path).
			WithCause(err)
	}
	var targets []string
	for _, line := range strings.Split(string(data), "\n") {
		target := strings.TrimSpace(line)
		if target == "" {
			continue
		}
		targets = append(targets, target)
	}
	return targets, nil
}

var _ ports.TargetListPort = TargetListAdapter{}
