package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platform-tools/internal/adapters"
	"platform-tools/internal/app"
	"platform-tools/tests/testutil"
)

// reportPnpmScript mimics pnpm why -r for the targets listed in
// fixtures/affected-sample.txt.
const reportPnpmScript = `#!/bin/sh
target="$3"
case "$target" in
lodash)
  echo "Legend: production dependency, optional only, dev only"
  echo ""
  echo "admin-portal@0.9.2 /repo/apps/admin-portal (PRIVATE)"
  echo ""
  echo "devDependencies:"
  echo "lodash 4.17.21"
  ;;
left-pad)
  echo "checkout-web@1.4.0 /repo/apps/checkout-web (PRIVATE)"
  echo ""
  echo "dependencies:"
  echo "ui-kit 2.1.0"
  echo "left-pad 1.3.0"
  ;;
*)
  exit 1
  ;;
esac
`

func TestReportFlowWithFixtures(t *testing.T) {
	ctx := t.Context()
	root := testutil.RepoRoot(t)
	stub := testutil.StubPnpm(t, reportPnpmScript)
	reportPath := filepath.Join(t.TempDir(), "affected-report.csv")

	service := app.NewService()
	service.UsageQuery = adapters.PnpmWhyAdapter{Command: stub}

	result, err := service.Report(ctx, app.ReportRequest{
		TargetsPath:   filepath.Join(root, "fixtures", "affected-sample.txt"),
		WorkspaceRoot: filepath.Join(root, "fixtures", "workspace"),
		ReportPath:    reportPath,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"lodash", "left-pad"}, result.Targets)
	assert.Len(t, result.DirectMatches, 4)
	assert.Equal(t, 5, result.RowsAppended)

	var projects []string
	for _, project := range result.Projects {
		projects = append(projects, project.Name)
	}
	assert.ElementsMatch(t, []string{"admin-portal", "checkout-web", "ui-kit"}, projects)

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	want := "target,workspace,reason\n" +
		"lodash,admin-portal,devDependencies:\n" +
		"lodash,admin-portal,lodash 4.17.21\n" +
		"left-pad,checkout-web,dependencies:\n" +
		"left-pad,checkout-web,ui-kit 2.1.0\n" +
		"left-pad,checkout-web,left-pad 1.3.0\n"
	assert.Equal(t, want, string(report))
}

func TestReportFlowRerunAccumulates(t *testing.T) {
	ctx := t.Context()
	root := testutil.RepoRoot(t)
	stub := testutil.StubPnpm(t, reportPnpmScript)
	reportPath := filepath.Join(t.TempDir(), "affected-report.csv")

	service := app.NewService()
	service.UsageQuery = adapters.PnpmWhyAdapter{Command: stub}
	request := app.ReportRequest{
		TargetsPath:   filepath.Join(root, "fixtures", "affected-sample.txt"),
		WorkspaceRoot: filepath.Join(root, "fixtures", "workspace"),
		ReportPath:    reportPath,
	}

	_, err := service.Report(ctx, request)
	require.NoError(t, err)
	first, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	_, err = service.Report(ctx, request)
	require.NoError(t, err)
	second, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	assert.Equal(t, string(first)+string(first), string(second))
}

func TestReportFlowSwallowsQueryFailures(t *testing.T) {
	ctx := t.Context()
	root := testutil.RepoRoot(t)
	stub := testutil.StubPnpm(t, "#!/bin/sh\nexit 1\n")
	reportPath := filepath.Join(t.TempDir(), "affected-report.csv")

	service := app.NewService()
	service.UsageQuery = adapters.PnpmWhyAdapter{Command: stub}

	result, err := service.Report(ctx, app.ReportRequest{
		TargetsPath:   filepath.Join(root, "fixtures", "affected-sample.txt"),
		WorkspaceRoot: filepath.Join(root, "fixtures", "workspace"),
		ReportPath:    reportPath,
	})
	require.NoError(t, err)

	assert.Len(t, result.DirectMatches, 4)
	assert.Zero(t, result.RowsAppended)

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, "target,workspace,reason\n", string(report))
}
