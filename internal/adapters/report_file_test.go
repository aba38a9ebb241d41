package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platform-tools/internal/types"
)

func TestReportFileAdapterWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affected-report.csv")

	sink, err := OpenReportFile(path)
	require.NoError(t, err)
	require.NoError(t, sink.AppendHeader())
	require.NoError(t, sink.AppendRows([]types.ReportRow{
		{Target: "lodash", Workspace: "checkout-web", Reason: "lodash 4.17.21"},
		{Target: "lodash", Workspace: "@acme/ui", Reason: "react-table 7.8.0"},
	}))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "target,workspace,reason", lines[0])
	assert.Equal(t, "lodash,checkout-web,lodash 4.17.21", lines[1])
	assert.Equal(t, "lodash,@acme/ui,react-table 7.8.0", lines[2])
}

func TestReportFileAdapterAccumulatesAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "affected-report.csv")

	for i := 0; i < 2; i++ {
		sink, err := OpenReportFile(path)
		require.NoError(t, err)
		require.NoError(t, sink.AppendHeader())
		require.NoError(t, sink.AppendRows([]types.ReportRow{
			{Target: "lodash", Workspace: "checkout-web", Reason: "lodash 4.17.21"},
		}))
		require.NoError(t, sink.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, lines[1], lines[3])
}

func TestReportFileAdapterEmptyPathErrors(t *testing.T) {
	_, err := OpenReportFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report path is empty")
}
