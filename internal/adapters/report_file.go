package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"platform-tools/internal/ports"
	"platform-tools/internal/types"
)

// reportHeader names the three row fields. Values are written as-is
// with no quoting, so a comma inside a reason spills into extra
// columns.
const reportHeader = "target,workspace,reason"

// ReportFileAdapter appends usage rows to the report file. The file is
// opened in append mode and created when missing; repeated runs
// accumulate rows rather than replacing them.
type ReportFileAdapter struct {
	file *os.File
}

func OpenReportFile(path string) (*ReportFileAdapter, error) {
	if path == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open report file").
			WithCause(err)
	}
	return &ReportFileAdapter{file: file}, nil
}

func (a *ReportFileAdapter) AppendHeader() error {
	return a.appendLine(reportHeader)
}

func (a *ReportFileAdapter) AppendRows(rows []types.ReportRow) error {
	for _, row := range rows {
		line := fmt.Sprintf("%s,%s,%s", row.Target, row.Workspace, row.Reason)
		if err := a.appendLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (a *ReportFileAdapter) Close() error {
	return a.file.Close()
}

func (a *ReportFileAdapter) appendLine(line string) error {
	if _, err := a.file.WriteString(line + "\n"); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report row").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportSinkPort = (*ReportFileAdapter)(nil)
