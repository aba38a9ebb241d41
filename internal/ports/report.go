package ports

import "platform-tools/internal/types"

// TargetListPort reads the newline-delimited list of packages to
// report on.
type TargetListPort interface {
	Read(path string) ([]string, error)
}

// ReportSinkPort appends rows to the usage report. The sink never
// truncates: repeated runs against the same file accumulate.
type ReportSinkPort interface {
	AppendHeader() error
	AppendRows(rows []types.ReportRow) error
	Close() error
}
