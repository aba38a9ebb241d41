package types

// ReportRow is one attributed usage line in the dependency report:
// which workspace project pulls in the target, and the dependency
// chain line explaining why.
type ReportRow struct {
	Target    string
	Workspace string
	Reason    string
}

// DirectMatch is a manifest line that declares the target directly.
type DirectMatch struct {
	Target string
	Path   string
	Line   int
	Text   string
}

type WorkspaceProject struct {
	Name string
	Dir  string
}
