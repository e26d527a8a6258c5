package domain

// ProfileLoader reads and parses a design profile document.
// Failures are returned as *LoadError.
type ProfileLoader interface {
	Load(path string) (*Profile, error)
}

// ProfileScanner finds design profile files below a directory.
type ProfileScanner interface {
	Scan(root string, excludePaths ...string) ([]string, error)
}

// ConfigLoader loads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// SchemaChecker checks the shape of a parsed document and reports
// violations as findings.
type SchemaChecker interface {
	Check(p *Profile) ([]Finding, error)
}

// RunHistory persists validation runs.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo provides version-control metadata for a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
