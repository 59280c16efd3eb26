package ports

// WorkspaceLocator finds a rootplot project root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
