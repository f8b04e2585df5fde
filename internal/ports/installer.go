package ports

import "context"

// Installer runs the host package manager for one library. A nil return
// means the install succeeded; a *domain.InstallFailure reports a non-zero
// exit; any other error means the invocation itself could not run.
type Installer interface {
	Install(ctx context.Context, name string) error
}
