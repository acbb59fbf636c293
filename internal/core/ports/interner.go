package ports

import "go.trai.ch/lsproj/internal/core/domain"

// DigestInterner maps digestible files to stable handles.
type DigestInterner interface {
	// Intern returns the handle of d, allocating one on first use.
	Intern(d domain.Digestible) domain.DigestID
	// Lookup returns the Digestible behind a handle issued by this interner.
	// A foreign handle is a programming error and panics.
	Lookup(id domain.DigestID) domain.Digestible
	// Find returns the handle of d without allocating one.
	Find(d domain.Digestible) (domain.DigestID, bool)
}

// ProjectInterner maps project manifests to stable handles.
type ProjectInterner interface {
	// Intern returns the handle of p, allocating one on first use.
	Intern(p domain.ProjectManifestPath) domain.ProjectID
	// Lookup returns the manifest behind a handle issued by this interner.
	Lookup(id domain.ProjectID) domain.ProjectManifestPath
}
