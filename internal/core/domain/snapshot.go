package domain

import (
	"fmt"
	"time"
)

// DigestRecord is the persisted form of a Digest observed by `lsproj check`.
// I/O error nonces are process-local and therefore not persisted.
type DigestRecord struct {
	Path      string    `json:"path"`
	Kind      string    `json:"kind"`
	Hash      string    `json:"hash,omitzero"`
	CheckedAt time.Time `json:"checked_at,omitzero"`
}

// NewDigestRecord captures a digest of the file at path.
func NewDigestRecord(path string, d Digest, at time.Time) DigestRecord {
	rec := DigestRecord{
		Path:      path,
		Kind:      d.Kind().String(),
		CheckedAt: at,
	}
	if h, ok := d.Hash(); ok {
		rec.Hash = fmt.Sprintf("%016x", h)
	}
	return rec
}

// Matches reports whether the record describes the same fingerprint as d.
// A record of a failed read never matches, nor does any digest of a failed read.
func (r DigestRecord) Matches(d Digest) bool {
	if d.Kind() == DigestIOError || r.Kind == DigestIOError.String() {
		return false
	}
	return r == NewDigestRecord(r.Path, d, r.CheckedAt)
}

// ChangeKind classifies a tracked file against the previous snapshot.
type ChangeKind string

const (
	// ChangeNew means the file was not in the previous snapshot.
	ChangeNew ChangeKind = "new"
	// ChangeChanged means the file digest differs from the previous snapshot.
	ChangeChanged ChangeKind = "changed"
	// ChangeUnchanged means the file digest matches the previous snapshot.
	ChangeUnchanged ChangeKind = "unchanged"
	// ChangeRemoved means the file was in the previous snapshot but is no longer found.
	ChangeRemoved ChangeKind = "removed"
)

// FileChange is one line of a `lsproj check` report.
type FileChange struct {
	Path   string
	Kind   ChangeKind
	Digest Digest
}
