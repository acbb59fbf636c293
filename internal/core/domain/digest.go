package domain

import "fmt"

// DigestKind is the state a Digest describes.
type DigestKind uint8

const (
	// DigestOK means the file was read and Digest carries its content hash.
	DigestOK DigestKind = iota + 1
	// DigestFileNotFound means the file does not exist.
	DigestFileNotFound
	// DigestIOError means reading the file failed for a reason other than its absence.
	DigestIOError
)

// String returns the string representation of the DigestKind.
func (k DigestKind) String() string {
	switch k {
	case DigestOK:
		return "ok"
	case DigestFileNotFound:
		return "not-found"
	case DigestIOError:
		return "io-error"
	default:
		return "unknown"
	}
}

// Digest is an opaque fingerprint of one digestible file.
//
// Digests are passed through memoized queries as a means of cache busting: a query that
// depends on a file is recomputed whenever the file's digest changes. A Digest is one of
//  1. the file exists and has a specific content hash,
//  2. the file does not exist,
//  3. reading the file failed; every failure yields a new Digest that is unequal to
//     every other Digest, so a failed read always looks like a change.
//
// Digests are comparable with ==.
type Digest struct {
	kind  DigestKind
	value uint64
}

// OKDigest returns the digest of a file with the given content hash.
func OKDigest(hash uint64) Digest {
	return Digest{kind: DigestOK, value: hash}
}

// FileNotFoundDigest returns the digest of a missing file.
func FileNotFoundDigest() Digest {
	return Digest{kind: DigestFileNotFound}
}

// IOErrorDigest returns the digest of a failed read.
// The nonce must never have been used for another IOErrorDigest.
func IOErrorDigest(nonce uint64) Digest {
	return Digest{kind: DigestIOError, value: nonce}
}

// Kind returns the state the digest describes.
func (d Digest) Kind() DigestKind {
	return d.kind
}

// Hash returns the content hash. It is only meaningful for DigestOK.
func (d Digest) Hash() (uint64, bool) {
	return d.value, d.kind == DigestOK
}

// Equal reports whether two digests are the same fingerprint.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// String renders the digest for humans: a hex hash, "not-found" or "io-error#N".
func (d Digest) String() string {
	switch d.kind {
	case DigestOK:
		return fmt.Sprintf("%016x", d.value)
	case DigestIOError:
		return fmt.Sprintf("io-error#%d", d.value)
	default:
		return d.kind.String()
	}
}
