// Package auth provides the password hashing primitives used by the
// credential service. Hashes are bcrypt digests with a per-call random salt.
package auth
