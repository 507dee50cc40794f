// Package id generates the public identifiers used for loans, investments,
// repayments and user profiles: 32 lowercase hex characters backed by 16
// random bytes.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

const rawLen = 16

var reID = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns a fresh 32-char lowercase hex id.
func NewID32() string {
	var b [rawLen]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Valid reports whether s has the exact shape NewID32 produces.
func Valid(s string) bool { return reID.MatchString(s) }
