// Package id generates identifiers for the catalog core.
package id

import (
	"fmt"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate creates a prefixed unique ID using NanoID
// Format: prefix-nanoid (e.g., "notice-V1StGXR8_Z5jdHi6B-myT").
//
// NanoIDs are URL-friendly, compact (21 characters vs UUID's 36),
// and use a larger alphabet for better entropy per character.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use this only when you're certain the system entropy is available,
// or when failure should crash the program (e.g., during initialization).
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// NewUserRecordID creates an id for a user-authored catalog record:
// the fixed user namespace token plus the creation timestamp in
// milliseconds. The namespace keeps user ids disjoint from remote and
// seed ids without a coordinator; two creations within the same
// millisecond colliding is an accepted low-probability risk.
func NewUserRecordID(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.UnixMilli(), 10)
}
