package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// rangeChars are the characters that mark a semver range instead of a pinned version.
const rangeChars = "~^<>=*xX"

// ValidateAbsoluteVersion checks that v is an exact major.minor.patch version.
// Ranges, wildcards and partial versions are rejected with ErrNotAbsoluteVersion.
func ValidateAbsoluteVersion(v string) error {
	if v == "" || strings.ContainsAny(v, rangeChars) || strings.ContainsAny(v, " |") {
		return ErrNotAbsoluteVersion
	}
	if _, err := semver.StrictNewVersion(v); err != nil {
		return zerr.Wrap(ErrNotAbsoluteVersion, err.Error())
	}
	return nil
}

// IsAbsoluteVersion reports whether v passes ValidateAbsoluteVersion.
func IsAbsoluteVersion(v string) bool {
	return ValidateAbsoluteVersion(v) == nil
}

// MajorVersion returns the major component of an absolute version, or 0 when v does not parse.
func MajorVersion(v string) uint64 {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return 0
	}
	return parsed.Major()
}
