package model

import (
	"strconv"
	"strings"
)

// VersionKind discriminates the three forms a version descriptor can take
type VersionKind int

const (
	// VersionLatest selects the most recent published release
	VersionLatest VersionKind = iota
	// VersionTag selects the release whose tag matches exactly
	VersionTag
	// VersionID selects a release by its numeric identifier
	VersionID
)

const tagPrefix = "tags/"

// VersionSpec is a parsed version descriptor. Parsed once per run.
type VersionSpec struct {
	Kind VersionKind
	Tag  string // set when Kind is VersionTag
	ID   int64  // set when Kind is VersionID
}

// ParseVersion parses a user-supplied version descriptor. An empty
// descriptor means "latest". A descriptor with the "tags/" prefix selects
// by exact tag. Anything else is treated as a numeric release identifier,
// truncated to an integer; a non-numeric descriptor is NOT pre-validated
// here, it maps to an identifier of -1 so the platform lookup fails and
// that failure is surfaced to the caller.
func ParseVersion(descriptor string) VersionSpec {
	if descriptor == "" || descriptor == "latest" {
		return VersionSpec{Kind: VersionLatest}
	}

	if tag, ok := strings.CutPrefix(descriptor, tagPrefix); ok {
		return VersionSpec{Kind: VersionTag, Tag: tag}
	}

	id := int64(-1)
	if f, err := strconv.ParseFloat(descriptor, 64); err == nil {
		id = int64(f)
	}
	return VersionSpec{Kind: VersionID, ID: id}
}

// String renders the descriptor for logs and error context
func (v VersionSpec) String() string {
	switch v.Kind {
	case VersionTag:
		return tagPrefix + v.Tag
	case VersionID:
		return strconv.FormatInt(v.ID, 10)
	default:
		return "latest"
	}
}
