package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relfetch/pkg/domain/types"
)

// RepoRef identifies a source repository. Immutable once resolved.
type RepoRef struct {
	Owner string // Repository owner
	Name  string // Repository name
}

// String returns the "owner/name" form of the reference
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// IsEmpty reports whether the reference carries no repository
func (r RepoRef) IsEmpty() bool {
	return r.Owner == "" && r.Name == ""
}

// ResolveRepo derives the target repository from an explicit "owner/name"
// input, falling back to the ambient invocation context when the input is
// empty. Pure, no side effects.
func ResolveRepo(input string, ambient RepoRef) (RepoRef, error) {
	if input == "" {
		if ambient.IsEmpty() {
			return RepoRef{}, goerr.New("repository not specified and no ambient repository available",
				goerr.T(types.TagConfig))
		}
		return ambient, nil
	}

	owner, name, found := strings.Cut(input, "/")
	if !found || owner == "" || name == "" {
		return RepoRef{}, goerr.New("malformed repo",
			goerr.V("repo", input),
			goerr.T(types.TagConfig))
	}

	return RepoRef{Owner: owner, Name: name}, nil
}
