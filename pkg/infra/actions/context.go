package actions

import (
	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/sethvargo/go-githubactions"
)

// AmbientRepo returns the repository of the ambient invocation context
// (the repository the automation step runs in). A zero RepoRef is
// returned when the runner context does not carry one; the caller decides
// whether that is fatal.
func AmbientRepo() model.RepoRef {
	gctx, err := githubactions.New().Context()
	if err != nil {
		return model.RepoRef{}
	}

	owner, name := gctx.Repo()
	return model.RepoRef{Owner: owner, Name: name}
}
