package actions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/m-mizutani/relfetch/pkg/infra/actions"
)

func TestPublisher_PublishRelease(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	gt.NoError(t, os.WriteFile(outputFile, nil, 0644))
	t.Setenv("GITHUB_OUTPUT", outputFile)

	publisher := actions.NewPublisher()
	publisher.PublishRelease(&model.Release{
		TagName: "v1.0.0",
		Name:    "Release 1.0.0",
		Body:    "first line\nsecond line",
	})

	content, err := os.ReadFile(outputFile)
	gt.NoError(t, err)

	// Each value is written as a named output; the multiline body is
	// encoded by the actions library
	gt.String(t, string(content)).Contains("version<<")
	gt.String(t, string(content)).Contains("v1.0.0")
	gt.String(t, string(content)).Contains("name<<")
	gt.String(t, string(content)).Contains("Release 1.0.0")
	gt.String(t, string(content)).Contains("body<<")
	gt.String(t, string(content)).Contains("first line\nsecond line")
}

func TestAmbientRepo(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "octocat/hello-world")

	repo := actions.AmbientRepo()
	gt.Value(t, repo).Equal(model.RepoRef{Owner: "octocat", Name: "hello-world"})
}

func TestAmbientRepo_Missing(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")

	repo := actions.AmbientRepo()
	gt.Value(t, repo.IsEmpty()).Equal(true)
}
