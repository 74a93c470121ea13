package actions

import (
	"github.com/m-mizutani/relfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/sethvargo/go-githubactions"
)

type publisher struct {
	action *githubactions.Action
}

// NewPublisher creates an OutputPublisher backed by the runner's step
// output file. Options are passed through for tests.
func NewPublisher(opts ...githubactions.Option) interfaces.OutputPublisher {
	return &publisher{
		action: githubactions.New(opts...),
	}
}

// PublishRelease publishes the release's tag name, display name and body.
// The body can span multiple lines; the output encoding is handled by the
// actions library.
func (p *publisher) PublishRelease(release *model.Release) {
	p.action.SetOutput("version", release.TagName)
	p.action.SetOutput("name", release.Name)
	p.action.SetOutput("body", release.Body)
}
