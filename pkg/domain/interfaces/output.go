package interfaces

import "github.com/m-mizutani/relfetch/pkg/domain/model"

// OutputPublisher exposes release metadata as step outputs for later
// automation steps. Pure side-effecting sink, no transformation.
type OutputPublisher interface {
	// PublishRelease publishes the release's tag name, display name and body
	PublishRelease(release *model.Release)
}
