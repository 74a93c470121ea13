package interfaces

import (
	"context"

	"github.com/m-mizutani/relfetch/pkg/domain/model"
)

// FetchUseCase defines the release fetch operation
type FetchUseCase interface {
	// Fetch resolves the requested release and downloads the selected
	// assets (or the source archive) to local paths
	Fetch(ctx context.Context, req *model.FetchRequest) error
}
