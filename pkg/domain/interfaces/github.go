package interfaces

import (
	"context"
	"net/http"

	"github.com/m-mizutani/relfetch/pkg/domain/model"
)

// GitHubClient defines operations for interacting with the GitHub API.
// It covers release lookup, download request construction, and the raw
// HTTP exchange so the core can be tested without network access.
type GitHubClient interface {
	// ResolveRelease fetches the release selected by the version spec.
	// Lookup failures are fatal and never retried.
	ResolveRelease(ctx context.Context, repo model.RepoRef, version model.VersionSpec) (*model.Release, error)

	// NewAssetRequest builds an authenticated request against the asset
	// download endpoint for the given asset identifier
	NewAssetRequest(ctx context.Context, repo model.RepoRef, assetID int64) (*http.Request, error)

	// NewArchiveRequest builds an authenticated request against a release
	// source archive URL
	NewArchiveRequest(ctx context.Context, archiveURL string) (*http.Request, error)

	// Do performs a single HTTP exchange
	Do(req *http.Request) (*http.Response, error)
}
