package github

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/m-mizutani/relfetch/pkg/domain/types"
)

type client struct {
	gh         *github.Client
	httpClient *http.Client
	token      string
}

// NewClient creates a GitHub client authenticated with a bearer token.
// An empty token yields unauthenticated requests. A non-empty apiBaseURL
// points the client at an alternate API base (e.g. GitHub Enterprise).
func NewClient(token, apiBaseURL string) (interfaces.GitHubClient, error) {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}

	if apiBaseURL != "" {
		base, err := url.Parse(apiBaseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid API base URL",
				goerr.V("url", apiBaseURL),
				goerr.T(types.TagConfig))
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	return &client{
		gh:         gh,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		token:      token,
	}, nil
}

// ResolveRelease fetches the release selected by the version spec. The
// lookup is issued once; a 404-class failure becomes a not-found error
// and any other failure a generic API error.
func (c *client) ResolveRelease(ctx context.Context, repo model.RepoRef, version model.VersionSpec) (*model.Release, error) {
	var (
		rel  *github.RepositoryRelease
		resp *github.Response
		err  error
	)

	switch version.Kind {
	case model.VersionTag:
		rel, resp, err = c.gh.Repositories.GetReleaseByTag(ctx, repo.Owner, repo.Name, version.Tag)
	case model.VersionID:
		rel, resp, err = c.gh.Repositories.GetRelease(ctx, repo.Owner, repo.Name, version.ID)
	default:
		rel, resp, err = c.gh.Repositories.GetLatestRelease(ctx, repo.Owner, repo.Name)
	}

	if err != nil {
		opts := []goerr.Option{
			goerr.V("repo", repo.String()),
			goerr.V("version", version.String()),
		}
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			opts = append(opts, goerr.T(types.TagNotFound))
			return nil, goerr.Wrap(err, "release not found", opts...)
		}
		opts = append(opts, goerr.T(types.TagAPI))
		return nil, goerr.Wrap(err, "failed to resolve release", opts...)
	}

	release := &model.Release{
		TagName:    rel.GetTagName(),
		Name:       rel.GetName(),
		Body:       rel.GetBody(),
		ArchiveURL: rel.GetZipballURL(),
	}
	for _, a := range rel.Assets {
		release.Assets = append(release.Assets, model.Asset{
			ID:   a.GetID(),
			Name: a.GetName(),
		})
	}

	return release, nil
}

// NewAssetRequest builds a request against the asset download endpoint.
// The accept header forces the binary stream media type so the API serves
// the asset content instead of its metadata.
func (c *client) NewAssetRequest(ctx context.Context, repo model.RepoRef, assetID int64) (*http.Request, error) {
	u := c.gh.BaseURL.JoinPath("repos", repo.Owner, repo.Name, "releases", "assets", strconv.FormatInt(assetID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build asset download request",
			goerr.V("url", u.String()))
	}

	req.Header.Set("Accept", "application/octet-stream")
	c.authorize(req)
	return req, nil
}

// NewArchiveRequest builds a request issued directly against a release
// source archive URL
func (c *client) NewArchiveRequest(ctx context.Context, archiveURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build archive download request",
			goerr.V("url", archiveURL))
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	c.authorize(req)
	return req, nil
}

// Do performs a single HTTP exchange
func (c *client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
