package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/m-mizutani/relfetch/pkg/domain/types"
)

type fetchUseCase struct {
	client     interfaces.GitHubClient
	outputs    interfaces.OutputPublisher
	downloader *Downloader
}

// Option configures the fetch use case
type Option func(*fetchUseCase)

// WithRetryPolicy overrides the default download retry policy
func WithRetryPolicy(policy model.RetryPolicy) Option {
	return func(uc *fetchUseCase) {
		uc.downloader = NewDownloader(uc.client, policy)
	}
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(client interfaces.GitHubClient, outputs interfaces.OutputPublisher, opts ...Option) interfaces.FetchUseCase {
	uc := &fetchUseCase{
		client:     client,
		outputs:    outputs,
		downloader: NewDownloader(client, model.DefaultRetryPolicy()),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Fetch resolves the requested release and downloads the selected assets,
// or the release source archive when OnlySourceZip is set. Downloads run
// sequentially; the first unrecovered failure aborts the run.
func (uc *fetchUseCase) Fetch(ctx context.Context, req *model.FetchRequest) error {
	logger := ctxlog.From(ctx)

	repo, err := model.ResolveRepo(req.Repo, req.Ambient)
	if err != nil {
		return err
	}

	version := model.ParseVersion(req.Version)

	logger.Info("Resolving release",
		"repo", repo.String(),
		"version", version.String(),
	)

	release, err := uc.client.ResolveRelease(ctx, repo, version)
	if err != nil {
		return err
	}

	logger.Info("Resolved release",
		"tag_name", release.TagName,
		"name", release.Name,
		"assets", len(release.Assets),
	)

	if req.OnlySourceZip {
		return uc.fetchArchive(ctx, req, release)
	}
	return uc.fetchAssets(ctx, req, repo, release)
}

// fetchArchive downloads the release source archive. Outputs are
// published before the download so they stay available to later steps
// even when the download fails; the failure itself still aborts the run.
func (uc *fetchUseCase) fetchArchive(ctx context.Context, req *model.FetchRequest, release *model.Release) error {
	uc.outputs.PublishRelease(release)

	httpReq, err := uc.client.NewArchiveRequest(ctx, release.ArchiveURL)
	if err != nil {
		return err
	}

	outPath := req.Target + req.File + ".zip"
	ctxlog.From(ctx).Info("Downloading source archive",
		"url", release.ArchiveURL,
		"path", outPath,
	)

	return uc.downloader.Download(ctx, httpReq, outPath)
}

// fetchAssets downloads every asset matching the file query, one at a
// time, then publishes the release outputs
func (uc *fetchUseCase) fetchAssets(ctx context.Context, req *model.FetchRequest, repo model.RepoRef, release *model.Release) error {
	logger := ctxlog.From(ctx)

	matched, err := MatchAssets(req.File, req.Regex, release.Assets)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return goerr.New("no assets match",
			goerr.V("file", req.File),
			goerr.V("regex", req.Regex),
			goerr.V("tag_name", release.TagName),
			goerr.T(types.TagNoMatch))
	}

	for _, asset := range matched {
		httpReq, err := uc.client.NewAssetRequest(ctx, repo, asset.ID)
		if err != nil {
			return err
		}

		outPath := uc.outputPath(req, asset)
		logger.Info("Downloading asset",
			"asset", asset.Name,
			"asset_id", asset.ID,
			"path", outPath,
		)

		if err := uc.downloader.Download(ctx, httpReq, outPath); err != nil {
			return err
		}
	}

	uc.outputs.PublishRelease(release)
	return nil
}

// outputPath computes where an asset is written. Exact mode writes to the
// fixed target (the asset's own name when target is empty); pattern mode
// treats target as a prefix so multiple matches produce distinct files.
func (uc *fetchUseCase) outputPath(req *model.FetchRequest, asset model.Asset) string {
	if req.Regex {
		return req.Target + asset.Name
	}
	if req.Target == "" {
		return asset.Name
	}
	return req.Target
}
