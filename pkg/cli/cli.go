package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/relfetch/pkg/cli/config"
	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/m-mizutani/relfetch/pkg/domain/types"
	"github.com/m-mizutani/relfetch/pkg/infra/actions"
	githubinfra "github.com/m-mizutani/relfetch/pkg/infra/github"
	"github.com/m-mizutani/relfetch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		githubCfg config.GitHub
		fetchCfg  config.Fetch
	)
	var logger *slog.Logger

	flags := append(loggerCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, fetchCfg.Flags()...)

	app := &cli.Command{
		Name:    types.AppName,
		Usage:   "Download GitHub release assets as a one-shot automation step",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ghClient, err := githubinfra.NewClient(githubCfg.Token, githubCfg.APIURL)
			if err != nil {
				return err
			}

			fetchUC := usecase.NewFetch(ghClient, actions.NewPublisher())

			req := &model.FetchRequest{
				Repo:          fetchCfg.Repo,
				Ambient:       actions.AmbientRepo(),
				Version:       fetchCfg.Version,
				Target:        fetchCfg.Target,
				File:          fetchCfg.File,
				Regex:         fetchCfg.Regex,
				OnlySourceZip: fetchCfg.OnlySourceZip,
			}

			return fetchUC.Fetch(ctx, req)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
