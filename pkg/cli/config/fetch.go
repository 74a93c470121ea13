package config

import "github.com/urfave/cli/v3"

// Fetch holds the release selection and download configuration
type Fetch struct {
	Repo          string
	Version       string
	Target        string
	File          string
	Regex         bool
	OnlySourceZip bool
}

// Flags returns CLI flags for fetch configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository as owner/name (defaults to the current repository)",
			Destination: &c.Repo,
			Sources:     cli.EnvVars("INPUT_REPO"),
		},
		&cli.StringFlag{
			Name:        "version",
			Usage:       "Release to fetch: latest, tags/<tag>, or a release id",
			Value:       "latest",
			Destination: &c.Version,
			Sources:     cli.EnvVars("INPUT_VERSION"),
		},
		&cli.StringFlag{
			Name:        "target",
			Usage:       "Output path, or path prefix in regex mode",
			Destination: &c.Target,
			Sources:     cli.EnvVars("INPUT_TARGET"),
		},
		&cli.StringFlag{
			Name:        "file",
			Usage:       "Asset name, or regular expression with --regex",
			Required:    true,
			Destination: &c.File,
			Sources:     cli.EnvVars("INPUT_FILE"),
		},
		&cli.BoolFlag{
			Name:        "regex",
			Usage:       "Treat file as a regular expression",
			Value:       false,
			Destination: &c.Regex,
			Sources:     cli.EnvVars("INPUT_REGEX"),
		},
		&cli.BoolFlag{
			Name:        "only-source-zip",
			Usage:       "Download the release source archive instead of assets",
			Value:       false,
			Destination: &c.OnlySourceZip,
			Sources:     cli.EnvVars("INPUT_ONLY-SOURCE-ZIP"),
		},
	}
}
