package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub API configuration
type GitHub struct {
	Token  string
	APIURL string
}

// Flags returns CLI flags for GitHub configuration. The INPUT_* sources
// match the environment variables a CI runner supplies for step inputs.
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token",
			Usage:       "GitHub API token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("INPUT_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Alternate GitHub API base URL",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("INPUT_API-URL", "GITHUB_API_URL"),
		},
	}
}
