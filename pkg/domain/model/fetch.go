package model

import "time"

// FetchRequest bundles the step inputs for a single run
type FetchRequest struct {
	Repo          string  // Explicit "owner/name", empty to use Ambient
	Ambient       RepoRef // Repository of the ambient invocation context
	Version       string  // Version descriptor ("latest", "tags/<tag>", numeric id)
	Target        string  // Output path (exact mode) or prefix (pattern / archive mode)
	File          string  // Asset name or pattern
	Regex         bool    // Treat File as a regular expression
	OnlySourceZip bool    // Download the release source archive instead of assets
}

// RetryPolicy bounds download retry behavior. Applied uniformly to every
// download in a run.
type RetryPolicy struct {
	MaxAttempts int           // Ceiling on attempts per download
	MinDelay    time.Duration // Delay before the first retry, doubled each retry
}

// DefaultRetryPolicy returns the fixed policy used in production runs
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		MinDelay:    time.Second,
	}
}
