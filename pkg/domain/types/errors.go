package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures so callers can decide whether a failure is
// a user mistake, a platform lookup miss, or a transient download problem.
var (
	// TagConfig marks invalid user-supplied configuration (malformed repo,
	// bad pattern). Never retried.
	TagConfig = goerr.NewTag("config")

	// TagNotFound marks a 404-class release lookup failure.
	TagNotFound = goerr.NewTag("not_found")

	// TagAPI marks other platform API failures during release lookup.
	TagAPI = goerr.NewTag("api")

	// TagNoMatch marks an asset query that matched nothing.
	TagNoMatch = goerr.NewTag("no_match")

	// TagDownload marks a download attempt failure. Retried up to the
	// retry policy ceiling, fatal only after exhaustion.
	TagDownload = goerr.NewTag("download")
)
