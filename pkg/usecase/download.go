package usecase

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/relfetch/pkg/domain/model"
	"github.com/m-mizutani/relfetch/pkg/domain/types"
)

// Cap on the response body slice kept for diagnostic warnings
const maxDiagnosticBody = 64 << 10

// Downloader performs a single logical download with bounded retry: it
// executes the prepared request, and on success persists the full
// response body to the output path.
type Downloader struct {
	client interfaces.GitHubClient
	policy model.RetryPolicy
}

// NewDownloader creates a Downloader using the given retry policy
func NewDownloader(client interfaces.GitHubClient, policy model.RetryPolicy) *Downloader {
	return &Downloader{
		client: client,
		policy: policy,
	}
}

// Download attempts the exchange up to the policy ceiling, sleeping
// before each retry with a delay that starts at MinDelay and doubles.
// Each retry re-issues the full request and re-downloads the full body.
// On success the output path's parent directories are created and the
// file is written, overwriting any existing file.
func (d *Downloader) Download(ctx context.Context, req *http.Request, outPath string) error {
	logger := ctxlog.From(ctx)

	var lastErr error
	delay := d.policy.MinDelay

	for attempt := 1; attempt <= d.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return goerr.Wrap(ctx.Err(), "download cancelled",
					goerr.V("url", req.URL.String()),
					goerr.T(types.TagDownload))
			case <-time.After(delay):
			}
			delay *= 2
		}

		body, err := d.attempt(req)
		if err != nil {
			logger.Warn("download attempt failed",
				"url", req.URL.String(),
				"attempt", attempt,
				"max_attempts", d.policy.MaxAttempts,
				"error", err,
			)
			lastErr = err
			continue
		}

		return persist(outPath, body)
	}

	return goerr.Wrap(lastErr, "download failed after all attempts",
		goerr.V("url", req.URL.String()),
		goerr.V("attempts", d.policy.MaxAttempts),
		goerr.T(types.TagDownload))
}

// attempt performs one HTTP exchange and reads the full body. A non-2xx
// status reads a bounded slice of the body so the warning log carries the
// platform's diagnostic message.
func (d *Downloader) attempt(req *http.Request) ([]byte, error) {
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request failed", goerr.T(types.TagDownload))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnosticBody))
		return nil, goerr.New("unexpected response status",
			goerr.V("status", resp.Status),
			goerr.V("body", string(diag)),
			goerr.T(types.TagDownload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.T(types.TagDownload))
	}

	return body, nil
}

// persist writes the body to outPath, creating missing parent directories
func persist(outPath string, body []byte) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to create output directory",
				goerr.V("dir", dir))
		}
	}

	if err := os.WriteFile(outPath, body, 0644); err != nil {
		return goerr.Wrap(err, "failed to write output file",
			goerr.V("path", outPath))
	}

	return nil
}
