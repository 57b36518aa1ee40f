// Package fetch downloads tool distributions and checksum files over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 10 * time.Minute
	maxAttempts       = 3
	initialBackoff    = time.Second
	userAgent         = "setupjs"
)

var _ ports.Downloader = (*Downloader)(nil)

// Downloader implements ports.Downloader with retries on transient failures.
type Downloader struct {
	httpClient *http.Client
	backoff    time.Duration
	tempDir    string
}

// NewDownloader creates a Downloader writing to the system temp directory.
func NewDownloader() *Downloader {
	return newDownloaderWithClient(&http.Client{Timeout: httpClientTimeout}, initialBackoff, "")
}

// newDownloaderWithClient creates a Downloader with a custom client (used for testing).
func newDownloaderWithClient(client *http.Client, backoff time.Duration, tempDir string) *Downloader {
	return &Downloader{
		httpClient: client,
		backoff:    backoff,
		tempDir:    tempDir,
	}
}

// Download stores the body of url in a temporary file and returns its path.
// The caller removes the file.
func (d *Downloader) Download(ctx context.Context, url string) (string, error) {
	var path string
	err := d.withRetry(ctx, url, func(body io.Reader) error {
		f, err := os.CreateTemp(d.tempDir, "setupjs-download-*")
		if err != nil {
			return err
		}
		if _, err := io.Copy(f, body); err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
			return err
		}
		if err := f.Close(); err != nil {
			_ = os.Remove(f.Name())
			return err
		}
		path = f.Name()
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// Fetch returns the body of url.
func (d *Downloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := d.withRetry(ctx, url, func(body io.Reader) error {
		var err error
		data, err = io.ReadAll(body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// withRetry issues GET url and hands a 200 body to consume.
// Network errors, 5xx and 429 responses are retried with doubling backoff.
func (d *Downloader) withRetry(ctx context.Context, url string, consume func(io.Reader) error) error {
	backoff := d.backoff
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		retry, err := d.attempt(ctx, url, consume)
		if err == nil {
			return nil
		}
		lastErr = zerr.With(err, "attempt", attempt)
		if !retry || attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return zerr.With(zerr.Wrap(ctx.Err(), domain.ErrDownloadFailed.Error()), "url", url)
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return zerr.With(lastErr, "url", url)
}

func (d *Downloader) attempt(ctx context.Context, url string, consume func(io.Reader) error) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "unexpected status"), "status_code", resp.StatusCode)
		transient := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return transient, statusErr
	}

	if err := consume(resp.Body); err != nil {
		return ctx.Err() == nil, zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	return false, nil
}
