package fetch

import (
	"net/http"
	"time"
)

// NewDownloaderWithClient exposes newDownloaderWithClient for testing.
func NewDownloaderWithClient(client *http.Client, backoff time.Duration, tempDir string) *Downloader {
	return newDownloaderWithClient(client, backoff, tempDir)
}
