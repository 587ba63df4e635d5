package jbooklib

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

const (
	// DEF_TIMEOUT bounds a single document request end to end.
	DEF_TIMEOUT = 120 * time.Second

	dirPerm  = 0755
	filePerm = 0644
)

// Fetcher performs single blocking GET requests with a browser-like
// header set and writes response bodies verbatim to a filesystem.
type Fetcher struct {
	client  *http.Client
	headers Headers
	fs      afero.Fs
}

// Optional fields of fetcher
type FetcherOpts struct {
	// Headers are sent with every request. Keys not provided
	// explicitly are filled from DefaultHeaders.
	Headers Headers
	// Timeout bounds each request. Defaults to DEF_TIMEOUT.
	Timeout time.Duration
	// Fs receives downloaded files. Defaults to the OS filesystem.
	Fs afero.Fs
}

// NewFetcher creates a fetcher with provided arguments. A nil client
// gets a fresh http.Client; its timeout is set from opts unless the
// caller configured one already.
func NewFetcher(client *http.Client, opts *FetcherOpts) *Fetcher {
	if opts == nil {
		opts = &FetcherOpts{}
	}
	if client == nil {
		client = &http.Client{}
	}
	if client.Timeout == 0 {
		if opts.Timeout > 0 {
			client.Timeout = opts.Timeout
		} else {
			client.Timeout = DEF_TIMEOUT
		}
	}
	headers := opts.Headers
	for _, h := range DefaultHeaders() {
		headers.InitOrUpdate(h.Key, h.Value)
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Fetcher{
		client:  client,
		headers: headers,
		fs:      fs,
	}
}

// Fetch performs one GET request and returns the full response body.
// Responses with status 400 or above yield a *StatusError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (data []byte, err error) {
	if url == "" {
		err = ErrNoURL
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}
	f.headers.Set(req.Header)
	resp, err := f.client.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		err = &StatusError{Code: resp.StatusCode}
		return
	}
	data, err = io.ReadAll(resp.Body)
	return
}

// FetchToFile downloads url and writes the body to dest, creating parent
// directories as needed. The body is read fully before the destination
// file is created, so a failed request leaves no partial file behind.
// Returns the number of bytes written.
func (f *Fetcher) FetchToFile(ctx context.Context, url, dest string) (n int64, err error) {
	data, err := f.Fetch(ctx, url)
	if err != nil {
		return
	}
	if err = f.fs.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return
	}
	if err = afero.WriteFile(f.fs, dest, data, filePerm); err != nil {
		return
	}
	n = int64(len(data))
	return
}
