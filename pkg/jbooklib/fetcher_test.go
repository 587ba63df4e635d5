package jbooklib

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func newTestFetcher(fs afero.Fs) *Fetcher {
	return NewFetcher(&http.Client{}, &FetcherOpts{Fs: fs})
}

func TestFetcher_FetchToFile(t *testing.T) {
	body := []byte(`<exhibit id="OP-5"/>`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	f := newTestFetcher(fs)

	n, err := f.FetchToFile(context.Background(), srv.URL+"/doc.xml", "out/Army/rdte/doc.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != int64(len(body)) {
		t.Errorf("wrote %d bytes, want %d", n, len(body))
	}
	got, err := afero.ReadFile(fs, "out/Army/rdte/doc.xml")
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("saved %q, want %q", got, body)
	}
}

func TestFetcher_SendsBrowserHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	f := newTestFetcher(afero.NewMemMapFs())
	if _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != DEF_USER_AGENT {
		t.Errorf("User-Agent = %q, want %q", gotUA, DEF_USER_AGENT)
	}
	if gotAccept != "*/*" {
		t.Errorf("Accept = %q, want */*", gotAccept)
	}
}

func TestFetcher_HeaderOverride(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := NewFetcher(&http.Client{}, &FetcherOpts{
		Headers: Headers{{USER_AGENT_KEY, "jbookdl/1.0"}},
		Fs:      afero.NewMemMapFs(),
	})
	if _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != "jbookdl/1.0" {
		t.Errorf("User-Agent = %q, want override", gotUA)
	}
}

func TestFetcher_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fs := afero.NewMemMapFs()
	f := newTestFetcher(fs)

	_, err := f.FetchToFile(context.Background(), srv.URL+"/missing.json", "out/missing.json")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("want *StatusError 404, got %v", err)
	}
	if FailureReason(err) != "HTTP 404" {
		t.Errorf("FailureReason = %q, want HTTP 404", FailureReason(err))
	}

	// failed request must not leave a file behind
	if ok, _ := afero.Exists(fs, "out/missing.json"); ok {
		t.Error("destination file created despite failure")
	}
}

func TestFetcher_NoURL(t *testing.T) {
	f := newTestFetcher(afero.NewMemMapFs())
	if _, err := f.Fetch(context.Background(), ""); !errors.Is(err, ErrNoURL) {
		t.Errorf("want ErrNoURL, got %v", err)
	}
}

func TestFetcher_ContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	f := newTestFetcher(afero.NewMemMapFs())
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if _, err := f.Fetch(ctx, srv.URL); err == nil {
		t.Fatal("want error after context cancel, got nil")
	}
}

func TestNewFetcher_Defaults(t *testing.T) {
	f := NewFetcher(nil, nil)
	if f.client.Timeout != DEF_TIMEOUT {
		t.Errorf("timeout = %v, want %v", f.client.Timeout, DEF_TIMEOUT)
	}
	if _, ok := f.headers.Get(USER_AGENT_KEY); !ok {
		t.Error("default headers missing User-Agent")
	}
}
