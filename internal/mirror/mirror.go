// Package mirror runs the sequential fetch loop over a manifest,
// pacing requests with a fixed delay and tallying outcomes.
package mirror

import (
	"context"
	"time"

	"github.com/jbookdl/jbookdl/internal/manifest"
	"github.com/jbookdl/jbookdl/pkg/logger"
)

// DEF_DELAY is the pause between consecutive requests; the portals are
// shared government infrastructure and the manifest is fetched politely.
const DEF_DELAY = 300 * time.Millisecond

// Fetcher downloads one URL to a local file. Satisfied by
// *jbooklib.Fetcher; tests substitute mocks.
type Fetcher interface {
	FetchToFile(ctx context.Context, url, dest string) (int64, error)
}

// Runner drives one mirror run. Requests are strictly sequential: one
// in flight at a time, in manifest order, Delay apart.
type Runner struct {
	// Fetcher performs the per-document requests (required).
	Fetcher Fetcher
	// Log receives engine-level messages. Defaults to NopLogger.
	Log logger.Logger
	// OutputDir is the root of the local directory tree.
	OutputDir string
	// Delay is the pause between consecutive requests.
	// Defaults to DEF_DELAY; negative disables pacing.
	Delay time.Duration
	// OnSource, if set, is called before each source's batch with its
	// 1-based position and the source.
	OnSource func(index, count int, s manifest.Source)
	// OnResult, if set, is called after every file with its outcome.
	OnResult func(FileResult)

	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Run mirrors all sources and returns the tally. A cancelled context
// stops the loop between requests; the partial tally is still returned
// together with the context's error.
func (r *Runner) Run(ctx context.Context, sources []manifest.Source) (*RunResult, error) {
	log := r.Log
	if log == nil {
		log = logger.NewNopLogger()
	}
	delay := r.Delay
	if delay == 0 {
		delay = DEF_DELAY
	}
	sleep := r.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	result := NewRunResult(manifest.EntryCount(sources))
	first := true
	for i, src := range sources {
		if r.OnSource != nil {
			r.OnSource(i+1, len(sources), src)
		}
		for _, entry := range src.Entries {
			if !first && delay > 0 {
				if err := sleep(ctx, delay); err != nil {
					log.Warning("run interrupted after %d/%d files", result.Processed(), result.Total)
					return result, err
				}
			}
			first = false

			if err := ctx.Err(); err != nil {
				log.Warning("run interrupted after %d/%d files", result.Processed(), result.Total)
				return result, err
			}

			fr := FileResult{
				Label: src.EntryLabel(entry),
				URL:   src.EntryURL(entry),
				Path:  src.EntryPath(r.OutputDir, entry),
			}
			fr.Size, fr.Err = r.Fetcher.FetchToFile(ctx, fr.URL, fr.Path)
			result.Add(fr)
			if r.OnResult != nil {
				r.OnResult(fr)
			}
		}
	}
	return result, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
