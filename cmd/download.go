package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"

	"github.com/jbookdl/jbookdl/cmd/common"
	"github.com/jbookdl/jbookdl/internal/config"
	"github.com/jbookdl/jbookdl/internal/journal"
	"github.com/jbookdl/jbookdl/internal/manifest"
	"github.com/jbookdl/jbookdl/internal/mirror"
	"github.com/jbookdl/jbookdl/pkg/jbooklib"
	"github.com/jbookdl/jbookdl/pkg/logger"
)

var (
	outputDir    string
	delayMs      int
	timeoutS     int
	userAgent    string
	manifestPath string
	configPath   string
	showProgress bool
	dryRun       bool
	noJournal    bool

	dlFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "output-dir, o",
			Usage:       "set the directory the mirrored tree is written to",
			Destination: &outputDir,
		},
		cli.IntFlag{
			Name:        "delay, D",
			Usage:       "set the pause between requests in milliseconds (0 disables pacing)",
			Destination: &delayMs,
		},
		cli.IntFlag{
			Name:        "timeout, t",
			Usage:       "set the per-request timeout in seconds",
			Destination: &timeoutS,
		},
		cli.StringFlag{
			Name:        "user-agent, A",
			Usage:       "set the user agent (chrome, firefox, edge, jbookdl or a literal string)",
			Destination: &userAgent,
		},
		cli.StringSliceFlag{
			Name:  "service, s",
			Usage: "mirror only the named service (repeatable: army, airforce, defensewide, summary)",
		},
		cli.StringFlag{
			Name:        "manifest, m",
			Usage:       "read the manifest from a YAML file instead of the built-in one",
			Destination: &manifestPath,
		},
		cli.StringFlag{
			Name:        "config, C",
			Usage:       "read settings from the given config file",
			Destination: &configPath,
		},
		cli.BoolFlag{
			Name:        "progress, P",
			Usage:       "show a progress bar instead of per-file result lines",
			Destination: &showProgress,
		},
		cli.BoolFlag{
			Name:        "dry-run, n",
			Usage:       "print planned URLs and destinations without downloading",
			Destination: &dryRun,
		},
		cli.BoolFlag{
			Name:        "no-journal, J",
			Usage:       "do not record this run in the run journal",
			Destination: &noJournal,
		},
	}
)

func download(cctx *cli.Context) error {
	if cctx.Args().First() == "help" {
		return cli.ShowCommandHelp(cctx, cctx.Command.Name)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		common.PrintRuntimeErr(cctx, "download", "load_config", err)
		return nil
	}
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if timeoutS == 0 {
		timeoutS = cfg.TimeoutS
	}
	if userAgent == "" {
		userAgent = cfg.UserAgent
	}
	services := cctx.StringSlice("service")
	if len(services) == 0 {
		services = cfg.Services
	}

	sources := manifest.Sources()
	if manifestPath != "" {
		sources, err = manifest.Load(manifestPath)
		if err != nil {
			common.PrintRuntimeErr(cctx, "download", "load_manifest", err)
			return nil
		}
	}
	sources, err = manifest.Filter(sources, services)
	if err != nil {
		return common.PrintErrWithCmdHelp(
			cctx,
			fmt.Errorf("%w (valid: army, airforce, defensewide, summary)", err),
		)
	}
	total := manifest.EntryCount(sources)
	if total == 0 {
		fmt.Println("jbookdl: nothing to do")
		return nil
	}

	if dryRun {
		printPlan(sources, outputDir, total)
		return nil
	}

	rule := strings.Repeat("=", 80)
	fmt.Println(rule)
	fmt.Println("FY2026 DoD Budget - Machine-Readable File Downloader")
	fmt.Println("Covers: Army, Air Force, Space Force, Defense-Wide, DoD Summary")
	fmt.Println("Note:   Navy is PDF-only and not included")
	fmt.Println(rule)

	log := logger.NewStandardLogger(os.Stderr)
	jrnl, runID := openJournal(log, total)
	if jrnl != nil {
		defer jrnl.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\njbookdl: received interrupt, finishing up...")
		cancel()
	}()

	var headers jbooklib.Headers
	if userAgent != "" {
		headers = jbooklib.Headers{{
			Key: jbooklib.USER_AGENT_KEY, Value: jbooklib.ResolveUserAgent(userAgent),
		}}
	}
	fetcher := jbooklib.NewFetcher(&http.Client{}, &jbooklib.FetcherOpts{
		Headers: headers,
		Timeout: time.Duration(timeoutS) * time.Second,
	})

	var (
		p   *mpb.Progress
		bar *mpb.Bar
	)
	if showProgress {
		p = mpb.New(mpb.WithOutput(os.Stderr))
		bar = common.InitMirrorBar(p, int64(total))
	}

	runner := &mirror.Runner{
		Fetcher:   fetcher,
		Log:       log,
		OutputDir: outputDir,
		Delay:     pacingDelay(cctx.IsSet("delay"), delayMs, cfg.DelayMs),
		OnSource: func(i, n int, s manifest.Source) {
			if !showProgress {
				fmt.Printf("\n[%d/%d] %s (%d files)...\n", i, n, s.Label, len(s.Entries))
			}
		},
		OnResult: func(fr mirror.FileResult) {
			if bar != nil {
				bar.Increment()
			} else {
				fmt.Println(fr.Line())
			}
			if jrnl == nil {
				return
			}
			if err := jrnl.RecordFile(fileRecord(runID, fr)); err != nil {
				log.Warning("journal write failed: %s", err)
				jrnl = nil
			}
		},
	}

	result, runErr := runner.Run(ctx, sources)
	if p != nil {
		if runErr != nil {
			bar.Abort(false)
		}
		p.Wait()
	}
	if jrnl != nil {
		if err := jrnl.FinishRun(runID, result.Succeeded, result.Failed); err != nil {
			log.Warning("journal write failed: %s", err)
		}
	}

	fmt.Println("\n" + rule)
	fmt.Print(result.String())
	if abs, err := filepath.Abs(outputDir); err == nil {
		fmt.Printf("Output directory: %s%c\n", abs, os.PathSeparator)
	}

	if runErr != nil || !result.IsSuccess() {
		return cli.NewExitError("", 1)
	}
	return nil
}

// pacingDelay merges the delay flag with the configured value. An
// explicit 0 disables pacing; an unset flag falls back to the config.
func pacingDelay(isSet bool, flagMs, cfgMs int) time.Duration {
	ms := flagMs
	if !isSet && ms == 0 {
		ms = cfgMs
	}
	if ms <= 0 {
		return -1
	}
	return time.Duration(ms) * time.Millisecond
}

func printPlan(sources []manifest.Source, outputDir string, total int) {
	for _, s := range sources {
		fmt.Printf("\n%s (%d files):\n", s.Label, len(s.Entries))
		for _, e := range s.Entries {
			fmt.Printf("  %s\n    -> %s\n", s.EntryURL(e), s.EntryPath(outputDir, e))
		}
	}
	fmt.Printf("\n%d files would be downloaded to %s\n", total, outputDir)
}

// openJournal opens the run journal and begins a run row. Any problem
// degrades to a warning: the mirror never fails because history could
// not be recorded.
func openJournal(log logger.Logger, total int) (*journal.Journal, int64) {
	if noJournal {
		return nil, 0
	}
	path, err := journal.DefaultPath()
	if err != nil {
		log.Warning("journal disabled: %s", err)
		return nil, 0
	}
	jrnl, err := journal.Open(path)
	if err != nil {
		log.Warning("journal disabled: %s", err)
		return nil, 0
	}
	runID, err := jrnl.BeginRun(total)
	if err != nil {
		log.Warning("journal disabled: %s", err)
		jrnl.Close()
		return nil, 0
	}
	return jrnl, runID
}

func fileRecord(runID int64, fr mirror.FileResult) journal.FileRecord {
	rec := journal.FileRecord{
		RunID:  runID,
		Label:  fr.Label,
		URL:    fr.URL,
		Status: journal.StatusOK,
		Bytes:  fr.Size,
	}
	if fr.Err != nil {
		rec.Status = journal.StatusFail
		rec.Reason = jbooklib.FailureReason(fr.Err)
	}
	return rec
}
