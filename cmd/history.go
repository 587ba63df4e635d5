package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/jbookdl/jbookdl/cmd/common"
	"github.com/jbookdl/jbookdl/internal/journal"
	"github.com/jbookdl/jbookdl/pkg/jbooklib"
)

var (
	historyLimit int
	historyRun   int64

	hsFlags = []cli.Flag{
		cli.IntFlag{
			Name:        "limit, n",
			Usage:       "show at most this many runs (default: 10)",
			Destination: &historyLimit,
		},
		cli.Int64Flag{
			Name:        "files, f",
			Usage:       "show the per-file outcomes of the given run id",
			Destination: &historyRun,
		},
	}
)

func history(cctx *cli.Context) error {
	if cctx.Args().First() == "help" {
		return cli.ShowCommandHelp(cctx, cctx.Command.Name)
	}
	path, err := journal.DefaultPath()
	if err != nil {
		common.PrintRuntimeErr(cctx, "history", "journal_path", err)
		return nil
	}
	jrnl, err := journal.Open(path)
	if err != nil {
		common.PrintRuntimeErr(cctx, "history", "open_journal", err)
		return nil
	}
	defer jrnl.Close()

	if historyRun > 0 {
		return historyFiles(cctx, jrnl, historyRun)
	}

	runs, err := jrnl.ListRuns(historyLimit)
	if err != nil {
		common.PrintRuntimeErr(cctx, "history", "list_runs", err)
		return nil
	}
	if len(runs) == 0 {
		fmt.Println("jbookdl: no recorded runs")
		return nil
	}
	fmt.Println("Here are your mirror runs:")
	fmt.Println()
	fmt.Println("| Run |      Started (UTC)   | Succeeded | Failed | Total |")
	fmt.Println("|-----|----------------------|-----------|--------|-------|")
	for _, r := range runs {
		started := "-"
		if !r.StartedAt.IsZero() {
			started = r.StartedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("| %3d | %20s | %9d | %6d | %5d |\n",
			r.ID, started, r.Succeeded, r.Failed, r.Total)
	}
	return nil
}

func historyFiles(cctx *cli.Context, jrnl *journal.Journal, runID int64) error {
	recs, err := jrnl.RunFiles(runID)
	if err != nil {
		common.PrintRuntimeErr(cctx, "history", "run_files", err)
		return nil
	}
	if len(recs) == 0 {
		fmt.Printf("jbookdl: no files recorded for run %d\n", runID)
		return nil
	}
	fmt.Printf("Files of run %d:\n", runID)
	for _, rec := range recs {
		status := "OK"
		msg := jbooklib.ContentSize(rec.Bytes).String()
		if rec.Status != journal.StatusOK {
			status = "FAIL"
			msg = rec.Reason
		}
		fmt.Printf("  [%-4s]  %-72s  %s\n", status, rec.Label, msg)
	}
	return nil
}
