package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/jbookdl/jbookdl/cmd/common"
	"github.com/jbookdl/jbookdl/internal/journal"
)

var (
	forceFlush bool

	flsFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "force, f",
			Usage:       "use this flag to skip the confirmation prompt (default: false)",
			Destination: &forceFlush,
		},
	}
)

func flush(cctx *cli.Context) error {
	if !confirmFlush(forceFlush) {
		return nil
	}
	path, err := journal.DefaultPath()
	if err != nil {
		common.PrintRuntimeErr(cctx, "flush", "journal_path", err)
		return nil
	}
	jrnl, err := journal.Open(path)
	if err != nil {
		common.PrintRuntimeErr(cctx, "flush", "open_journal", err)
		return nil
	}
	defer jrnl.Close()
	if err := jrnl.Flush(); err != nil {
		common.PrintRuntimeErr(cctx, "flush", "flush", err)
		return nil
	}
	fmt.Println("Flushed all mirror run history!")
	return nil
}

func confirmFlush(force bool) bool {
	if force {
		return true
	}
	fmt.Print("This will delete all recorded run history. Continue? (y/N): ")
	var resp string
	_, _ = fmt.Scanln(&resp)
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}
