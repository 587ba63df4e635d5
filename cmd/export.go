package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/jbookdl/jbookdl/cmd/common"
	"github.com/jbookdl/jbookdl/internal/manifest"
)

var (
	exportPath string

	exFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "write the manifest to this file instead of stdout",
			Destination: &exportPath,
		},
		cli.StringSliceFlag{
			Name:  "service, s",
			Usage: "export only the named service (repeatable: army, airforce, defensewide, summary)",
		},
	}
)

func export(cctx *cli.Context) error {
	if cctx.Args().First() == "help" {
		return cli.ShowCommandHelp(cctx, cctx.Command.Name)
	}
	sources, err := manifest.Filter(manifest.Sources(), cctx.StringSlice("service"))
	if err != nil {
		return common.PrintErrWithCmdHelp(
			cctx,
			fmt.Errorf("%w (valid: army, airforce, defensewide, summary)", err),
		)
	}

	w := os.Stdout
	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			common.PrintRuntimeErr(cctx, "export", "create_file", err)
			return nil
		}
		defer f.Close()
		w = f
	}
	if err := manifest.Write(w, sources); err != nil {
		common.PrintRuntimeErr(cctx, "export", "write_manifest", err)
		return nil
	}
	if exportPath != "" {
		fmt.Printf("Wrote %d documents to %s\n", manifest.EntryCount(sources), exportPath)
	}
	return nil
}
