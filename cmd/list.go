package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/jbookdl/jbookdl/cmd/common"
	"github.com/jbookdl/jbookdl/internal/manifest"
)

var lsFlags = []cli.Flag{
	cli.StringSliceFlag{
		Name:  "service, s",
		Usage: "list only the named service (repeatable: army, airforce, defensewide, summary)",
	},
	cli.StringFlag{
		Name:        "manifest, m",
		Usage:       "read the manifest from a YAML file instead of the built-in one",
		Destination: &manifestPath,
	},
}

func list(cctx *cli.Context) error {
	if cctx.Args().First() == "help" {
		return cli.ShowCommandHelp(cctx, cctx.Command.Name)
	}
	sources := manifest.Sources()
	if manifestPath != "" {
		var err error
		sources, err = manifest.Load(manifestPath)
		if err != nil {
			common.PrintRuntimeErr(cctx, "list", "load_manifest", err)
			return nil
		}
	}
	sources, err := manifest.Filter(sources, cctx.StringSlice("service"))
	if err != nil {
		return common.PrintErrWithCmdHelp(
			cctx,
			fmt.Errorf("%w (valid: army, airforce, defensewide, summary)", err),
		)
	}
	if manifest.EntryCount(sources) == 0 {
		fmt.Println("jbookdl: no documents found")
		return nil
	}

	fmt.Println("FY2026 budget document manifest:")
	var num int
	for _, s := range sources {
		fmt.Printf("\n%s (%d files):\n", s.Label, len(s.Entries))
		for _, e := range s.Entries {
			num++
			category := e.Category
			if category == "" {
				category = "-"
			}
			fmt.Printf("  %3d  %-28s  %s\n", num, category, e.FileName())
		}
	}
	fmt.Printf("\n%d documents in %d services\n", num, len(sources))
	return nil
}
