package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/jbookdl/jbookdl/cmd/common"
)

// BuildArgs carries build-time metadata injected through ldflags.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var currentBuildArgs BuildArgs

// Execute runs the jbookdl CLI with the given process arguments.
func Execute(args []string, bArgs BuildArgs) error {
	currentBuildArgs = bArgs
	common.VersionCmdStr = fmt.Sprintf(
		"jbookdl %s-%s (%s/%s) built %s commit %s",
		bArgs.Version, bArgs.BuildType,
		runtime.GOOS, runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	app := cli.App{
		Name:                  "jbookdl",
		HelpName:              "jbookdl",
		Usage:                 "FY2026 DoD budget J-Book mirror.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "jbookdl <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "download",
				Aliases:                []string{"d"},
				Usage:                  "mirror the budget document manifest",
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				OnUsageError:           common.UsageErrorCallback,
				Action:                 download,
				Flags:                  dlFlags,
				UseShortOptionHandling: true,
				Description:            DownloadDescription,
			},
			{
				Name:                   "list",
				Aliases:                []string{"l"},
				Usage:                  "display the document manifest",
				Action:                 list,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ListDescription,
				UseShortOptionHandling: true,
				Flags:                  lsFlags,
			},
			{
				Name:                   "export",
				Aliases:                []string{"e"},
				Usage:                  "write the built-in manifest as YAML",
				Action:                 export,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ExportDescription,
				UseShortOptionHandling: true,
				Flags:                  exFlags,
			},
			{
				Name:                   "history",
				Usage:                  "display past mirror runs",
				Action:                 history,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            HistoryDescription,
				UseShortOptionHandling: true,
				Flags:                  hsFlags,
			},
			{
				Name:                   "flush",
				Aliases:                []string{"c"},
				Usage:                  "flush the mirror run history",
				Description:            FlushDescription,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Action:                 flush,
				UseShortOptionHandling: true,
				Flags:                  flsFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of jbookdl",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 download,
		Flags:                  dlFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	return app.Run(args)
}
