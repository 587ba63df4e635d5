package cmd

import "time"

const (
	DEF_OUTPUT_DIR = "fy2026_budget"
	DEF_DELAY      = 300 * time.Millisecond
	DEF_TIMEOUT    = time.Second * 120
)

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`

const DESCRIPTION = `
Jbookdl mirrors the machine-readable FY2026 DoD budget justification
documents (XML, JSON, Excel) published by the Army, Air Force and
Space Force, Defense-Wide, and DoD Summary portals into a local
directory tree. Requests are made one at a time with a polite fixed
delay. Navy is PDF-only and not included.
`

const (
	DownloadDescription = `The download command fetches every document in the manifest
and saves it under <output-dir>/<Service>/<Category>/. Files
are requested sequentially with a fixed delay in between, and
a summary with any failures is printed at the end.

Example:
        jbookdl download
					OR
        jbookdl download -s army -s airforce

`
	ListDescription = `The list command prints the document manifest: one line per
document with its service, category, and file name. Combine
with -service to inspect a single portal.

Example:
        jbookdl list -s defensewide

`
	ExportDescription = `The export command writes the built-in manifest as YAML, to
stdout or to a file. The exported document can be edited and
fed back with "jbookdl download -manifest <file>".

Example:
        jbookdl export -output manifest.yaml

`
	HistoryDescription = `The history command displays recent mirror runs recorded in
the run journal, newest first. Use -files with a run id to
show that run's per-file outcomes.

Example:
        jbookdl history
					OR
        jbookdl history -files 3

`
	FlushDescription = `The flush command deletes the recorded mirror run history
for the current user. Downloaded documents are not touched.

Example:
        jbookdl flush

`
)
