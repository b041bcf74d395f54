package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/oasdoc/oasdoc/internal/cli/cl"
	"github.com/oasdoc/oasdoc/internal/cli/format"
	"github.com/oasdoc/oasdoc/internal/openapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var cmdInspect = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Summarize what an OpenAPI document declares",
	Long: `Summarize what an OpenAPI document declares.

The document is validated first, then reduced to a short overview: title, version,
servers, and how many paths, operations, and schemas it carries. Pass --detail to also
list every endpoint and when the file last changed.`,
	Example: `$ oasdoc inspect docs/api.yml
$ oasdoc inspect docs/api.yml --detail`,
	RunE: inspect,
	Args: cobra.ExactArgs(1),
}

func init() {
	RootCmd.AddCommand(cmdInspect)
}

func inspect(_ *cobra.Command, args []string) error {
	path := args[0]

	cl.State.Fmt.Print(fmt.Sprintf("Inspecting document %q", path))

	ctx := context.Background()

	outcome := openapi.Validate(ctx, path)
	if !outcome.Valid {
		printValidationReport(&outcome)
		cl.State.Fmt.Finish()
		return outcome.Err()
	}

	doc, err := openapi.Load(ctx, path)
	if err != nil {
		cl.State.Fmt.PrintErr(fmt.Sprintf("could not load document: %v", err))
		cl.State.Fmt.Finish()
		return err
	}

	summary := openapi.Summarize(doc)

	output, err := formatSummary(path, &outcome, summary, cl.State.Config.Detail)
	if err != nil {
		cl.State.Fmt.PrintErr(fmt.Sprintf("could not render summary: %v", err))
		cl.State.Fmt.Finish()
		return err
	}

	cl.State.Fmt.Println(output)
	cl.State.Fmt.Finish()
	return nil
}

type summaryData struct {
	Title     string
	Version   string
	State     string
	OpenAPI   string
	Counts    string
	Servers   string
	Endpoints string
	Modified  string
}

func formatSummary(path string, outcome *openapi.Outcome, summary openapi.Summary, detail bool) (string, error) {
	counts := strings.Join([]string{
		english.Plural(summary.Paths, "path", ""),
		english.Plural(summary.Operations, "operation", ""),
		english.Plural(summary.Schemas, "schema", ""),
	}, " | ")

	data := summaryData{
		Title:   color.BlueString(summary.Title),
		Version: summary.Version,
		State:   format.ColorizeValidity(format.NormalizeEnumValue(outcome.State(), "Unknown")),
		OpenAPI: summary.OpenAPI,
		Counts:  counts,
		Servers: format.SliceJoin(summary.Servers, "None"),
	}

	if detail {
		endpointList := [][]string{}
		for _, endpoint := range summary.Endpoints {
			endpointList = append(endpointList, []string{
				endpoint.Method,
				endpoint.Path,
				endpoint.OperationID,
				endpoint.Summary,
			})
		}

		data.Endpoints = formatEndpointsTable(endpointList, !cl.State.Config.NoColor)

		if stat, err := os.Stat(path); err == nil {
			data.Modified = format.UnixMilli(stat.ModTime().UnixMilli(), "Unknown", detail)
		}
	}

	const formatTmpl = `[{{.Title}}] v{{.Version}} :: {{.State}}

  OpenAPI {{.OpenAPI}} | {{.Counts}}
  Servers: {{.Servers}}
  {{- if .Endpoints}}

  Endpoints:
{{.Endpoints}}
  {{- end}}
  {{- if .Modified}}

Last modified {{.Modified}}
  {{- end}}`

	var tpl bytes.Buffer
	t := template.Must(template.New("tmp").Parse(formatTmpl))
	err := t.Execute(&tpl, data)
	if err != nil {
		return "", err
	}

	return tpl.String(), nil
}

func formatEndpointsTable(data [][]string, color bool) string {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)

	table.SetHeader([]string{"Method", "Path", "Operation ID", "Summary"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(true)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(false)
	table.SetRowSeparator("―")
	table.SetRowLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")

	if color {
		table.SetHeaderColor(
			tablewriter.Color(tablewriter.FgBlueColor),
			tablewriter.Color(tablewriter.FgBlueColor),
			tablewriter.Color(tablewriter.FgBlueColor),
			tablewriter.Color(tablewriter.FgBlueColor),
		)
		table.SetColumnColor(
			tablewriter.Color(tablewriter.FgYellowColor),
			tablewriter.Color(0),
			tablewriter.Color(0),
			tablewriter.Color(0),
		)
	}

	table.AppendBulk(data)

	table.Render()
	return tableString.String()
}
