package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/oasdoc/oasdoc/internal/openapi"
)

// The issue list is deliberately plain: one marker+message line per finding with the
// document location tucked underneath when the library reported one.
const reportTmpl = `{{.Path}}
{{- range .Issues}}
  {{.Marker}} {{.Message}}
  {{- if .Location}}
      at {{.Location}}
  {{- end}}
{{- end}}

{{.Summary}}`

type reportIssue struct {
	Marker   string
	Message  string
	Location string
}

type reportData struct {
	Path    string
	Issues  []reportIssue
	Summary string
}

// Stylish renders a validation outcome as a readable multi-line report. Any failure
// while rendering comes back as an error so callers can fall through to Simple; a
// formatting problem should never take down the command itself.
func Stylish(outcome *openapi.Outcome) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not render report: %v", r)
		}
	}()

	issues := make([]reportIssue, 0, len(outcome.Issues))
	for _, issue := range outcome.Issues {
		// An empty location stays empty; colorizing it would produce bare escape
		// codes and defeat the template's presence check.
		location := ""
		if issue.Location != "" {
			location = color.YellowString(issue.Location)
		}

		issues = append(issues, reportIssue{
			Marker:   color.RedString("✗"),
			Message:  issue.Message,
			Location: location,
		})
	}

	data := reportData{
		Path:   outcome.Path,
		Issues: issues,
		Summary: color.RedString("✖ %s found",
			english.Plural(len(outcome.Issues), "problem", "")),
	}

	t, err := template.New("report").Parse(reportTmpl)
	if err != nil {
		return "", err
	}

	var tpl bytes.Buffer
	err = t.Execute(&tpl, data)
	if err != nil {
		return "", err
	}

	return tpl.String(), nil
}

// Simple renders a validation outcome with nothing but string concatenation. It is the
// fallback report for when Stylish cannot do its job and so must always succeed.
func Simple(outcome *openapi.Outcome) string {
	var report strings.Builder

	report.WriteString(outcome.Path + "\n")

	for _, issue := range outcome.Issues {
		report.WriteString("  error: " + issue.Message + "\n")
		if issue.Location != "" {
			report.WriteString("      at " + issue.Location + "\n")
		}
	}

	report.WriteString(fmt.Sprintf("\n%s found", english.Plural(len(outcome.Issues), "problem", "")))

	return report.String()
}
