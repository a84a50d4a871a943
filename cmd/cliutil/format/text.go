package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docserve/dsctl/pkg/deploy"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// TextFormatter formats output as human-readable text
type TextFormatter struct {
	writer io.Writer
}

// Format implements the Formatter interface for text
func (f *TextFormatter) Format(data interface{}) error {
	switch v := data.(type) {
	case *deploy.Report:
		return f.formatReport(v)
	default:
		return fmt.Errorf("text format not supported for type %T", data)
	}
}

func (f *TextFormatter) formatReport(report *deploy.Report) error {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Document Server Status"))
	b.WriteString("\n\n")
	b.WriteString(row("Address", report.Address))
	b.WriteString(row("Deployed", yesNo(report.Deployed)))

	if !report.Deployed {
		b.WriteString("\nRun `dsctl deploy` to start the document server.\n")
		_, err := fmt.Fprint(f.writer, b.String())
		return err
	}

	b.WriteString(row("Running", yesNo(report.Running)))
	b.WriteString(row("State", report.State))
	if report.Health != "" {
		b.WriteString(row("Health", report.Health))
	}
	b.WriteString(row("Image", report.Image))
	if report.StartedAt != "" {
		b.WriteString(row("Started", report.StartedAt))
	}
	b.WriteString(row("Endpoint", yesNo(report.Healthy)))

	if report.Running && !report.Healthy {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("⚠️  Container is running but the healthcheck endpoint is not answering yet."))
		b.WriteString("\n")
	}

	_, err := fmt.Fprint(f.writer, b.String())
	return err
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label+":")), value)
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
