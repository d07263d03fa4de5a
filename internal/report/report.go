// Package report renders case progress reports as markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/example/slt/internal/models"
)

// RecentSessions is how many of the latest sessions a report lists.
const RecentSessions = 5

// mdRenderer escapes raw HTML found in free-text clinical notes.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Data is everything a report shows about one case.
// Therapist and Supervisor may be nil when the roster no longer has them.
type Data struct {
	Case       *models.TherapyCase
	Patient    *models.Patient
	Therapist  *models.Therapist
	Supervisor *models.Supervisor
}

// FileName returns the export file name for a case, e.g. Case_3_Report.md.
func FileName(caseID int, ext string) string {
	return fmt.Sprintf("Case_%d_Report.%s", caseID, ext)
}

// Markdown renders the report.
func Markdown(d Data) string {
	c, p := d.Case, d.Patient
	var b strings.Builder

	fmt.Fprintf(&b, "# Progress Report: Case %d\n\n", c.ID)

	b.WriteString("## Patient\n\n")
	fmt.Fprintf(&b, "- **Name:** %s (ID: %d)\n", p.Name, p.ID)
	fmt.Fprintf(&b, "- **Diagnosis:** %s\n", p.Diagnosis)
	fmt.Fprintf(&b, "- **Age:** %d, **Gender:** %s\n", p.Age, p.Gender)
	fmt.Fprintf(&b, "- **Admission Date:** %s\n\n", p.AdmissionDate)

	b.WriteString("## Care Team\n\n")
	if d.Therapist != nil {
		fmt.Fprintf(&b, "- **Therapist:** %s (%s)\n", d.Therapist.Name, d.Therapist.Specialization)
	}
	if d.Supervisor != nil {
		fmt.Fprintf(&b, "- **Supervisor:** %s\n", d.Supervisor.Name)
	}
	b.WriteString("\n")

	b.WriteString("## Case\n\n")
	fmt.Fprintf(&b, "- **Status:** %s\n", c.Status)
	fmt.Fprintf(&b, "- **Start Date:** %s\n", c.StartDate)
	if c.EndDate != "" {
		fmt.Fprintf(&b, "- **End Date:** %s\n", c.EndDate)
	}
	fmt.Fprintf(&b, "- **Clinical Rating:** %.1f/5.0\n\n", c.ClinicalRating)

	b.WriteString("## Therapy Goals\n\n")
	if len(c.Goals) == 0 {
		b.WriteString("No goals set.\n\n")
	} else {
		b.WriteString("| # | Goal | Target | Achieved | Status |\n")
		b.WriteString("|---|------|--------|----------|--------|\n")
		for i, g := range c.Goals {
			fmt.Fprintf(&b, "| %d | %s | %d | %d | %s |\n",
				i+1, escapeCell(g.Description), g.TargetSessions, g.Achieved, g.Status())
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Total Sessions Completed:** %d\n\n", len(c.Sessions))

	b.WriteString("## Recent Sessions\n")
	start := 0
	if len(c.Sessions) > RecentSessions {
		start = len(c.Sessions) - RecentSessions
	}
	for _, s := range c.Sessions[start:] {
		fmt.Fprintf(&b, "\n### Session %d on %s\n\n", s.ID, s.Date)
		fmt.Fprintf(&b, "- **Activities:** %s\n", s.Activities)
		fmt.Fprintf(&b, "- **Observations:** %s\n", s.Observations)
		if s.SupervisorFeedback != "" {
			fmt.Fprintf(&b, "- **Supervisor Feedback:** %s\n", s.SupervisorFeedback)
		}
	}

	return b.String()
}

// HTML converts a rendered markdown report to HTML.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.String(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
