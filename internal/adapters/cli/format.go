package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/slt/internal/ports/primary"
)

var (
	activeBadge = color.New(color.FgGreen, color.Bold)
	closedBadge = color.New(color.FgBlue)
	goalDone    = color.New(color.FgGreen)
	goalPartial = color.New(color.FgYellow)
	goalIdle    = color.New(color.Faint)
)

// CaseBadge colours a case status for terminal output.
func CaseBadge(c *primary.Case) string {
	if c.IsActive {
		return activeBadge.Sprint(c.Status)
	}
	return closedBadge.Sprint(c.Status)
}

// GoalBadge colours a derived goal status.
func GoalBadge(status string) string {
	switch status {
	case "Completed":
		return goalDone.Sprint(status)
	case "In Progress":
		return goalPartial.Sprint(status)
	default:
		return goalIdle.Sprint(status)
	}
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func writeCaseTable(out io.Writer, cases []*primary.Case) {
	w := newTable(out)
	fmt.Fprintln(w, "ID\tPATIENT\tTHERAPIST\tSUPERVISOR\tSESSIONS\tSTATUS")
	for _, c := range cases {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			c.ID, c.PatientName, c.TherapistName, c.SupervisorName, c.SessionCount(), CaseBadge(c))
	}
	w.Flush()
}

func writeGoalTable(out io.Writer, goals []*primary.Goal) {
	w := newTable(out)
	fmt.Fprintln(w, "#\tGOAL\tPROGRESS\tSTATUS")
	for _, g := range goals {
		fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\n", g.Number, g.Description, g.Achieved, g.TargetSessions, GoalBadge(g.Status))
	}
	w.Flush()
}

func writeSessionTable(out io.Writer, sessions []*primary.Session) {
	w := newTable(out)
	fmt.Fprintln(w, "#\tDATE\tACTIVITIES\tREVIEWED")
	for _, s := range sessions {
		reviewed := "no"
		if s.SupervisorReviewed {
			reviewed = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Number, s.Date, s.Activities, reviewed)
	}
	w.Flush()
}
