package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sadopc/projtimer/internal/hms"
	"github.com/sadopc/projtimer/internal/store"
	"golang.org/x/term"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printSummary lists the sessions of the closed screen with a total.
func printSummary(w io.Writer, sessions []store.Session, colored bool) {
	bold := color.New(color.Bold)
	name := color.New(color.FgCyan)
	elapsed := color.New(color.FgGreen)
	muted := color.New(color.FgHiBlack)
	for _, c := range []*color.Color{bold, name, elapsed, muted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if len(sessions) == 0 {
		muted.Fprintln(w, "No projects recorded.")
		return
	}

	bold.Fprintf(w, "Recorded %d session(s):\n", len(sessions))
	var total int64
	for _, s := range sessions {
		fmt.Fprintf(w, "  %s - %s\n", name.Sprint(s.Name), elapsed.Sprint(s.ElapsedDisplay))
		total += s.ElapsedSeconds
	}
	fmt.Fprintf(w, "%s %s\n", muted.Sprint("Total:"), bold.Sprint(hms.Format(total)))
}
