package main

import (
	"fmt"
	"time"

	"github.com/raphi011/gup/internal/output"
	"github.com/raphi011/gup/internal/ui/styles"
	"github.com/raphi011/gup/internal/update"
)

// printSummary renders the final per-repository outcome to stdout.
func printSummary(p *output.Printer, results []update.Result, elapsed time.Duration) {
	var succeeded, failed []update.Result
	for _, r := range results {
		if r.OK() {
			succeeded = append(succeeded, r)
		} else {
			failed = append(failed, r)
		}
	}

	if len(succeeded) > 0 {
		p.Println(styles.Bold.Render("Succeeded:"))
		for _, r := range succeeded {
			p.Printf("  %s %s %s %s\n",
				styles.SuccessStyle.Render(styles.SuccessSymbol),
				r.Name(),
				styles.MutedStyle.Render("("+successNote(r)+")"),
				styles.MutedStyle.Render(formatDuration(r.Duration)))
		}
		p.Println()
	}

	if len(failed) > 0 {
		p.Println(styles.Bold.Render("Failed:"))
		for _, r := range failed {
			p.Printf("  %s %s: %s %s\n",
				styles.ErrorStyle.Render(styles.FailureSymbol),
				r.Name(),
				r.Failure.Err,
				styles.MutedStyle.Render("("+r.Failure.Step.String()+")"))
		}
		p.Println()
	}

	p.Printf("Updated %d of %d repositories in %s\n",
		len(succeeded), len(results), formatDuration(elapsed))
}

// successNote describes the restored state: the original branch (or detached
// commit) and whether a stash was restored.
func successNote(r update.Result) string {
	note := r.Success.OriginalHead.String()
	if r.Success.HadStash {
		note += ", stash restored"
	}
	return note
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(100 * time.Millisecond).String()
}
