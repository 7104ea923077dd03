package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"iplook/structs"
)

var (
	keyColor  = color.New(color.FgCyan)
	failColor = color.New(color.FgRed)
)

// startSpinner returns a running spinner for bulk runs. Verbose and quiet
// modes both make it useless, and when results echo to the terminal as they
// arrive the spinner would fight them for the cursor.
func startSpinner(total int) *spinner.Spinner {
	if total < 2 || *flagVerbose || *flagQuiet || *flagOutput != "" {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Start()
	return s
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}

func progress(s *spinner.Spinner, n, total int, addr string) {
	if s != nil {
		s.Suffix = fmt.Sprintf(" [%d/%d] %s", n, total, addr)
		return
	}
	log.Debugf("[%d/%d] processing %s", n, total, addr)
}

// printRecord echoes one result to the terminal as colored key/value lines.
func printRecord(w io.Writer, rec *structs.Record) {
	for _, key := range rec.Keys() {
		keyColor.Fprint(w, key)
		fmt.Fprintf(w, ": %s\n", rec.String(key))
	}
	fmt.Fprintln(w)
}

// summarize reports the run outcome and lists every failed address in a
// table. It returns the number of failures.
func summarize(w io.Writer, results []structs.Result, elapsed time.Duration) int {
	failed := 0
	for _, res := range results {
		if !res.OK() {
			failed++
		}
	}
	log.Infof("%d ok, %d failed in %s", len(results)-failed, failed, elapsed.Round(time.Millisecond))
	if failed == 0 {
		return 0
	}
	failColor.Fprintf(w, "%d of %d lookups failed:\n", failed, len(results))
	const padding = 1
	tw := tabwriter.NewWriter(w, 0, 0, padding, ' ', tabwriter.Debug)
	fmt.Fprintf(tw, "ADDR\tFAMILY\tERROR\n")
	for _, res := range results {
		if res.OK() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Addr, res.Family, res.Err)
	}
	tw.Flush()
	return failed
}
