package apitest

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Result is the outcome of a single scenario.
type Result struct {
	Name string
	Err  error
}

type Results []Result

func (rs Results) OK() bool {
	for _, r := range rs {
		if r.Err != nil {
			return false
		}
	}
	return true
}

func (rs Results) Failures() Results {
	var out Results
	for _, r := range rs {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

var (
	passLabel = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// PrintResults writes a per-scenario pass/fail report plus a summary line.
func PrintResults(w io.Writer, rs Results) {
	for _, r := range rs {
		if r.Err == nil {
			fmt.Fprintf(w, "%s %s\n", passLabel("PASS"), r.Name)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", failLabel("FAIL"), r.Name)
		for _, line := range strings.Split(r.Err.Error(), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	failed := len(rs.Failures())
	fmt.Fprintln(w)
	if failed == 0 {
		fmt.Fprintf(w, "%s: all %d scenarios passed\n", passLabel("OK"), len(rs))
	} else {
		fmt.Fprintf(w, "%s: %d of %d scenarios failed\n", failLabel("FAILED"), failed, len(rs))
	}
}
