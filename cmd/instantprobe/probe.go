package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/canonical/instant/instant"
	"github.com/golang/glog"
	"github.com/olekukonko/tablewriter"
)

// report summarises a run of consecutive clock readings.
type report struct {
	Mode        instant.Mode
	Samples     int
	Span        time.Duration
	MinStep     time.Duration
	Repeats     int
	Regressions int
}

// probe reads clock n times and reports what it observed. Readings which go
// backwards are counted rather than measured, as a negative span cannot be
// represented.
func probe(mode instant.Mode, clock *instant.Clock, n int) report {
	r := report{Mode: mode, Samples: n}
	if n <= 0 {
		return r
	}

	first := clock.Now()
	prev := first
	for i := 1; i < n; i++ {
		now := clock.Now()
		switch now.Cmp(prev) {
		case -1:
			r.Regressions++
			glog.V(1).Infof("sample %d: clock went backwards by %v", i, prev.DurationSince(now))
		case 0:
			r.Repeats++
		default:
			if step := now.DurationSince(prev); r.MinStep == 0 || step < r.MinStep {
				r.MinStep = step
			}
		}
		prev = now
	}
	if !prev.Before(first) {
		r.Span = prev.DurationSince(first)
	}
	return r
}

type outputFormat int

const (
	formatPlain outputFormat = iota
	formatTable
)

// parseFormat resolves the -format flag. "auto" picks a table when writing
// to a terminal.
func parseFormat(s string, isTerminal bool) (outputFormat, error) {
	switch s {
	case "auto":
		if isTerminal {
			return formatTable, nil
		}
		return formatPlain, nil
	case "table":
		return formatTable, nil
	case "plain":
		return formatPlain, nil
	}
	return 0, fmt.Errorf("unknown output format %q (want auto, table or plain)", s)
}

func (r report) fields() [][2]string {
	return [][2]string{
		{"mode", string(r.Mode)},
		{"samples", strconv.Itoa(r.Samples)},
		{"span", r.Span.String()},
		{"min_step", r.MinStep.String()},
		{"repeats", strconv.Itoa(r.Repeats)},
		{"regressions", strconv.Itoa(r.Regressions)},
	}
}

func writeReport(w io.Writer, r report, format outputFormat) error {
	if format == formatTable {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Field", "Value"})
		for _, f := range r.fields() {
			table.Append([]string{f[0], f[1]})
		}
		table.Render()
		return nil
	}

	for _, f := range r.fields() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}
