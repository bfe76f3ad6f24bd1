package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/canonical/instant/instant"
	"github.com/canonical/instant/instanttest"
	"github.com/google/go-cmp/cmp"
)

func TestProbe(t *testing.T) {
	tests := []struct {
		name     string
		readings []float64
		n        int
		expect   report
	}{{
		name:     "steady",
		readings: []float64{10, 10.5, 11, 12},
		n:        4,
		expect:   report{Samples: 4, Span: 2 * time.Millisecond, MinStep: 500 * time.Microsecond},
	}, {
		name:     "repeats",
		readings: []float64{10, 10, 11, 11},
		n:        4,
		expect:   report{Samples: 4, Span: time.Millisecond, MinStep: time.Millisecond, Repeats: 2},
	}, {
		name:     "regression",
		readings: []float64{10, 12, 11, 13},
		n:        4,
		expect:   report{Samples: 4, Span: 3 * time.Millisecond, MinStep: 2 * time.Millisecond, Regressions: 1},
	}, {
		name:     "ends-before-start",
		readings: []float64{10, 9},
		n:        2,
		expect:   report{Samples: 2, Regressions: 1},
	}, {
		name:     "single",
		readings: []float64{10},
		n:        1,
		expect:   report{Samples: 1},
	}, {
		name:     "none",
		readings: []float64{10},
		n:        0,
		expect:   report{},
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clock := instant.NewClock(instanttest.Sequence(test.readings...))
			test.expect.Mode = instant.Inaccurate
			actual := probe(instant.Inaccurate, clock, test.n)
			if diff := cmp.Diff(test.expect, actual); diff != "" {
				t.Errorf("unexpected report (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProbeRealClock(t *testing.T) {
	r := probe(instant.Precise, instant.NewClock(instant.PerformanceNow), 1000)
	if r.Regressions != 0 {
		t.Errorf("precise clock went backwards %d times", r.Regressions)
	}
	if r.Span < 0 || r.Span >= time.Second {
		t.Errorf("unexpected span: %v", r.Span)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input      string
		isTerminal bool
		expect     outputFormat
		err        bool
	}{
		{input: "auto", isTerminal: true, expect: formatTable},
		{input: "auto", isTerminal: false, expect: formatPlain},
		{input: "table", isTerminal: false, expect: formatTable},
		{input: "plain", isTerminal: true, expect: formatPlain},
		{input: "json", err: true},
	}
	for _, test := range tests {
		format, err := parseFormat(test.input, test.isTerminal)
		if test.err {
			if err == nil {
				t.Errorf("%s: expected error, got none", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.input, err)
		} else if format != test.expect {
			t.Errorf("%s: incorrect format: expected %d but got %d", test.input, test.expect, format)
		}
	}
}

func TestWriteReport(t *testing.T) {
	r := report{
		Mode:        instant.Precise,
		Samples:     3,
		Span:        2 * time.Millisecond,
		MinStep:     time.Microsecond,
		Repeats:     1,
		Regressions: 0,
	}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeReport(&buf, r, formatPlain); err != nil {
			t.Fatal(err)
		}
		expected := "mode=precise\nsamples=3\nspan=2ms\nmin_step=1µs\nrepeats=1\nregressions=0\n"
		if diff := cmp.Diff(expected, buf.String()); diff != "" {
			t.Errorf("unexpected output (-want +got):\n%s", diff)
		}
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeReport(&buf, r, formatTable); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"FIELD", "VALUE", "precise", "min_step", "2ms"} {
			if !strings.Contains(out, want) {
				t.Errorf("table output missing %q:\n%s", want, out)
			}
		}
	})
}
