// The instantprobe command samples a host clock and reports how it behaves:
// the smallest step it can observe, and whether it ever repeats or goes
// backwards. Built for js/wasm it reads performance.now() or Date.now() from
// the JavaScript host.
//
// Usage:
//
//	instantprobe [-mode precise|inaccurate] [-samples N] [-format auto|table|plain]
package main

import (
	"flag"
	"os"

	"github.com/canonical/instant/instant"
	"github.com/golang/glog"
	"golang.org/x/term"
)

var (
	modeFlag    = flag.String("mode", string(instant.Precise), "host clock to sample: precise or inaccurate")
	samplesFlag = flag.Int("samples", 100000, "number of readings to take")
	formatFlag  = flag.String("format", "auto", "output format: auto, table or plain")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	mode, err := instant.ParseMode(*modeFlag)
	if err != nil {
		glog.Exitf("instantprobe: %v", err)
	}
	if *samplesFlag < 1 {
		glog.Exitf("instantprobe: -samples must be positive, got %d", *samplesFlag)
	}
	format, err := parseFormat(*formatFlag, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		glog.Exitf("instantprobe: %v", err)
	}

	glog.Infof("sampling %s clock %d times", mode, *samplesFlag)
	r := probe(mode, instant.NewClock(mode.HostClock()), *samplesFlag)
	if r.Regressions > 0 {
		glog.Warningf("%s clock went backwards %d times", mode, r.Regressions)
	}
	if err := writeReport(os.Stdout, r, format); err != nil {
		glog.Exitf("instantprobe: writing report: %v", err)
	}
}
