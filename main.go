package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	Version   = "0.2.0"
	BuildTime = "2024-10-17 11:05:00"
	Program   = "simplot"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix(fmt.Sprintf("[%s-%s] ", Program, Version))

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpText)
		os.Exit(2)
	}
}

func main() {
	var (
		s       = Default()
		mjd     mjdRange
		config  = flag.String("config", "", "load settings from a configuration file")
		simlib  = flag.String("simlib-file", "", "simlib/cadence file to read and plot")
		noclean = flag.Bool("noclean", false, "do not remove temporary files (for debugging)")
		list    = flag.Bool("list", false, "print the plot commands instead of executing them")
		timeout = flag.Duration("timeout", 0, "maximum time to wait for plot logs")
		version = flag.Bool("version", false, "print version and exit")
	)
	flag.Var(&mjd, "mjd-range", "mjd min max binsize")
	flag.Parse()

	if *version {
		fmt.Fprintf(os.Stderr, "%s-%s (%s)\n", Program, Version, BuildTime)
		return
	}
	if *config != "" {
		if err := s.Load(*config); err != nil {
			Exit(badUsage(fmt.Sprintf("invalid configuration file: %v", err)))
		}
	}
	if *simlib != "" {
		s.Simlib = *simlib
	}
	if s.Simlib == "" {
		s.Simlib = flag.Arg(0)
	}
	if s.Simlib == "" {
		Exit(badUsage("no simlib file given"))
	}
	if *noclean {
		s.NoClean = true
	}
	if *timeout > 0 {
		s.Launch.Timeout = NewDuration(*timeout)
	}
	if mjd.set {
		log.Printf("mjd range: %s (reserved for future cuts)", &mjd)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.Launch.Timeout.Duration)
	defer cancel()

	var err error
	if *list {
		err = s.List(ctx)
	} else {
		err = s.Create(ctx)
	}
	Exit(checkError(err, nil))
}

type mjdRange struct {
	Min, Max, Bin float64
	set           bool
}

func (m *mjdRange) String() string {
	if !m.set {
		return ""
	}
	return fmt.Sprintf("%g %g %g", m.Min, m.Max, m.Bin)
}

func (m *mjdRange) Set(v string) error {
	fs := strings.Fields(strings.ReplaceAll(v, ",", " "))
	if len(fs) < 2 || len(fs) > 3 {
		return fmt.Errorf("want min max [binsize], got %q", v)
	}
	vs := make([]float64, len(fs))
	for i, f := range fs {
		d, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("number badly formatted (%s)", f)
		}
		vs[i] = d
	}
	m.Min, m.Max = vs[0], vs[1]
	if len(vs) == 3 {
		m.Bin = vs[2]
	}
	if m.Max <= m.Min {
		return fmt.Errorf("max should be greater than min")
	}
	m.set = true
	return nil
}
