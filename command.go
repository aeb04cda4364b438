package main

import (
	"fmt"
	"strings"
)

// Command is one plot_table invocation: program, argument list and the image
// and log files it is expected to produce. Commands are built once and never
// mutated; rendering to a process happens in Execute.
type Command struct {
	Program string
	Args    []string
	Plot    string
	Log     string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s >& %s &", c.Program, strings.Join(c.Args, " "), c.Log)
}

// Commands builds the full ordered list of plot commands for the current
// metadata. The order is fixed: sky coverage first, then one histogram per
// AVG variable, then for each OBS variable one all-band overlay followed by
// one plot per band. The same metadata always yields the same list; the
// poller counts on it.
func (s *Simplot) Commands() []Command {
	cs := []Command{s.skyCommand()}
	for _, v := range s.Plots.Avg {
		cs = append(cs, s.histCommand(v))
	}
	for _, v := range s.Plots.Obs {
		cs = append(cs, s.scatterCommands(v)...)
	}
	return cs
}

func (s *Simplot) skyCommand() Command {
	return s.plotCommand(s.DumpAVG, AVG,
		"@V", "RA:cos((DEC+90)*.01745)",
		"@@TITLE", "SIMLIB Sky Coverage",
		"@@XLABEL", "RA (deg)",
		"@@YLABEL", "cos(DEC+90)",
	)
}

// histCommand overlays <var>_<band> for every band on a single 1D histogram
// built from the AVG dump.
func (s *Simplot) histCommand(v VarSpec) Command {
	var (
		vars   = []string{"@V"}
		legend = []string{"@@LEGEND"}
	)
	for _, band := range s.Meta.Filters {
		vars = append(vars, v.Var+"_"+band)
		legend = append(legend, band)
	}
	args := append(vars, legend...)
	args = append(args,
		"@@XLABEL", fmt.Sprintf("average %s per sky location", v.Label),
		"@@TITLE", fmt.Sprintf("%s for %s", v.Var, s.Meta.Survey),
		"@@OPT", "HIST",
	)
	return s.plotCommand(s.DumpAVG, AVG, args...)
}

// scatterCommands gives the MJD scatter plots for one OBS variable: first a
// single plot with all bands overlaid (one cut, legend entry and marker per
// band), then a separate plot per band.
func (s *Simplot) scatterCommands(v VarSpec) []Command {
	var (
		cut    = []string{"@@CUT"}
		legend = []string{"@@LEGEND"}
		marker = []string{"@@MARKER"}
	)
	for i, band := range s.Meta.Filters {
		cut = append(cut, bandCut(band))
		legend = append(legend, band)
		marker = append(marker, MarkerList[i%len(MarkerList)])
	}
	args := []string{"@V", "MJD:" + v.Var}
	args = append(args, cut...)
	args = append(args, legend...)
	args = append(args, marker...)
	args = append(args,
		"@@YLABEL", v.Label,
		"@@TITLE", fmt.Sprintf("%s for %s", v.Var, s.Meta.Survey),
		"@@ALPHA", "0.0",
		"@@OPT", "GRID", "MEDIAN",
	)
	cs := []Command{s.plotCommand(s.DumpOBS, OBS, args...)}

	for _, band := range s.Meta.Filters {
		args := []string{
			"@V", "MJD:" + v.Var,
			"@@CUT", bandCut(band),
			"@@YLABEL", v.Label,
			"@@TITLE", fmt.Sprintf("%s for %s %s-band", v.Var, s.Meta.Survey, band),
			"@@ALPHA", "0.3",
			"@@OPT", "GRID", "MEDIAN",
		}
		cs = append(cs, s.plotCommand(s.DumpOBS, OBS, args...))
	}
	return cs
}

func (s *Simplot) plotCommand(dump, kind string, args ...string) Command {
	plot, lg := s.nextPlotFile(kind)
	as := append([]string{"@@TFILE", dump}, args...)
	as = append(as, "@@SAVE", plot)
	return Command{
		Program: s.Programs.Plot,
		Args:    as,
		Plot:    plot,
		Log:     lg,
	}
}

func bandCut(band string) string {
	return fmt.Sprintf("BAND='%s'", band)
}
