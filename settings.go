package main

import (
	"log"
	"time"
)

const (
	TempPrefix = "TEMP_PLOT_SIMLIB"
	PlotSuffix = "png"
	LogSuffix  = "LOG"
)

const (
	AVG = "AVG"
	OBS = "OBS"
)

const (
	DefaultSim     = "snlc_sim.exe"
	DefaultPlot    = "plot_table.py"
	DefaultCombine = "convert"
)

// one marker per band, reused in both legend and per-band plots
var MarkerList = []string{"s", "+", "o", "x", "^", "v", "d", "4"}

type Duration struct {
	time.Duration
}

func NewDuration(d time.Duration) Duration {
	return Duration{d}
}

func (d *Duration) String() string {
	return d.Duration.String()
}

func (d *Duration) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err == nil {
		d.Duration = v
	}
	return err
}

type ProgramSet struct {
	Sim     string `toml:"sim"`
	Plot    string `toml:"plot"`
	Combine string `toml:"combine"`
}

var programDefault = ProgramSet{
	Sim:     DefaultSim,
	Plot:    DefaultPlot,
	Combine: DefaultCombine,
}

type LaunchOption struct {
	Group     int      `toml:"group"`
	Delay     Duration `toml:"delay"`
	Poll      Duration `toml:"poll"`
	ImageWait Duration `toml:"image-wait"`
	Timeout   Duration `toml:"timeout"`
}

var launchDefault = LaunchOption{
	Group:     6,
	Delay:     NewDuration(time.Second * 5),
	Poll:      NewDuration(time.Second * 3),
	ImageWait: NewDuration(time.Second * 20),
	Timeout:   NewDuration(time.Minute * 10),
}

type VarSpec struct {
	Var   string `toml:"var"`
	Label string `toml:"label"`
}

type Catalog struct {
	Avg []VarSpec `toml:"avg"`
	Obs []VarSpec `toml:"obs"`
}

var (
	avgDefault = []VarSpec{
		{Var: "N", Label: "Nobs"},
		{Var: "ZPT", Label: "ZPT (ADU)"},
		{Var: "PSF", Label: "PSF-sigma (pixels)"},
		{Var: "M5SIG", Label: "$m_{5\\sigma}$"},
	}
	obsDefault = []VarSpec{
		{Var: "ZP_pe", Label: "ZP (pe)"},
		{Var: "SKYMAG", Label: "SkyMag/arcsec^2"},
		{Var: "PSF", Label: "PSF-sigma (pixels)"},
		{Var: "M5SIG", Label: "$m_{5\\sigma}$"},
	}
)

func (s *Simplot) printSettings() {
	log.Printf("%s-%s (build: %s)", Program, Version, BuildTime)
	log.Printf("settings: simulator: %s", s.Programs.Sim)
	log.Printf("settings: plot program: %s", s.Programs.Plot)
	log.Printf("settings: combine program: %s", s.Programs.Combine)
	log.Printf("settings: launch group: %d", s.Launch.Group)
	log.Printf("settings: launch delay: %s", s.Launch.Delay.Duration)
	log.Printf("settings: poll interval: %s", s.Launch.Poll.Duration)
	log.Printf("settings: image wait: %s", s.Launch.ImageWait.Duration)
	log.Printf("settings: timeout: %s", s.Launch.Timeout.Duration)
}
