package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/toml"
)

type Simplot struct {
	Simlib  string `toml:"simlib"`
	Dir     string `toml:"-"`
	NoClean bool   `toml:"noclean"`

	Programs ProgramSet   `toml:"programs"`
	Launch   LaunchOption `toml:"launch"`
	Plots    Catalog      `toml:"plots"`

	Meta    Meta   `toml:"-"`
	DumpAVG string `toml:"-"`
	DumpOBS string `toml:"-"`

	plotnum int
}

func Default() *Simplot {
	return &Simplot{
		Dir:      ".",
		Programs: programDefault,
		Launch:   launchDefault,
		Plots: Catalog{
			Avg: avgDefault,
			Obs: obsDefault,
		},
	}
}

func (s *Simplot) Load(file string) error {
	if err := toml.DecodeFile(file, s); err != nil {
		return err
	}
	if s.Dir == "" {
		s.Dir = "."
	}
	return nil
}

// Create runs the whole chain: refresh the dump files, launch one plot
// command per chart, wait for their outputs, combine them into a PDF and
// remove the temporary files.
func (s *Simplot) Create(ctx context.Context) error {
	s.printSettings()
	if err := s.Clean(); err != nil {
		return err
	}
	if err := s.PrepareDump(ctx); err != nil {
		return err
	}
	cs := s.Commands()
	g := s.Execute(cs)
	s.WaitPlots(ctx, len(cs))
	if err := g.Wait(); err != nil {
		log.Printf("warning: one or more plot commands failed")
	}
	if err := s.Combine(); err != nil {
		log.Printf("warning: %v", err)
		return nil
	}
	if s.NoClean {
		log.Printf("keep temporary %s* files", TempPrefix)
		return nil
	}
	return s.Clean()
}

func (s *Simplot) List(ctx context.Context) error {
	if err := s.PrepareDump(ctx); err != nil {
		return err
	}
	for i, c := range s.Commands() {
		fmt.Printf("%3d | %s", i+1, c)
		fmt.Println()
	}
	return nil
}

func (s *Simplot) Base() string {
	base := filepath.Base(os.ExpandEnv(s.Simlib))
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}

func (s *Simplot) nextPlotFile(kind string) (string, string) {
	s.plotnum++
	var (
		plot = fmt.Sprintf("%s_%03d_%s.%s", TempPrefix, s.plotnum, kind, PlotSuffix)
		lg   = fmt.Sprintf("%s_%03d_%s.%s", TempPrefix, s.plotnum, kind, LogSuffix)
	)
	return plot, lg
}
