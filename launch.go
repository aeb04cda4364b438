package main

import (
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// Execute starts every command in build order as a background process with
// stdout and stderr redirected to its log file. Launches are grouped to bound
// the number of plot processes started at once; completion is watched both
// through the filesystem (WaitPlots) and through the returned group, which
// collects the exit status of each process.
func (s *Simplot) Execute(cs []Command) *errgroup.Group {
	g := new(errgroup.Group)
	for i, c := range cs {
		log.Printf("launch plot command %d: %s", i+1, c)

		f, err := os.Create(filepath.Join(s.Dir, c.Log))
		if err != nil {
			log.Printf("warning: %s: %v", c.Log, err)
			continue
		}
		cmd := exec.Command(c.Program, c.Args...)
		cmd.Dir = s.Dir
		cmd.Stdout = f
		cmd.Stderr = f
		if err := cmd.Start(); err != nil {
			f.Close()
			log.Printf("warning: %s: %v", c.Plot, err)
			continue
		}
		g.Go(func() error {
			defer f.Close()
			if err := cmd.Wait(); err != nil {
				log.Printf("warning: %s: plot command exited: %v", c.Plot, err)
				return err
			}
			return nil
		})
		if n := s.Launch.Group; n > 0 && (i+1)%n == 0 {
			time.Sleep(s.Launch.Delay.Duration)
		}
	}
	return g
}

// WaitPlots polls the working directory until the expected number of log
// files shows up (bounded by ctx), then gives the images a bounded extra wait.
// Missing images are only worth a note: the combine step takes whatever is
// there.
func (s *Simplot) WaitPlots(ctx context.Context, expect int) {
	for {
		n := len(s.glob(LogSuffix))
		log.Printf("found %d %s*.%s files out of %d", n, TempPrefix, LogSuffix, expect)
		if n >= expect {
			break
		}
		select {
		case <-ctx.Done():
			log.Printf("warning: gave up waiting for plot logs: %v", ctx.Err())
			return
		case <-time.After(s.Launch.Poll.Duration):
		}
	}

	var waited time.Duration
	for {
		n := len(s.glob(PlotSuffix))
		log.Printf("found %d %s files (expect %d)", n, PlotSuffix, expect)
		if n >= expect {
			break
		}
		if waited >= s.Launch.ImageWait.Duration {
			log.Printf("warning: only %d of %d plot files produced", n, expect)
			break
		}
		select {
		case <-ctx.Done():
			log.Printf("warning: gave up waiting for plot files: %v", ctx.Err())
			return
		case <-time.After(s.Launch.Poll.Duration):
		}
		waited += s.Launch.Poll.Duration
	}
}

// Clean removes every temporary file sharing the fixed prefix and nothing
// else.
func (s *Simplot) Clean() error {
	fs, err := filepath.Glob(filepath.Join(s.Dir, TempPrefix+"*"))
	if err != nil {
		return checkError(err, nil)
	}
	for _, f := range fs {
		if err := os.Remove(f); err != nil {
			return checkError(err, nil)
		}
	}
	return nil
}

func (s *Simplot) glob(suffix string) []string {
	fs, _ := filepath.Glob(filepath.Join(s.Dir, TempPrefix+"*."+suffix))
	return fs
}
