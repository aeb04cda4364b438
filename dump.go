package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Meta struct {
	Survey  string
	Filters []string
}

func (s *Simplot) DumpFiles() (string, string) {
	var (
		avg = fmt.Sprintf("SIMLIB_DUMP_AVG_%s.TEXT", s.Base())
		obs = fmt.Sprintf("SIMLIB_DUMP_OBS_%s.TEXT", s.Base())
	)
	return avg, obs
}

// PrepareDump makes sure both dump files exist and are newer than the simlib
// file, running the simulator when they are not, then reads the DOCUMENTATION
// block from the AVG dump.
func (s *Simplot) PrepareDump(ctx context.Context) error {
	var (
		simlib   = os.ExpandEnv(s.Simlib)
		avg, obs = s.DumpFiles()
	)
	log.Printf("check for simlib dump files: %s, %s", avg, obs)

	dumps := []string{
		filepath.Join(s.Dir, avg),
		filepath.Join(s.Dir, obs),
	}
	stale, err := staleDumps(simlib, dumps)
	if err != nil {
		return err
	}
	if stale {
		log.Printf("run %s to create dump files from %s", s.Programs.Sim, simlib)
		log.Printf("... please be patient ...")
		if err := s.runSim(ctx, simlib); err != nil {
			return err
		}
	} else {
		log.Printf("use existing dump files")
	}

	m, err := readMeta(dumps[0])
	if err != nil {
		return err
	}
	s.DumpAVG, s.DumpOBS, s.Meta = avg, obs, m
	log.Printf("survey: %s, filters: %s", m.Survey, strings.Join(m.Filters, ""))
	return nil
}

func staleDumps(simlib string, dumps []string) (bool, error) {
	i, err := os.Stat(simlib)
	if err != nil {
		return false, checkError(err, nil)
	}
	for _, f := range dumps {
		d, err := os.Stat(f)
		if os.IsNotExist(err) {
			return true, nil
		}
		if err != nil {
			return false, checkError(err, nil)
		}
		if d.ModTime().Before(i.ModTime()) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Simplot) runSim(ctx context.Context, simlib string) error {
	f, err := os.Create(filepath.Join(s.Dir, TempPrefix+"_make_dump_files.log"))
	if err != nil {
		return checkError(err, nil)
	}
	defer f.Close()

	cmd := exec.CommandContext(ctx, s.Programs.Sim, "NOFILE", "SIMLIB_FILE", simlib, "SIMLIB_DUMP", "3")
	cmd.Dir = s.Dir
	cmd.Stdout = f
	cmd.Stderr = f
	if err := cmd.Run(); err != nil {
		return dumpFailed(s.Programs.Sim, err)
	}
	return nil
}

// readMeta extracts the leading DOCUMENTATION block of a dump file. The block
// is yaml; only SURVEY and FILTERS are of interest here. FILTERS is a compact
// string (eg ugrizY), one letter per band, order significant.
func readMeta(file string) (Meta, error) {
	var m Meta

	r, err := os.Open(file)
	if err != nil {
		return m, checkError(err, nil)
	}
	defer r.Close()

	var (
		sc    = bufio.NewScanner(r)
		block strings.Builder
		found bool
	)
	for sc.Scan() {
		line := sc.Text()
		if !found {
			if strings.HasPrefix(line, "DOCUMENTATION:") {
				found = true
				block.WriteString(line)
				block.WriteByte('\n')
			}
			continue
		}
		if strings.HasPrefix(line, "DOCUMENTATION_END") {
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return m, checkError(err, nil)
	}
	if !found {
		return m, badMeta(file, "no DOCUMENTATION block")
	}

	var doc struct {
		Documentation struct {
			Survey  string `yaml:"SURVEY"`
			Filters string `yaml:"FILTERS"`
		} `yaml:"DOCUMENTATION"`
	}
	if err := yaml.Unmarshal([]byte(block.String()), &doc); err != nil {
		return m, badMeta(file, err.Error())
	}
	if doc.Documentation.Survey == "" || doc.Documentation.Filters == "" {
		return m, badMeta(file, "missing SURVEY/FILTERS")
	}
	m.Survey = doc.Documentation.Survey
	for _, b := range doc.Documentation.Filters {
		m.Filters = append(m.Filters, string(b))
	}
	return m, nil
}
