package main

import (
	"crypto/md5"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// Combine merges every temporary plot image into <base>.pdf. The merge
// utility must be present; when it is not, the caller keeps the images so
// they can be inspected (or combined by hand).
func (s *Simplot) Combine() error {
	prog, err := exec.LookPath(s.Programs.Combine)
	if err != nil {
		return missingProgram(s.Programs.Combine)
	}
	plots := s.glob(PlotSuffix)
	if len(plots) == 0 {
		return genericErr("no plot files to combine")
	}
	sort.Strings(plots)

	var (
		pdf  = s.Base() + ".pdf"
		args = make([]string, 0, len(plots)+1)
	)
	for _, p := range plots {
		args = append(args, filepath.Base(p))
	}
	args = append(args, pdf)

	cmd := exec.Command(prog, args...)
	cmd.Dir = s.Dir
	if err := cmd.Run(); err != nil {
		return genericErr(err.Error())
	}
	aboutFile(filepath.Join(s.Dir, pdf))
	return nil
}

func aboutFile(file string) {
	r, err := os.Open(file)
	if err != nil {
		return
	}
	defer r.Close()

	digest := md5.New()
	if _, err := io.Copy(digest, r); err != nil {
		return
	}
	i, err := r.Stat()
	if err != nil {
		return
	}
	log.Printf("md5 %s: %x (%d bytes)", file, digest.Sum(nil), i.Size())
}
