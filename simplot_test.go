package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// end to end run against fake external programs: the simulator writes the two
// dump files, the plotter touches the image named by its @@SAVE argument and
// touch stands in for the image merger.
func TestCreate(t *testing.T) {
	s := fastSimplot(t)
	writeFile(t, s.Dir, "baseline.simlib", "LIBID: 1\n")
	s.Simlib = filepath.Join(s.Dir, "baseline.simlib")

	sim := filepath.Join(s.Dir, "fakesim.sh")
	script := "#!/bin/sh\n" +
		"cat > SIMLIB_DUMP_AVG_baseline.TEXT <<'EOF'\n" + testDoc + "EOF\n" +
		"cp SIMLIB_DUMP_AVG_baseline.TEXT SIMLIB_DUMP_OBS_baseline.TEXT\n"
	require.NoError(t, os.WriteFile(sim, []byte(script), 0755))

	plotter := filepath.Join(s.Dir, "fakeplot.sh")
	require.NoError(t, os.WriteFile(plotter, []byte("#!/bin/sh\nfor a; do save=$a; done\ntouch \"$save\"\n"), 0755))

	s.Programs.Sim = sim
	s.Programs.Plot = plotter
	s.Programs.Combine = "touch"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, s.Create(ctx))

	assert.FileExists(t, filepath.Join(s.Dir, "baseline.pdf"))
	fs, err := filepath.Glob(filepath.Join(s.Dir, TempPrefix+"*"))
	require.NoError(t, err)
	assert.Empty(t, fs, "temporary files should be gone after a clean run")

	// rerun with fresh dumps: the simulator must not be needed anymore
	s2 := fastSimplot(t)
	s2.Dir, s2.Simlib = s.Dir, s.Simlib
	s2.Programs.Sim = filepath.Join(s.Dir, "no-such-simulator")
	s2.Programs.Plot = plotter
	s2.Programs.Combine = "touch"
	require.NoError(t, s2.Create(ctx))
}

func TestCreateNoClean(t *testing.T) {
	s := fastSimplot(t)
	writeFile(t, s.Dir, "baseline.simlib", "LIBID: 1\n")
	writeFile(t, s.Dir, "SIMLIB_DUMP_AVG_baseline.TEXT", testDoc)
	writeFile(t, s.Dir, "SIMLIB_DUMP_OBS_baseline.TEXT", testDoc)
	s.Simlib = filepath.Join(s.Dir, "baseline.simlib")
	s.NoClean = true

	plotter := filepath.Join(s.Dir, "fakeplot.sh")
	require.NoError(t, os.WriteFile(plotter, []byte("#!/bin/sh\nfor a; do save=$a; done\ntouch \"$save\"\n"), 0755))
	s.Programs.Plot = plotter
	s.Programs.Combine = "touch"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, s.Create(ctx))

	assert.FileExists(t, filepath.Join(s.Dir, "baseline.pdf"))
	assert.NotEmpty(t, s.glob(PlotSuffix), "noclean keeps the temporary images")
}

func TestCreateKeepsTempsWithoutCombiner(t *testing.T) {
	s := fastSimplot(t)
	writeFile(t, s.Dir, "baseline.simlib", "LIBID: 1\n")
	writeFile(t, s.Dir, "SIMLIB_DUMP_AVG_baseline.TEXT", testDoc)
	writeFile(t, s.Dir, "SIMLIB_DUMP_OBS_baseline.TEXT", testDoc)
	s.Simlib = filepath.Join(s.Dir, "baseline.simlib")

	plotter := filepath.Join(s.Dir, "fakeplot.sh")
	require.NoError(t, os.WriteFile(plotter, []byte("#!/bin/sh\nfor a; do save=$a; done\ntouch \"$save\"\n"), 0755))
	s.Programs.Plot = plotter
	s.Programs.Combine = "no-such-combiner-anywhere"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, s.Create(ctx))

	// combine failed: no pdf, but the images are left for inspection
	assert.NoFileExists(t, filepath.Join(s.Dir, "baseline.pdf"))
	assert.NotEmpty(t, s.glob(PlotSuffix))
}

func TestList(t *testing.T) {
	s := fastSimplot(t)
	writeFile(t, s.Dir, "baseline.simlib", "LIBID: 1\n")
	writeFile(t, s.Dir, "SIMLIB_DUMP_AVG_baseline.TEXT", testDoc)
	writeFile(t, s.Dir, "SIMLIB_DUMP_OBS_baseline.TEXT", testDoc)
	s.Simlib = filepath.Join(s.Dir, "baseline.simlib")

	require.NoError(t, s.List(context.Background()))
	// listing must not launch anything
	assert.Empty(t, s.glob(LogSuffix))
	assert.Empty(t, s.glob(PlotSuffix))
}
