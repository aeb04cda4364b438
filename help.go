package main

const helpText = `SIMLIB Monitor Plot Tool

Usage: simplot [options] <file.simlib>

simplot produces monitor plots for a simlib/cadence file. For an input file
named baseline.simlib, it produces an output file baseline.pdf.

The heavy lifting is delegated to external programs: the simulator extracts
two flat-text dump files from the simlib file (per-field averages and raw
observations), the plot program turns the dump tables into images and the
combine program merges the images into a single PDF. simplot only prepares
the arguments, launches the programs and watches the working directory for
their outputs.

Dump files:

for an input file <base>.simlib, the dump files are named

- SIMLIB_DUMP_AVG_<base>.TEXT (one record per sky location)
- SIMLIB_DUMP_OBS_<base>.TEXT (one record per observation)

the dump files are reused when both exist and are newer than the simlib file;
otherwise the simulator is run again. The AVG dump starts with a
DOCUMENTATION block (yaml) from which simplot reads the SURVEY name and the
FILTERS string; the band order in FILTERS drives the marker and legend order
of every plot.

Temporary files:

every image and log produced during a run is named TEMP_PLOT_SIMLIB_<nnn>_<AVG|OBS>
with a png or LOG suffix. All files matching the TEMP_PLOT_SIMLIB prefix are
removed at startup and, unless the noclean flag is given, after the PDF has
been created. When the combine program is missing the images are always kept.

Configuration sections/options:

simplot accepts via the "config" flag a configuration file. The format of the
configuration file is toml.

* default : input and cleanup behaviour
  - simlib  = simlib/cadence file to read and plot
  - noclean = keep the temporary files after a successful run

* programs: names of the external programs
  - sim     = simulator executable producing the dump files
  - plot    = generic table plot program
  - combine = image merge utility producing the final PDF

* launch  : pacing of the plot processes
  - group      = number of plot commands started per burst
  - delay      = pause between two bursts
  - poll       = interval between two scans of the working directory
  - image-wait = extra time granted to missing images before combining
  - timeout    = overall bound on waiting for the plot logs

* plots   : chart catalog, overriding the built-in one
  - [[plots.avg]] = 1D histogram per band from the AVG dump (var, label)
  - [[plots.obs]] = MJD scatter per band from the OBS dump (var, label)

Options:

  -simlib-file FILE  simlib/cadence file to read and plot (or first argument)
  -mjd-range   SPEC  mjd min max binsize (reserved for future cuts)
  -noclean           do not remove temporary TEMP_PLOT_SIMLIB* files
  -list              print the plot commands instead of executing them
  -timeout     TIME  maximum time to wait for plot logs
  -config      FILE  load settings from a configuration file
  -version           print simplot version and exit
  -help              print this message and exit

Examples:

# create baseline.pdf from baseline.simlib
$ simplot baseline.simlib

# keep the temporary images and logs for inspection
$ simplot -noclean -simlib-file baseline.simlib

# show every plot command that would run, without plotting
$ simplot -list baseline.simlib

# use a configuration file instead of command line options
$ simplot -config /usr/local/etc/snana/simplot.toml
`
