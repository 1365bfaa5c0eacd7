package cmd

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"cmp"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
)

import (
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fim/config"
	"github.com/timtadh/fim/lattice"
	"github.com/timtadh/fim/miners"
	"github.com/timtadh/fim/reporters"
	"github.com/timtadh/fim/types/itemset"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"version":  2,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"baddir":   6,
	"badfile":  7,
	"badinput": 8,
	"mining":   9,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

// Input opens a transaction file, or every file of a directory concatenated
// in name order.
func Input(inputPath string) (reader io.Reader, closeall func(), err error) {
	stat, err := os.Stat(inputPath)
	if err != nil {
		return nil, nil, err
	}
	if stat.IsDir() {
		return InputDir(inputPath)
	} else {
		return InputFile(inputPath)
	}
}

// InputFile opens a file, decompressing it when the extension is .gz, .zst
// or .lz4.
func InputFile(inputPath string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case strings.HasSuffix(inputPath, ".gz"):
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	case strings.HasSuffix(inputPath, ".zst"):
		zreader, err := zstd.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return zreader, func() {
			zreader.Close()
			freader.Close()
		}, nil
	case strings.HasSuffix(inputPath, ".lz4"):
		return lz4.NewReader(freader), func() {
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

func InputDir(inputDir string) (reader io.Reader, closeall func(), err error) {
	var readers []io.Reader
	var closers []func()
	closeall = func() {
		for _, closer := range closers {
			closer()
		}
	}
	dir, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, nil, err
	}
	for _, info := range dir {
		if info.IsDir() {
			continue
		}
		creader, closer, err := InputFile(path.Join(inputDir, info.Name()))
		if err != nil {
			closeall()
			return nil, nil, err
		}
		readers = append(readers, creader)
		closers = append(closers, closer)
	}
	return io.MultiReader(readers...), closeall, nil
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func AssertDir(dir string) string {
	dir = path.Clean(dir)
	fi, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			Usage(ErrorCodes["baddir"])
		}
		return dir
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["baddir"])
	}
	if !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was not a directory, %s\n", dir)
		Usage(ErrorCodes["baddir"])
	}
	return dir
}

func AssertFileOrDirExists(fname string) string {
	fname = path.Clean(fname)
	_, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File '%s' does not exist!\n", fname)
		Usage(ErrorCodes["badfile"])
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

// CPUProfile starts writing a cpu profile to path. Call the returned func to
// stop it.
func CPUProfile(path string) func() {
	errors.Logf("DEBUG", "starting cpu profile: %v", path)
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		log.Fatal(err)
	}
	return func() {
		errors.Logf("DEBUG", "closing cpu profile")
		pprof.StopCPUProfile()
		err := f.Close()
		errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
	}
}

func needOutput(conf *config.Config, name string) {
	if conf.Output == "" {
		errors.Logf("ERROR", "the %v reporter writes to the output dir, supply one with -o", name)
		Usage(ErrorCodes["opts"])
	}
}

type Reporter func(map[string]Reporter, []string, lattice.Formatter, *config.Config) (miners.Reporter, []string)

func logReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(fmtr, level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:",
		[]string{
			"help",
			"patterns=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	patterns := "patterns"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--patterns":
			patterns = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	needOutput(conf, "file")
	fr, err := reporters.NewFile(conf, fmtr, patterns)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return fr, args
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "count"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	needOutput(conf, "count")
	return reporters.NewCount(conf, filename), args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	rptrs := make([]miners.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		if _, has := reports[args[0]]; !has {
			errors.Logf("ERROR", "Unknown reporter '%v'\n", args[0])
			listReporters(reports)
			Usage(ErrorCodes["opts"])
		}
		var rptr miners.Reporter
		rptr, args = reports[args[0]](reports, args[1:], fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

// innerReporter parses the reporter that a filtering reporter wraps.
func innerReporter(name string, reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "You must supply an inner reporter to %v\n", name)
		fmt.Fprintf(os.Stderr, "try: %v file\n", name)
		Usage(ErrorCodes["opts"])
	} else if _, has := reports[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", args[0])
		listReporters(reports)
		Usage(ErrorCodes["opts"])
	}
	return reports[args[0]](reports, args[1:], fmtr, conf)
}

func maxReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	rptr, args := innerReporter("max", reports, argv, fmtr, conf)
	return reporters.NewMax(rptr), args
}

func closedReporter(reports map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	rptr, args := innerReporter("closed", reports, argv, fmtr, conf)
	return reporters.NewClosed(rptr), args
}

func heapProfileReporter(rptrs map[string]Reporter, argv []string, fmtr lattice.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:a:e:",
		[]string{
			"help",
			"profile=",
			"after=",
			"every=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	after := 0
	every := 1
	profile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--profile":
			profile = oa.Arg()
		case "-a", "--after":
			after = ParseInt(oa.Arg())
		case "-e", "--every":
			every = ParseInt(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if profile == "" {
		fmt.Fprintf(os.Stderr, "You must supply a location to write the profile (-p) in heap-profile.\n")
		os.Exit(1)
	}
	r, err := reporters.NewHeapProfile(profile, after, every)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		Usage(ErrorCodes["opts"])
	}
	return r, args
}

var Reporters map[string]Reporter = map[string]Reporter{
	"log":          logReporter,
	"file":         fileReporter,
	"count":        countReporter,
	"chain":        chainReporter,
	"max":          maxReporter,
	"closed":       closedReporter,
	"heap-profile": heapProfileReporter,
}

// ReporterNames lists the reporters of reports in sorted order.
func ReporterNames(reports map[string]Reporter) []string {
	names := make([]string, 0, len(reports))
	for k := range reports {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func listReporters(reports map[string]Reporter) {
	fmt.Fprintln(os.Stderr, "Reporters:")
	for _, k := range ReporterNames(reports) {
		fmt.Fprintln(os.Stderr, "  ", k)
	}
}

// Mode parses the options of a mining mode and returns a constructor for
// the miner it names.
type Mode func(argv []string, conf *config.Config) (func(*itemset.Database) miners.Miner, []string)

func Main(args []string, conf *config.Config, modes map[string]Mode) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply an input path\n")
		Usage(ErrorCodes["opts"])
	}
	inputPath := AssertFileOrDirExists(args[0])
	args = args[1:]

	getInput := func() (io.Reader, func(), error) {
		return Input(inputPath)
	}

	var construct func(*itemset.Database) miners.Miner
	if len(args) >= 1 && modes[args[0]] != nil {
		construct, args = modes[args[0]](args[1:], conf)
	} else if conf.Miner != "" && modes[conf.Miner] != nil {
		construct, args = modes[conf.Miner](nil, conf)
	} else {
		if len(args) < 1 {
			fmt.Fprintf(os.Stderr, "You must supply a mode\n")
		} else {
			fmt.Fprintf(os.Stderr, "Unknown mining mode '%v'\n", args[0])
		}
		fmt.Fprintln(os.Stderr, "Modes:")
		for k := range modes {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}

	switch conf.Loader {
	case "int":
		return run(conf, getInput, itemset.LoadInts, construct, args)
	default:
		return run(conf, getInput, itemset.LoadStrings, construct, args)
	}
}

func run[T cmp.Ordered](
	conf *config.Config,
	getInput func() (io.Reader, func(), error),
	load func(io.Reader) ([][]T, error),
	construct func(*itemset.Database) miners.Miner,
	args []string,
) int {
	errors.Logf("INFO", "Got configuration about to load dataset")
	db, idx, err := loadDatabase(getInput, load)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return ErrorCodes["badinput"]
	}
	errors.Logf("INFO", "loaded %d transactions over %d distinct items", db.N(), idx.Size())
	fmtr := &itemset.Formatter[T]{Index: idx}

	var rptr miners.Reporter
	if len(args) == 0 {
		if conf.Output == "" {
			rptr, _ = Reporters["log"](Reporters, nil, fmtr, conf)
		} else {
			rptr, _ = Reporters["chain"](Reporters, []string{"log", "file"}, fmtr, conf)
		}
	} else if _, has := Reporters[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", args[0])
		listReporters(Reporters)
		Usage(ErrorCodes["opts"])
	} else {
		rptr, args = Reporters[args[0]](Reporters, args[1:], fmtr, conf)
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unconsumed commandline options: '%v'\n", strings.Join(args, " "))
		Usage(ErrorCodes["opts"])
	}

	miner := construct(db)
	errors.Logf("INFO", "loaded data, about to start mining at support %v", conf.MinSupport)
	patterns, mineErr := miner.Run(conf.MinSupport)
	if mineErr == nil {
		errors.Logf("INFO", "found %d frequent patterns", patterns.Size())
		mineErr = miners.Report(patterns, rptr)
	}

	code := 0
	if e := rptr.Close(); e != nil {
		errors.Logf("ERROR", "error closing %v", e)
		code = ErrorCodes["mining"]
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		code = ErrorCodes["mining"]
	} else {
		errors.Logf("INFO", "Done!")
	}
	return code
}

func loadDatabase[T cmp.Ordered](getInput func() (io.Reader, func(), error), load func(io.Reader) ([][]T, error)) (*itemset.Database, *itemset.Index[T], error) {
	input, closer, err := getInput()
	if err != nil {
		return nil, nil, err
	}
	defer closer()
	raw, err := load(input)
	if err != nil {
		return nil, nil, err
	}
	return itemset.Encode(raw)
}
