package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polysym/dbg"
	"github.com/osuushi/polysym/digits"
	"github.com/osuushi/polysym/symmetry"
)

var (
	app     = kingpin.New("polysym", "Mirror symmetry detection for simple polygons.")
	noColor = app.Flag("no-color", "Disable colored output.").Bool()

	check        = app.Command("check", "Report whether each polygon has an axis of mirror symmetry.")
	checkFiles   = check.Arg("files", "Polygon files. Files ending in .svg are read as SVG, anything else as \"x y\" lines with a blank line between polygons. Reads stdin if none are given.").ExistingFiles()
	tolerance    = check.Flag("tolerance", "Absolute tolerance for float comparisons.").Envar("POLYSYM_TOLERANCE").Default(fmt.Sprint(symmetry.DefaultTolerance.Abs)).Float64()
	relTolerance = check.Flag("rel-tolerance", "Relative tolerance for float comparisons.").Envar("POLYSYM_REL_TOLERANCE").Default(fmt.Sprint(symmetry.DefaultTolerance.Rel)).Float64()
	parallel     = check.Flag("parallel", "Check candidate axes concurrently.").Bool()
	verbose      = check.Flag("verbose", "Log rejected candidate axes to stderr.").Short('v').Bool()
	pngDir       = check.Flag("png", "Render each polygon and its axis into this directory.").String()
	showImage    = check.Flag("imgcat", "Print each rendering inline in the terminal (iTerm only). Implies --png, using a temp directory if none is given.").Bool()

	digitsCmd      = app.Command("digits", "Tools for the string \"123456789101112...\".")
	generate       = digitsCmd.Command("generate", "Write the integers from 1 up to LENGTH-1 to a file.")
	generateLength = generate.Arg("length", "One more than the last integer written.").Required().Int64()
	generatePath   = generate.Arg("path", "Output file.").Required().String()
	compare        = digitsCmd.Command("compare", "Compare computed characters against a generated solution file.")
	compareFile    = compare.Arg("solution", "File written by digits generate.").Required().ExistingFile()
	compareOffsets = compare.Flag("offset", "Offset to compare. Repeatable. Defaults to runs near 0, 1e6, 1e9 and 1e12.").Int64List()
)

func main() {
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	switch command {
	case check.FullCommand():
		opts := checkOptions{
			files:     *checkFiles,
			tolerance: symmetry.Tolerance{Abs: *tolerance, Rel: *relTolerance},
			parallel:  *parallel,
			pngDir:    *pngDir,
			imgcat:    *showImage,
		}
		if *verbose {
			opts.log = log.New(os.Stderr, "", 0)
		}
		ok, err := runCheck(os.Stdin, os.Stdout, au, opts)
		app.FatalIfError(err, "check")
		if !ok {
			os.Exit(1)
		}
	case generate.FullCommand():
		app.FatalIfError(digits.GenerateFile(*generatePath, *generateLength), "generate")
	case compare.FullCommand():
		failures, err := runCompare(os.Stdout, au, *compareFile, *compareOffsets)
		app.FatalIfError(err, "compare")
		if failures > 0 {
			os.Exit(1)
		}
	}
}

type checkOptions struct {
	// Read from stdin if empty
	files     []string
	tolerance symmetry.Tolerance
	parallel  bool
	// Trace of rejected candidates; nil for none
	log    *log.Logger
	pngDir string
	imgcat bool
}

type namedPolygon struct {
	source  string
	polygon symmetry.Polygon
}

func readInputs(stdin io.Reader, files []string) ([]*namedPolygon, error) {
	if len(files) == 0 {
		polygons, err := symmetry.ReadPolygons(stdin)
		return name("stdin", polygons), errors.Wrap(err, "stdin")
	}

	var result []*namedPolygon
	for _, path := range files {
		polygons, err := readFile(path)
		if err != nil {
			return nil, errors.Wrap(err, path)
		}
		result = append(result, name(path, polygons)...)
	}
	return result, nil
}

func readFile(path string) ([]symmetry.Polygon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return symmetry.LoadSVG(file)
	}
	return symmetry.ReadPolygons(file)
}

func name(source string, polygons []symmetry.Polygon) []*namedPolygon {
	result := make([]*namedPolygon, len(polygons))
	for i, polygon := range polygons {
		result[i] = &namedPolygon{source: source, polygon: polygon}
	}
	return result
}

// Returns false if any polygon was rejected as invalid input.
func runCheck(stdin io.Reader, out io.Writer, au aurora.Aurora, opts checkOptions) (bool, error) {
	inputs, err := readInputs(stdin, opts.files)
	if err != nil {
		return false, err
	}

	detector := &symmetry.Detector{
		Tolerance: opts.tolerance,
		Parallel:  opts.parallel,
		Log:       opts.log,
	}

	dir := opts.pngDir
	if opts.imgcat && dir == "" {
		// The images are only needed long enough to print them
		dir, err = os.MkdirTemp("", "polysym")
		if err != nil {
			return false, errors.Wrap(err, "creating image directory")
		}
		defer os.RemoveAll(dir)
	}

	allValid := true
	for _, input := range inputs {
		label := fmt.Sprintf("%s: %s", input.source, dbg.Label(input.polygon.Name, input))
		if detector.Log != nil {
			detector.Log.Printf("%s: %# v", label, pretty.Formatter(input.polygon.Points))
		}

		axis, ok, err := findAxis(detector, input.polygon)
		if err != nil {
			fmt.Fprintf(out, "%s: %s\n", label, au.Red(err))
			allValid = false
			continue
		}
		if ok {
			fmt.Fprintf(out, "%s: %s (%s)\n", label, au.Green("symmetric"), axis)
		} else {
			fmt.Fprintf(out, "%s: %s\n", label, au.Yellow("not symmetric"))
		}

		if dir != "" {
			var drawnAxis *symmetry.Axis
			if ok {
				drawnAxis = &axis
			}
			path := filepath.Join(dir, dbg.Label(input.polygon.Name, input)+".png")
			poly := input.polygon
			if err := symmetry.SavePNG(path, poly, drawnAxis, symmetry.FitScale(poly, 400)); err != nil {
				return false, err
			}
			if opts.imgcat {
				if err := symmetry.Preview(path, out); err != nil {
					return false, err
				}
			}
		}
	}
	return allValid, nil
}

func findAxis(detector *symmetry.Detector, poly symmetry.Polygon) (axis symmetry.Axis, ok bool, err error) {
	defer func() {
		if recoveredErr := symmetry.HandleSymmetryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	axis, ok = detector.FindAxis(poly)
	return axis, ok, nil
}

// Returns the number of offsets which didn't match.
func runCompare(out io.Writer, au aurora.Aurora, solutionPath string, offsets []int64) (int, error) {
	file, err := os.Open(solutionPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	if len(offsets) == 0 {
		offsets = digits.DefaultOffsets()
	}
	fmt.Fprintf(out, "opening file %s\n", solutionPath)
	report, err := digits.Compare(file, offsets)
	if err != nil {
		return 0, err
	}
	if err := report.Write(out, au); err != nil {
		return 0, err
	}
	return report.Failures(), nil
}
