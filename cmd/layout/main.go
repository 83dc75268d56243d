package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"layout-visualizer/internal/layout"
	"layout-visualizer/internal/specs"
)

const logFlags = log.Ltime | log.Lshortfile

var debugLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	log.SetFlags(logFlags)

	if os.Getenv("LAYOUT_DEBUG") == "1" {
		debugLogger = log.New(os.Stderr, "[layout] ", log.Ltime|log.Lmsgprefix)
	}
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// floatFlag registers a float flag that stays nil unless it is given.
func floatFlag(name, usage string) **float64 {
	p := new(*float64)
	flag.Func(name, usage, func(s string) error {
		v, err := parseFinite(s)
		if err != nil {
			return err
		}
		*p = &v
		return nil
	})
	return p
}

func main() {
	configFile := flag.String("config", "", "Path to a spec file (default: built-in profile)")
	format := flag.String("format", "json", "Output format: json or geojson")
	leftHanded := flag.Bool("left", false, "Lay out for a left-handed bowler")
	noThumb := flag.Bool("no-thumb", false, "Lay out without a thumb hole")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	indent := flag.Bool("pretty", false, "Indent the output")
	drillingAngle := floatFlag("drilling-angle", "Override the drilling angle in degrees")
	pinToPap := floatFlag("pin-to-pap", "Override the pin to PAP distance in inches")
	valAngle := floatFlag("val-angle", "Override the VAL angle in degrees")

	flag.Parse()

	if *format != "json" && *format != "geojson" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(1)
	}

	profiles := []specs.Profile{specs.Defaults()}
	if *configFile != "" {
		var err error
		profiles, err = specs.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading specs: %v\n", err)
			os.Exit(1)
		}
	}
	debugLogger.Printf("loaded %d profiles", len(profiles))

	// CLI flags override the spec file
	flags := specs.Flags{
		LeftHanded:       *leftHanded,
		NoThumb:          *noThumb,
		DrillingAngle:    *drillingAngle,
		PinToPapDistance: *pinToPap,
		ValAngle:         *valAngle,
	}
	for i := range profiles {
		profiles[i].Resolve(flags)
	}

	start := time.Now()
	results := layout.ComputeAll(profiles, *workers)
	debugLogger.Printf("computed %d layouts in %v", len(results), time.Since(start))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error in profile %s: %v\n", r.Profile.Name, r.Err)
			failed++
		}
	}

	var out []byte
	var err error
	if *format == "geojson" {
		out, err = geoJSONOutput(results)
	} else {
		out, err = jsonOutput(results)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(render(out, *indent)); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d profiles failed\n", failed, len(results))
		os.Exit(1)
	}
}
