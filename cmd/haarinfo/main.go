// Command haarinfo prints the coefficient band layout of the 1-D Haar
// discrete wavelet transform for a given signal length.
//
// Usage:
//
//	haarinfo [flags]
//
// Examples:
//
//	haarinfo -length 16
//	haarinfo -length 100 -mode classic
//	haarinfo -length 8 -demo
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavelet/dwt/core"
	"github.com/cwbudde/algo-wavelet/dwt/haar"
)

func main() {
	length := flag.Int("length", 8, "signal length in samples")
	modeName := flag.String("mode", "orthonormal", "normalization: orthonormal or classic")
	demo := flag.Bool("demo", false, "transform a ramp signal and print its coefficients")
	flag.Parse()

	mode, err := parseMode(*modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *length < 1 {
		fmt.Fprintln(os.Stderr, "haarinfo: length must be >= 1")
		os.Exit(2)
	}

	trunc := core.FloorPowerOfTwo(*length)
	stages := core.Stages(trunc)

	fmt.Printf("length:           %d\n", *length)
	fmt.Printf("truncated length: %d\n", trunc)
	fmt.Printf("stages:           %d\n", stages)
	fmt.Printf("mode:             %s\n\n", mode)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "band\tkind\trange\twidth")
	fmt.Fprintln(w, "0\tapproximation\t[0, 1)\t1")

	start := 1
	for b := 1; b <= stages; b++ {
		width := 1 << (b - 1)
		fmt.Fprintf(w, "%d\tdetail\t[%d, %d)\t%d\n", b, start, start+width, width)
		start += width
	}

	w.Flush()

	if *demo {
		printDemo(*length, mode)
	}
}

func parseMode(name string) (haar.Mode, error) {
	switch name {
	case "orthonormal":
		return haar.ModeOrthonormal, nil
	case "classic":
		return haar.ModeClassic, nil
	}
	return 0, fmt.Errorf("haarinfo: unknown mode %q (want orthonormal or classic)", name)
}

func printDemo(length int, mode haar.Mode) {
	signal := make([]float64, length)
	for i := range signal {
		signal[i] = float64(i + 1)
	}

	out, err := haar.Transform([][]float64{signal}, mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "haarinfo:", err)
		os.Exit(1)
	}

	fmt.Printf("\nramp input:   %v\n", signal)
	fmt.Printf("coefficients: %v\n", out[0])
	fmt.Printf("band energy:  %v\n", haar.BandEnergies(out[0]))
}
