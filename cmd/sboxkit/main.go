// Command sboxkit is a small front end over the sboxkit library: it
// analyses an S-box's cryptographic quality, traces an AES-128 block
// through its 42 observable steps, and seals/opens analysis reports in a
// local encrypted cache.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nullsbox/sboxkit"
	"github.com/nullsbox/sboxkit/internal/encoding"
	"github.com/nullsbox/sboxkit/internal/reportcache"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "trace":
		err = runTrace(os.Args[2:])
	case "cache":
		err = runCache(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sboxkit: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sboxkit <analyze|trace|cache> [flags]")
}

func loadSBox(path string) (sboxkit.SBox, error) {
	var f *os.File
	var err error
	if path == "-" || path == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(path)
		if err != nil {
			return sboxkit.SBox{}, fmt.Errorf("open sbox file: %w", err)
		}
		defer f.Close()
	}
	values, err := encoding.ParseSBox(f)
	if err != nil {
		return sboxkit.SBox{}, err
	}
	return sboxkit.NewSBox(values)
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	sboxPath := fs.String("sbox", "-", "path to sbox file (decimal or 0x-hex tokens), - for stdin")
	cachePath := fs.String("cache", "", "optional path to write a sealed report cache")
	seed := fs.String("seed", "", "seed for the report cache key (required with -cache)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sbox, err := loadSBox(*sboxPath)
	if err != nil {
		return fmt.Errorf("load sbox: %w", err)
	}

	report, err := sboxkit.Analyze(context.Background(), [256]byte(sbox))
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	fmt.Printf("nonlinearity:             %d\n", report.Nonlinearity)
	fmt.Printf("differential uniformity:  %d\n", report.DifferentialUniformity)
	fmt.Printf("LAP max bias / LAP:       %d / %g\n", report.LAP.MaxBias, report.LAP.LAP)
	fmt.Printf("algebraic degree:         %d\n", report.AlgebraicDegree)
	fmt.Printf("SAC score / max:          %g / %g\n", report.SAC.Score, report.SAC.Max)
	fmt.Printf("BIC-NL min / mean:        %d / %g\n", report.BICNL.Min, report.BICNL.Mean)
	fmt.Printf("BIC-SAC max / mean:       %g / %g\n", report.BICSAC.Max, report.BICSAC.Mean)
	fmt.Printf("transparency order:       %g\n", report.TransparencyOrder)
	fmt.Printf("correlation immunity:     %d\n", report.CorrelationImmunity)
	fmt.Printf("balanced / bijection:     %v / %v\n", report.Balanced, report.Bijection)
	fmt.Printf("security level:           %s\n", report.Security.Level)
	for _, s := range report.Security.Strengths {
		fmt.Printf("  + %s\n", s)
	}
	for _, w := range report.Security.Weaknesses {
		fmt.Printf("  - %s\n", w)
	}

	if *cachePath != "" {
		if *seed == "" {
			return fmt.Errorf("-cache requires -seed")
		}
		sealed, err := reportcache.Seal(report, []byte(*seed))
		if err != nil {
			return fmt.Errorf("seal report: %w", err)
		}
		if err := os.WriteFile(*cachePath, sealed, 0o600); err != nil {
			return fmt.Errorf("write cache: %w", err)
		}
	}
	return nil
}

func runTrace(args []string) error {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	sboxPath := fs.String("sbox", "-", "path to sbox file, - for stdin")
	keyHex := fs.String("key", "", "16-byte key, hex")
	blockHex := fs.String("block", "", "16-byte plaintext (or ciphertext with -decrypt), hex")
	decrypt := fs.Bool("decrypt", false, "trace decryption instead of encryption")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyHex == "" || *blockHex == "" {
		return fmt.Errorf("trace requires -key and -block")
	}

	sbox, err := loadSBox(*sboxPath)
	if err != nil {
		return fmt.Errorf("load sbox: %w", err)
	}
	key, err := encoding.ParseBlock(*keyHex)
	if err != nil {
		return fmt.Errorf("parse key: %w", err)
	}
	block, err := encoding.ParseBlock(*blockHex)
	if err != nil {
		return fmt.Errorf("parse block: %w", err)
	}

	var steps []sboxkit.Step
	if *decrypt {
		steps, err = sboxkit.DecryptSteps(context.Background(), block, key, [256]byte(sbox))
	} else {
		steps, err = sboxkit.EncryptSteps(context.Background(), block, key, [256]byte(sbox))
	}
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	for _, s := range steps {
		fmt.Printf("round %2d  %-14s %3d%%  %s\n", s.Round, s.Operation, s.Progress, encoding.FormatBlock(s.State))
	}
	return nil
}

func runCache(args []string) error {
	fs := flag.NewFlagSet("cache", flag.ExitOnError)
	openPath := fs.String("open", "", "path to a sealed report cache to open and print")
	seed := fs.String("seed", "", "seed used to seal the cache")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *openPath == "" || *seed == "" {
		return fmt.Errorf("cache requires -open and -seed")
	}

	sealed, err := os.ReadFile(*openPath)
	if err != nil {
		return fmt.Errorf("read cache: %w", err)
	}
	var report sboxkit.Report
	if err := reportcache.Open(sealed, []byte(*seed), &report); err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	fmt.Printf("security level: %s\n", report.Security.Level)
	fmt.Printf("nonlinearity:   %d\n", report.Nonlinearity)
	return nil
}
