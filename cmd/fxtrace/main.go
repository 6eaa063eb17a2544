// Command fxtrace prints how an effect chain modulates a voice parameter.
//
// Usage:
//
//	fxtrace [flags]
//
// The chain is read from -config (YAML) or assembled from -effects. Effects
// are applied in order, so the first one wraps the voice directly. The
// parameter named by -param is read against a simulated clock.
//
// Examples:
//
//	fxtrace -effects vibrato -vibrato-rate 31.4 -vibrato-depth 20
//	fxtrace -effects vibrato,gate -param gate -rate 2000 -n 4000
//	fxtrace -config chain.yaml -rows 32
//	fxtrace -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sid/sid/effect"
	"github.com/cwbudde/algo-sid/sid/trace"
	"github.com/cwbudde/algo-sid/sid/voice"
)

func main() {
	configPath := flag.String("config", "", "YAML chain file")
	effects := flag.String("effects", "vibrato", "comma-separated effect types, innermost first")
	freq := flag.Float64("freq", 440, "base voice frequency")
	gate := flag.Bool("gate", true, "base voice gate")
	vibratoRate := flag.Float64("vibrato-rate", 10, "vibrato LFO rate in rad/s")
	vibratoDepth := flag.Float64("vibrato-depth", 100, "vibrato depth")
	gateRate := flag.Float64("gate-rate", 100, "gate square-wave rate")
	param := flag.String("param", voice.Frequency, "parameter to trace")
	rate := flag.Float64("rate", 1000, "reads per simulated second")
	start := flag.Float64("start", 0, "simulated start time in seconds")
	n := flag.Int("n", 1000, "number of reads")
	rows := flag.Int("rows", 16, "number of rows to print")
	list := flag.Bool("list", false, "list available effect types")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxtrace [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Traces a voice parameter through an effect chain.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fxtrace -effects vibrato,gate -param gate\n")
		fmt.Fprintf(os.Stderr, "  fxtrace -config chain.yaml\n")
		fmt.Fprintf(os.Stderr, "  fxtrace -list\n")
	}
	flag.Parse()

	reg := effect.DefaultRegistry()

	if *list {
		for _, t := range reg.Types() {
			fmt.Println(t)
		}
		return
	}

	base := voice.NewWith(*freq, *gate)
	nodes := effectsFromFlags(*effects, *vibratoRate, *vibratoDepth, *gateRate)

	if *configPath != "" {
		cfg, err := loadChainFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if cfg.Voice.Frequency != nil {
			_ = base.Set(voice.Frequency, voice.Number(*cfg.Voice.Frequency))
		}
		if cfg.Voice.Gate != nil {
			_ = base.Set(voice.Gate, voice.Bool(*cfg.Voice.Gate))
		}
		nodes = cfg.Effects
	}

	if len(nodes) == 0 {
		fmt.Fprintf(os.Stderr, "warning: empty effect chain, tracing the bare voice\n")
	}

	clock := effect.NewManualClock(*start)
	host, err := effect.Build(base, reg, nodes, effect.WithTimeSource(clock.Source()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	samples, err := trace.Sample(host, clock, *param, *n, trace.WithSampleRate(*rate), trace.WithStart(*start))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := trace.ApplyOptions(trace.WithSampleRate(*rate), trace.WithStart(*start))
	printTrace(samples, cfg, *param, *rows)
}

func printTrace(samples []float64, cfg trace.Config, param string, rows int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Time [s]\t%s\n--------\t%s\n", param, strings.Repeat("-", len(param))); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, i := range rowIndices(len(samples), rows) {
		if _, err := fmt.Fprintf(tw, "%.6f\t%.6g\n", cfg.TimeAt(i), samples[i]); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	s := trace.Summarize(samples)
	fmt.Printf("\nmin=%.6g max=%.6g mean=%.6g depth=%.6g transitions=%d\n",
		s.Min, s.Max, s.Mean, s.Depth, s.Transitions)

	if dom, err := trace.DominantRate(samples, cfg.SampleRate); err != nil {
		fmt.Fprintf(os.Stderr, "warning: no rate estimate: %v\n", err)
	} else {
		fmt.Printf("dominant rate=%.3f Hz\n", dom)
	}
}

// rowIndices picks up to rows evenly spaced indices in [0, n).
func rowIndices(n, rows int) []int {
	if n <= 0 || rows <= 0 {
		return nil
	}
	if rows >= n {
		rows = n
	}
	out := make([]int, rows)
	for r := range out {
		out[r] = r * n / rows
	}
	return out
}
