package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/donkeywon/randrange/buildinfo"
	"github.com/donkeywon/randrange/errs"
	"github.com/donkeywon/randrange/log"
	"github.com/donkeywon/randrange/rands"
	"github.com/donkeywon/randrange/rands/draw"
	"github.com/donkeywon/randrange/stats"
	"github.com/donkeywon/randrange/util/conv"
	"github.com/donkeywon/randrange/util/jsons"
	"github.com/donkeywon/randrange/util/vtil"
	"github.com/donkeywon/randrange/util/yamls"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args)
	if err != nil {
		if isHelp(err) {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "randrange %s (revision %s, committed %s)\n", buildinfo.Version, buildinfo.Revision, buildinfo.CommitTime)
		return exitOK
	}
	if opts.Args.Low == "" || opts.Args.High == "" {
		fmt.Fprintln(stderr, "both LOW and HIGH are required")
		return exitUsage
	}
	err = vtil.Struct(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	zl, err := opts.Log.Build()
	if err != nil {
		fmt.Fprintln(stderr, "build logger fail:", err)
		return exitUsage
	}
	defer zl.Sync()
	l := log.New(zl)

	err = execute(ctx, opts, stdout, l)
	if err != nil {
		l.Error("draw failed", err, "type", opts.Type, "low", opts.Args.Low, "high", opts.Args.High)
		fmt.Fprintln(stderr, err)
		return exitFail
	}
	return exitOK
}

func execute(ctx context.Context, opts *Options, w io.Writer, l log.Logger) error {
	switch opts.Type {
	case TypeUint:
		low, high, err := parseBounds(opts, conv.ToUint64)
		if err != nil {
			return err
		}
		return drawAndWrite(ctx, opts, low, high, w, l)
	case TypeFloat:
		low, high, err := parseBounds(opts, conv.ToFloat)
		if err != nil {
			return err
		}
		return drawAndWrite(ctx, opts, low, high, w, l)
	default:
		low, high, err := parseBounds(opts, conv.ToInt64)
		if err != nil {
			return err
		}
		return drawAndWrite(ctx, opts, low, high, w, l)
	}
}

func parseBounds[T rands.Number](opts *Options, parse func(any) (T, error)) (T, T, error) {
	low, err := parse(opts.Args.Low)
	if err != nil {
		return low, low, errs.Wrapf(err, "invalid LOW %q for type %s", opts.Args.Low, opts.Type)
	}
	high, err := parse(opts.Args.High)
	if err != nil {
		return low, high, errs.Wrapf(err, "invalid HIGH %q for type %s", opts.Args.High, opts.Type)
	}
	return low, high, nil
}

func drawAndWrite[T rands.Number](ctx context.Context, opts *Options, low, high T, w io.Writer, l log.Logger) error {
	req := &draw.Request[T]{
		Low:        low,
		High:       high,
		Count:      opts.Count,
		Workers:    opts.Workers,
		Seed:       opts.Seed,
		KeepValues: !opts.Report,
	}

	l.Debug("draw start", "type", opts.Type, "low", low, "high", high, "count", opts.Count, "workers", opts.Workers)
	start := time.Now()
	res, err := draw.Run(ctx, req)
	if err != nil {
		return err
	}
	l.Debug("draw done", "cost", time.Since(start).String())

	if opts.Report {
		return writeReport(w, opts.Format, newReport(opts.Type, low, high, res.Histogram))
	}
	return writeValues(w, opts.Format, res.Values)
}

type report struct {
	Type    string        `json:"type"              yaml:"type"`
	Low     string        `json:"low"               yaml:"low"`
	High    string        `json:"high"              yaml:"high"`
	Summary stats.Summary `json:"summary"           yaml:"summary"`
	Uniform *bool         `json:"uniform,omitempty" yaml:"uniform,omitempty"`
	Reason  string        `json:"reason,omitempty"  yaml:"reason,omitempty"`
}

func newReport[T rands.Number](typ string, low, high T, h *stats.Histogram[T]) *report {
	r := &report{
		Type:    typ,
		Low:     conv.FormatNumber(low),
		High:    conv.FormatNumber(high),
		Summary: h.Summary(),
	}

	// uniformity is only judged when every integer of the range could be hit.
	width := float64(high) - float64(low) + 1
	if typ == TypeFloat || width > float64(r.Summary.Count) {
		return r
	}
	err := stats.NewUniformCheck(float64(low), float64(high)).Relaxed(r.Summary.Count).Check(r.Summary)
	uniform := err == nil
	r.Uniform = &uniform
	if err != nil {
		r.Reason = err.Error()
	}
	return r
}

func writeReport(w io.Writer, format string, r *report) error {
	switch format {
	case FormatJSON:
		enc := jsons.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		return yamls.NewEncoder(w).Encode(r)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "type\t%s\n", r.Type)
	fmt.Fprintf(bw, "range\t[%s, %s]\n", r.Low, r.High)
	fmt.Fprintf(bw, "count\t%d\n", r.Summary.Count)
	fmt.Fprintf(bw, "distinct\t%d\n", r.Summary.Distinct)
	fmt.Fprintf(bw, "min\t%s\n", conv.FormatNumber(r.Summary.Min))
	fmt.Fprintf(bw, "max\t%s\n", conv.FormatNumber(r.Summary.Max))
	fmt.Fprintf(bw, "mean\t%s\n", conv.FormatNumber(r.Summary.Mean))
	fmt.Fprintf(bw, "hits\t[%d, %d]\n", r.Summary.MinHits, r.Summary.MaxHits)
	if r.Uniform != nil {
		fmt.Fprintf(bw, "uniform\t%t\n", *r.Uniform)
	}
	if r.Reason != "" {
		fmt.Fprintf(bw, "reason\t%s\n", r.Reason)
	}
	return bw.Flush()
}

func writeValues[T rands.Number](w io.Writer, format string, values []T) error {
	switch format {
	case FormatJSON:
		return jsons.NewEncoder(w).Encode(values)
	case FormatYAML:
		return yamls.NewEncoder(w).Encode(values)
	}

	bw := bufio.NewWriter(w)
	for _, v := range values {
		bw.WriteString(conv.FormatNumber(v))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
