// Package app implements the application layer for bom.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"go.trai.ch/bom/internal/adapters/linear"
	"go.trai.ch/bom/internal/adapters/telemetry"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/bom/internal/core/ports"
	"go.trai.ch/bom/internal/engine/aggregator"
	"go.trai.ch/bom/internal/ui/output"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of circuit spans.
const TracerName = "bom"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	loader       ports.DocumentLoader
	prices       ports.PriceTable
	encoder      ports.BillEncoder
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	loader ports.DocumentLoader,
	prices ports.PriceTable,
	encoder ports.BillEncoder,
	log ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		loader:       loader,
		prices:       prices,
		encoder:      encoder,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithStreams replaces the standard output and error streams.
// This is primarily used for testing.
func (a *App) WithStreams(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// PriceOptions configuration for the Price method.
type PriceOptions struct {
	// ConfigPath is an explicit settings file. When empty, bom.yaml is searched upwards.
	ConfigPath string
	// Flags holds the values set on the command line. They win over the settings file.
	Flags domain.Settings
	// Trace prints every circuit resolution to stderr.
	Trace bool
}

// Price computes the bill of circuit as defined in file, writes it and
// checks the total against the configured limit.
func (a *App) Price(ctx context.Context, file, circuit string, opts PriceOptions) error {
	if circuit == "" {
		return domain.ErrNoCircuitSpecified
	}

	cfg, err := a.resolveSettings(opts.ConfigPath, opts.Flags)
	if err != nil {
		return err
	}

	docs, err := a.loader.Load(ctx, file)
	if err != nil {
		return err
	}

	if _, _, ok := docs.Resolve(circuit); !ok {
		err := zerr.Wrap(domain.ErrCircuitNotFound, fmt.Sprintf("there is no circuit called %s", circuit))
		return zerr.With(err, "file", file)
	}

	bill, err := a.compute(ctx, docs, circuit, cfg.detailed, opts.Trace)
	if err != nil {
		return err
	}

	if err := a.writeBill(bill, cfg); err != nil {
		return err
	}

	total := bill.Total()
	out := output.New(a.stderr)
	label := out.String(fmt.Sprintf("TOTAL PRICE OF '%s':", circuit)).Bold().String()
	_, _ = fmt.Fprintf(a.stderr, "%s %s\n", label, total.String())

	return domain.CheckLimit(total, decimal.NewFromInt(cfg.limit))
}

func (a *App) compute(
	ctx context.Context,
	docs *domain.DocumentSet,
	circuit string,
	detailed, trace bool,
) (*domain.Bill, error) {
	var tracer ports.Tracer = telemetry.NewNoOpTracer()
	if trace {
		renderer := linear.NewRenderer(a.stderr)
		shutdown := telemetry.Setup(renderer)
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
			_ = renderer.Stop()
		}()
		tracer = telemetry.NewOTelTracer(TracerName)
	}

	agg := aggregator.New(a.prices, a.logger, tracer)
	return agg.Compute(ctx, docs, circuit, aggregator.Options{Detailed: detailed})
}

func (a *App) writeBill(bill *domain.Bill, cfg settings) error {
	var buf bytes.Buffer
	if err := a.encoder.Encode(&buf, bill, cfg.format); err != nil {
		return err
	}

	if cfg.output == "" {
		if _, err := a.stdout.Write(buf.Bytes()); err != nil {
			return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
		}
		return nil
	}

	if err := os.WriteFile(cfg.output, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", cfg.output)
	}
	a.logger.Info(fmt.Sprintf("bill written to %s", cfg.output))
	return nil
}

// Circuits lists every circuit defined by file and the libraries it links,
// with the document each name resolves to.
func (a *App) Circuits(ctx context.Context, file string) error {
	docs, err := a.loader.Load(ctx, file)
	if err != nil {
		return err
	}

	base := ""
	if documents := docs.Documents(); len(documents) > 0 {
		base = filepath.Dir(documents[0].Path)
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	for _, ref := range docs.CircuitNames() {
		path := ref.Document
		if rel, relErr := filepath.Rel(base, path); relErr == nil {
			path = rel
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", ref.Name, path)
	}
	return w.Flush()
}

// Catalog lists every component key the price table knows.
func (a *App) Catalog(_ context.Context) error {
	for _, key := range a.prices.Keys() {
		if _, err := fmt.Fprintln(a.stdout, key.String()); err != nil {
			return zerr.Wrap(err, "failed to write catalog")
		}
	}
	return nil
}
