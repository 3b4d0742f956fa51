package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"image2rle/internal/config"
	"image2rle/internal/fileutil"
	"image2rle/internal/imaging"
	"image2rle/internal/logging"
	"image2rle/internal/rle"
)

// Extension is appended to every output path in place of the input's own.
const Extension = ".rle"

// Options holds the per-run conversion parameters.
type Options struct {
	Polarity    imaging.Polarity
	Decode      imaging.Options
	ToolName    string
	LockTimeout time.Duration
}

// OptionsFromConfig maps configuration onto conversion options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Polarity: imaging.PolarityFor(cfg.Convert.Invert),
		Decode: imaging.Options{
			MaxWidth:  cfg.Convert.MaxWidth,
			MaxHeight: cfg.Convert.MaxHeight,
		},
		ToolName:    cfg.Convert.ToolName,
		LockTimeout: cfg.LockTimeout(),
	}
}

// Decoder turns an image file into grayscale intensities.
type Decoder interface {
	Load(path string) (*imaging.Image, error)
}

// Writer creates or overwrites path with whatever write produces.
type Writer interface {
	WriteFile(ctx context.Context, path string, write func(io.Writer) error) error
}

// Reporter receives per-file outcomes as they happen.
type Reporter interface {
	Converted(Result)
	Skipped(input string, err error)
}

// Result describes one input file.
type Result struct {
	Input      string
	Output     string
	Width      int
	Height     int
	Population int
	// Err is set when the input was skipped.
	Err error
}

// Report lists results in input order.
type Report struct {
	Results []Result
}

func (r Report) Converted() int { return len(r.Results) - r.Skipped() }

func (r Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

var skipTriage = logging.Triage{
	EventType: "decode_failed",
	Hint:      "check that the file exists and is a supported image",
	Impact:    "no pattern written for this file",
}

// Converter runs batches sequentially.
type Converter struct {
	opts     Options
	logger   *slog.Logger
	reporter Reporter
	decoder  Decoder
	writer   Writer
}

// Option customizes a Converter.
type Option func(*Converter)

// WithDecoder replaces the image decoder.
func WithDecoder(d Decoder) Option {
	return func(c *Converter) { c.decoder = d }
}

// WithWriter replaces the output writer.
func WithWriter(w Writer) Option {
	return func(c *Converter) { c.writer = w }
}

// WithReporter sets the per-file outcome sink. Nil keeps the silent default.
func WithReporter(r Reporter) Option {
	return func(c *Converter) {
		if r != nil {
			c.reporter = r
		}
	}
}

// New builds a Converter. A nil logger discards output.
func New(opts Options, logger *slog.Logger, options ...Option) *Converter {
	if opts.ToolName == "" {
		opts.ToolName = config.Default().Convert.ToolName
	}
	c := &Converter{
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "convert"),
		reporter: nopReporter{},
		decoder:  imageDecoder{opts: opts.Decode},
		writer:   lockedWriter{timeout: opts.LockTimeout},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Run converts every input in order. Decode failures are reported and
// skipped; any other failure aborts the batch and is returned together with
// the results gathered so far. An empty input list does nothing.
func (c *Converter) Run(ctx context.Context, inputs []string) (Report, error) {
	var report Report
	logger := logging.WithContext(ctx, c.logger)
	logger.Debug("batch starting",
		logging.Int("inputs", len(inputs)),
		logging.String("polarity", c.opts.Polarity.String()),
	)

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := c.convertFile(ctx, logger, input)
		if err != nil {
			var decodeErr *imaging.DecodeError
			if !errors.As(err, &decodeErr) {
				return report, err
			}
			res.Err = err
			report.Results = append(report.Results, res)
			logging.WarnWithContext(logger, "input skipped", skipTriage,
				logging.Path(logging.FieldInput, input),
				logging.Error(err),
			)
			c.reporter.Skipped(input, err)
			continue
		}

		report.Results = append(report.Results, res)
		c.reporter.Converted(res)
	}

	logger.Debug("batch finished",
		logging.Int("converted", report.Converted()),
		logging.Int("skipped", report.Skipped()),
	)
	return report, nil
}

func (c *Converter) convertFile(ctx context.Context, logger *slog.Logger, input string) (Result, error) {
	res := Result{Input: input}

	img, err := c.decoder.Load(input)
	if err != nil {
		var decodeErr *imaging.DecodeError
		if !errors.As(err, &decodeErr) {
			err = &imaging.DecodeError{Path: input, Err: err}
		}
		return res, err
	}

	grid, err := imaging.Binarize(img.Gray, c.opts.Polarity)
	if err != nil {
		return res, &imaging.DecodeError{Path: input, Err: err}
	}
	res.Width, res.Height = grid.Width(), grid.Height()
	res.Population = grid.Population()

	pattern := rle.NewPattern(grid, c.opts.ToolName, input)
	res.Output = fileutil.ReplaceExt(input, Extension)

	logger.Debug("input decoded",
		logging.Path(logging.FieldInput, input),
		logging.String("format", img.Format),
		logging.Int("width", res.Width),
		logging.Int("height", res.Height),
	)

	err = c.writer.WriteFile(ctx, res.Output, func(w io.Writer) error {
		_, err := pattern.WriteTo(w)
		return err
	})
	if err != nil {
		return res, fmt.Errorf("write %s: %w", res.Output, err)
	}

	logger.Info("pattern written",
		logging.Path(logging.FieldInput, input),
		logging.Path(logging.FieldOutput, res.Output),
		logging.Int("width", res.Width),
		logging.Int("height", res.Height),
		logging.Int("population", res.Population),
	)
	return res, nil
}

type imageDecoder struct {
	opts imaging.Options
}

func (d imageDecoder) Load(path string) (*imaging.Image, error) {
	return imaging.Load(path, d.opts)
}

type lockedWriter struct {
	timeout time.Duration
}

func (w lockedWriter) WriteFile(ctx context.Context, path string, write func(io.Writer) error) error {
	return fileutil.WriteFileLocked(ctx, path, fileutil.WriteOptions{LockTimeout: w.timeout}, write)
}

type nopReporter struct{}

func (nopReporter) Converted(Result) {}
func (nopReporter) Skipped(string, error) {}
