package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/fhseg/edges"
	"github.com/katalvlaran/fhseg/gridgraph"
	"github.com/katalvlaran/fhseg/pixel"
	"github.com/katalvlaran/fhseg/segment"
)

// newLoggerConfig is a console config with colored levels and no stacktraces.
func newLoggerConfig(debug bool) zap.Config {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

func segmentAction(c *cli.Context) error {
	logger, err := newLoggerConfig(c.Bool(flagDebug)).Build()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := optionsFromFlags(c, logger)
	if err != nil {
		return err
	}

	img, format, err := loadImage(c.String(flagInput))
	if err != nil {
		return err
	}
	logger.Info("loaded image",
		zap.String("path", c.String(flagInput)),
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)

	rgb, err := pixel.FromImage(img)
	if err != nil {
		return err
	}
	res, err := runColorSpace(c.String(flagColorSpace), img, rgb, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d segments\n", res.NumSegments())

	out := c.String(flagOutput)
	if out == "" {
		return nil
	}
	colors, err := paintColors(c.String(flagPaint), res, rgb)
	if err != nil {
		return err
	}
	preview, err := res.Render(colors)
	if err != nil {
		return err
	}
	if err := writePNG(out, preview); err != nil {
		return err
	}
	logger.Info("wrote preview", zap.String("path", out))
	return nil
}

// optionsFromFlags maps flags onto segment options, reporting every bad flag.
func optionsFromFlags(c *cli.Context, logger *zap.Logger) ([]segment.Option, error) {
	var errs error
	conn, err := gridgraph.ParseConnectivity(c.String(flagConn))
	errs = multierr.Append(errs, err)
	metric, err := edges.MetricByName(c.String(flagMetric))
	errs = multierr.Append(errs, err)
	errs = multierr.Append(errs, checkChoice(flagColorSpace, c.String(flagColorSpace),
		colorSpaceRGB, colorSpaceLab, colorSpaceGray))
	errs = multierr.Append(errs, checkChoice(flagPaint, c.String(flagPaint), paintPalette, paintMean))
	if errs != nil {
		return nil, errs
	}

	opts := []segment.Option{
		segment.WithConnectivity(conn),
		segment.WithGranularity(c.Float64(flagK)),
		segment.WithMinSize(c.Int(flagMinSize)),
		segment.WithMetric(metric),
		segment.WithWorkers(c.Int(flagWorkers)),
		segment.WithLogger(logger),
	}
	o := segment.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// checkChoice returns an error unless value is one of choices, ignoring case.
func checkChoice(flag, value string, choices ...string) error {
	for _, ch := range choices {
		if strings.EqualFold(value, ch) {
			return nil
		}
	}
	return fmt.Errorf("--%s %q: want one of %s", flag, value, strings.Join(choices, ", "))
}

// runColorSpace segments img in the requested colour space.
func runColorSpace(space string, img image.Image, rgb *pixel.Planar[uint8], opts []segment.Option) (*segment.Result, error) {
	switch strings.ToLower(space) {
	case colorSpaceRGB:
		return segment.RunPlanar(rgb, opts...)
	case colorSpaceLab:
		lab, err := pixel.ToLab(rgb)
		if err != nil {
			return nil, err
		}
		return segment.RunPlanar(lab, opts...)
	case colorSpaceGray:
		gray, err := pixel.GrayFromImage(img)
		if err != nil {
			return nil, err
		}
		return segment.RunGray(gray, opts...)
	default:
		return nil, fmt.Errorf("unknown color space %q, want %s, %s or %s",
			space, colorSpaceRGB, colorSpaceLab, colorSpaceGray)
	}
}

// paintColors picks one colour per segment for the preview.
func paintColors(mode string, res *segment.Result, rgb *pixel.Planar[uint8]) ([]color.RGBA, error) {
	switch strings.ToLower(mode) {
	case paintPalette:
		return segment.Palette(res.NumSegments()), nil
	case paintMean:
		st, err := segment.ComputeStats(res, rgb)
		if err != nil {
			return nil, err
		}
		return st.Colors(), nil
	default:
		return nil, fmt.Errorf("unknown paint mode %q, want %s or %s", mode, paintPalette, paintMean)
	}
}

func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return png.Encode(f, img)
}
