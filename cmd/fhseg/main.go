// Package main is the fhseg command: it segments an image file and writes a
// preview with every segment painted in one colour.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/fhseg/edges"
	"github.com/katalvlaran/fhseg/segment"
)

const (
	// Flags.
	flagInput      = "input"
	flagOutput     = "output"
	flagK          = "k"
	flagMinSize    = "min-size"
	flagConn       = "conn"
	flagMetric     = "metric"
	flagColorSpace = "color-space"
	flagWorkers    = "workers"
	flagPaint      = "paint"
	flagDebug      = "debug"

	colorSpaceRGB  = "rgb"
	colorSpaceLab  = "lab"
	colorSpaceGray = "gray"

	paintPalette = "palette"
	paintMean    = "mean"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "fhseg",
		Usage: "graph-based image segmentation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagInput,
				Aliases:  []string{"i"},
				Usage:    "image to segment (png, jpeg, gif, bmp, tiff, webp) `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "write the painted segmentation as PNG to `FILE`",
			},
			&cli.Float64Flag{
				Name:  flagK,
				Value: segment.DefaultK,
				Usage: "granularity; larger values give fewer, larger segments",
			},
			&cli.IntFlag{
				Name:  flagMinSize,
				Value: segment.DefaultMinSize,
				Usage: "smallest segment in pixels, 0 to disable",
			},
			&cli.StringFlag{
				Name:  flagConn,
				Value: "8",
				Usage: "pixel connectivity: 4 or 8",
			},
			&cli.StringFlag{
				Name:  flagMetric,
				Value: edges.Euclidean.Name,
				Usage: fmt.Sprintf("colour difference, one of %v", edges.MetricNames()),
			},
			&cli.StringFlag{
				Name:  flagColorSpace,
				Value: colorSpaceRGB,
				Usage: "bands compared: rgb, lab or gray",
			},
			&cli.IntFlag{
				Name:  flagWorkers,
				Value: 1,
				Usage: "goroutines building edges, 0 for one per CPU",
			},
			&cli.StringFlag{
				Name:  flagPaint,
				Value: paintPalette,
				Usage: "preview colours: palette or mean",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Action: segmentAction,
		// Errors go back to main instead of cli.OsExiter.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
