package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

// writeHalves stores an 8×6 PNG, red on the left and blue on the right.
func writeHalves(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			c := color.NRGBA{R: 220, G: 30, B: 30, A: 255}
			if x >= 4 {
				c = color.NRGBA{R: 30, G: 30, B: 220, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "halves.png")
	require.NoError(t, writePNG(path, img))
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"fhseg"}, args...))
	return out.String(), err
}

// TestApp_ColorSpaces segments the two-colour image in every colour space
// and paint mode.
func TestApp_ColorSpaces(t *testing.T) {
	in := writeHalves(t)
	for _, space := range []string{"rgb", "lab", "gray"} {
		for _, paint := range []string{"palette", "mean"} {
			t.Run(space+"/"+paint, func(t *testing.T) {
				outPath := filepath.Join(t.TempDir(), "out.png")
				stdout, err := runApp(t,
					"--input", in, "--output", outPath,
					"--k", "10", "--min-size", "4", "--conn", "4",
					"--color-space", space, "--paint", paint)
				require.NoError(t, err)
				assert.Contains(t, stdout, "2 segments")

				f, err := os.Open(outPath)
				require.NoError(t, err)
				defer f.Close()
				preview, err := png.Decode(f)
				require.NoError(t, err)
				assert.Equal(t, image.Rect(0, 0, 8, 6), preview.Bounds())
				assert.NotEqual(t, preview.At(0, 0), preview.At(7, 5))
			})
		}
	}
}

// TestApp_MeanPaintKeepsColours checks that mean painting reproduces the
// flat input colours.
func TestApp_MeanPaintKeepsColours(t *testing.T) {
	in := writeHalves(t)
	outPath := filepath.Join(t.TempDir(), "out.png")
	_, err := runApp(t, "-i", in, "-o", outPath, "--k", "10", "--min-size", "4", "--paint", "mean")
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	preview, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, _ := preview.At(1, 1).RGBA()
	assert.Equal(t, []uint32{220, 30, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}

// TestApp_BadFlags reports every invalid flag together and returns the
// error to the caller instead of exiting the process.
func TestApp_BadFlags(t *testing.T) {
	exiter := cli.OsExiter
	cli.OsExiter = func(code int) { t.Fatalf("app exited with code %d", code) }
	t.Cleanup(func() { cli.OsExiter = exiter })

	in := writeHalves(t)

	_, err := runApp(t, "--input", in, "--conn", "6", "--metric", "cosine")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)

	_, err = runApp(t, "--input", in, "--k", "-3", "--workers", "-1")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)

	_, err = runApp(t, "--input", in, "--color-space", "hsv")
	assert.Error(t, err)

	_, err = runApp(t, "--input", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

// TestApp_ModeFlagsCheckedBeforeDecode rejects bad --color-space and --paint
// values without opening the input.
func TestApp_ModeFlagsCheckedBeforeDecode(t *testing.T) {
	exiter := cli.OsExiter
	cli.OsExiter = func(code int) { t.Fatalf("app exited with code %d", code) }
	t.Cleanup(func() { cli.OsExiter = exiter })

	missing := filepath.Join(t.TempDir(), "missing.png")
	_, err := runApp(t, "--input", missing, "--color-space", "hsv", "--paint", "random")
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "--color-space")
	assert.Contains(t, errs[1].Error(), "--paint")
	assert.False(t, os.IsNotExist(err))
}
