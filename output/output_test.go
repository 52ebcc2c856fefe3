package output

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"ribbons/ribbon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func TestSaveLossless(t *testing.T) {
	gen := ribbon.New(rand.New(rand.NewPCG(1, 2)), nil)
	img := gen.Generate().Image

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, Save(img, format, dir, "ribbon_1"))

			f, err := os.Open(filepath.Join(dir, "ribbon_1."+format))
			require.NoError(t, err)
			defer f.Close()

			decoded, kind, err := image.Decode(f)
			require.NoError(t, err)
			require.Equal(t, format, kind)
			require.Equal(t, img.Bounds(), decoded.Bounds())

			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					want := img.RGBAAt(x, y)
					got := color.RGBAModel.Convert(decoded.At(x, y)).(color.RGBA)
					require.Equal(t, want, got, "pixel (%d,%d)", x, y)
				}
			}

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary files must not be left behind")
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, Save(img, "png", dir, "twice"))
	require.NoError(t, Save(img, "png", dir, "twice"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveMode(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for _, format := range Formats {
		require.NoError(t, Save(img, format, dir, "mode"))

		info, err := os.Stat(filepath.Join(dir, "mode."+format))
		require.NoError(t, err)
		assert.Equal(t, fileMode, info.Mode().Perm(), format)
	}
}

func TestSaveConcurrent(t *testing.T) {
	dir := t.TempDir()
	img := ribbon.New(rand.New(rand.NewPCG(3, 4)), nil).Generate().Image

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = Save(img, "png", dir, fmt.Sprintf("ribbon_%d", i+1))
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "ribbon_%d", i+1)
	}
	first, err := os.ReadFile(filepath.Join(dir, "ribbon_1.png"))
	require.NoError(t, err)
	for i := 2; i <= len(errs); i++ {
		b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("ribbon_%d.png", i)))
		require.NoError(t, err)
		assert.Equal(t, first, b, "ribbon_%d", i)
	}
}

func TestSaveErrors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	t.Run("format", func(t *testing.T) {
		dir := t.TempDir()
		require.ErrorContains(t, Save(img, "gif", dir, "x"), "unsupported output format")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing dir", func(t *testing.T) {
		require.Error(t, Save(img, "png", filepath.Join(t.TempDir(), "missing"), "x"))
	})
}
