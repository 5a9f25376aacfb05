package compositor

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/meysamhadeli/snapgrid/compositor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestImage writes a solid-color square PNG and returns its path.
func writeTestImage(t *testing.T, dir string, name string, size int, fill color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()
	require.NoError(t, png.Encode(out, img))

	return path
}

// Test the full in-process composition: grid dimensions and padded final row
func TestNativeCompositor_GridDimensions(t *testing.T) {
	tempDir := t.TempDir()

	red := color.RGBA{R: 0xFF, A: 0xFF}
	files := []string{
		writeTestImage(t, tempDir, "20210101_a.png", 20, red),
		writeTestImage(t, tempDir, "20210102_b.png", 20, red),
		writeTestImage(t, tempDir, "20210103_c.png", 20, red),
	}

	outputPath := filepath.Join(tempDir, "sheet.png")
	native := NewNativeCompositor()

	err := native.Composite(context.Background(), models.MontageRequest{
		Files:       files,
		TileColumns: 2,
		CellWidth:   40,
		CellHeight:  40,
		Background:  "white",
		OutputPath:  outputPath,
	})
	require.NoError(t, err)

	out, err := os.Open(outputPath)
	require.NoError(t, err)
	defer out.Close()

	sheet, err := png.Decode(out)
	require.NoError(t, err)

	// 3 images across 2 columns -> 2 rows.
	assert.Equal(t, image.Rect(0, 0, 80, 80), sheet.Bounds())

	// The empty cell in the final row stays background white.
	r, g, b, _ := sheet.At(60, 60).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0xFFFF), g)
	assert.Equal(t, uint32(0xFFFF), b)

	// The first cell carries the scaled source image.
	r, _, _, _ = sheet.At(20, 20).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	_, g, _, _ = sheet.At(20, 20).RGBA()
	assert.Equal(t, uint32(0), g)
}

// Test that output overwrites an existing file
func TestNativeCompositor_OverwritesExistingOutput(t *testing.T) {
	tempDir := t.TempDir()

	file := writeTestImage(t, tempDir, "20210101_a.png", 10, color.RGBA{B: 0xFF, A: 0xFF})
	outputPath := filepath.Join(tempDir, "sheet.png")
	require.NoError(t, os.WriteFile(outputPath, []byte("stale"), 0644))

	native := NewNativeCompositor()
	err := native.Composite(context.Background(), models.MontageRequest{
		Files:       []string{file},
		TileColumns: 1,
		CellWidth:   10,
		CellHeight:  10,
		Background:  "white",
		OutputPath:  outputPath,
	})
	require.NoError(t, err)

	out, err := os.Open(outputPath)
	require.NoError(t, err)
	defer out.Close()

	_, err = png.Decode(out)
	assert.NoError(t, err)
}

// Test that an unreadable input surfaces as a CompositionError
func TestNativeCompositor_UndecodableInput(t *testing.T) {
	tempDir := t.TempDir()

	broken := filepath.Join(tempDir, "20210101_broken.jpg")
	require.NoError(t, os.WriteFile(broken, []byte("not an image"), 0644))

	native := NewNativeCompositor()
	err := native.Composite(context.Background(), models.MontageRequest{
		Files:       []string{broken},
		TileColumns: 1,
		CellWidth:   10,
		CellHeight:  10,
		Background:  "white",
		OutputPath:  filepath.Join(tempDir, "sheet.png"),
	})

	require.Error(t, err)
	var compErr *CompositionError
	assert.ErrorAs(t, err, &compErr)
}

// Test that an empty request is rejected instead of writing a zero-size image
func TestNativeCompositor_EmptyRequest(t *testing.T) {
	native := NewNativeCompositor()

	err := native.Composite(context.Background(), models.MontageRequest{
		TileColumns: 3,
		CellWidth:   10,
		CellHeight:  10,
		OutputPath:  filepath.Join(t.TempDir(), "sheet.png"),
	})

	require.Error(t, err)
}
