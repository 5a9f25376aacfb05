package compositor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"github.com/meysamhadeli/snapgrid/compositor/contracts"
	"github.com/meysamhadeli/snapgrid/compositor/models"
	"golang.org/x/image/draw"
)

// NativeCompositor builds the grid in-process instead of shelling out. It
// honors the same contract as the montage invocation: fixed column count,
// auto-computed rows, background-padded final row, aspect-fit scaling into
// each cell, no spacing or decoration.
type NativeCompositor struct{}

// NewNativeCompositor initializes a new NativeCompositor.
func NewNativeCompositor() contracts.IGridCompositor {
	return &NativeCompositor{}
}

func (c *NativeCompositor) Composite(ctx context.Context, request models.MontageRequest) error {
	cols := request.TileColumns
	rows := EstimateRows(len(request.Files), cols)
	if rows == 0 {
		return &CompositionError{Command: "native", ExitCode: -1, Err: fmt.Errorf("nothing to composite")}
	}

	cellW, cellH := request.CellWidth, request.CellHeight
	dst := image.NewRGBA(image.Rect(0, 0, cellW*cols, cellH*rows))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(backgroundColor(request.Background)), image.Point{}, draw.Src)

	for i, path := range request.Files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		src, err := decodeImage(path)
		if err != nil {
			return &CompositionError{Command: "native", Args: []string{path}, ExitCode: -1, Err: err}
		}

		col := i % cols
		row := i / cols

		// Scale preserving aspect ratio, centered in the cell.
		sz := src.Bounds().Size()
		dz := image.Point{X: cellW, Y: cellH}
		if sz.X*cellH > sz.Y*cellW {
			dz.Y = cellW * sz.Y / sz.X
		} else {
			dz.X = cellH * sz.X / sz.Y
		}

		origin := image.Point{X: cellW * col, Y: cellH * row}
		r := image.Rectangle{Min: origin, Max: origin.Add(dz)}
		r = r.Add(image.Point{X: cellW / 2, Y: cellH / 2}).
			Sub(image.Point{X: dz.X / 2, Y: dz.Y / 2})

		draw.CatmullRom.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
	}

	return encodeImage(request.OutputPath, dst)
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// encodeImage writes img to path, picking the codec from the extension.
// An existing file at path is overwritten.
func encodeImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return &CompositionError{Command: "native", Args: []string{path}, ExitCode: -1, Err: err}
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(out, img)
	default:
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 90})
	}

	if err != nil {
		return &CompositionError{Command: "native", Args: []string{path}, ExitCode: -1, Err: err}
	}
	return nil
}

func backgroundColor(name string) color.Color {
	switch strings.ToLower(name) {
	case "black":
		return color.Black
	case "gray", "grey":
		return color.Gray{Y: 0x80}
	default:
		return color.White
	}
}
