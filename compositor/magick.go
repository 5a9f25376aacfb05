package compositor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/meysamhadeli/snapgrid/compositor/contracts"
	"github.com/meysamhadeli/snapgrid/compositor/models"
)

// DefaultBinary is the ImageMagick grid tool looked up on PATH.
const DefaultBinary = "montage"

// MagickCompositor shells out to ImageMagick's montage binary. Exactly one
// process is spawned per Composite call; its stdout and stderr are connected
// straight to the operator's terminal.
type MagickCompositor struct {
	Binary string
}

// NewMagickCompositor initializes a compositor around the given binary name,
// falling back to DefaultBinary when empty.
func NewMagickCompositor(binary string) contracts.IGridCompositor {
	if binary == "" {
		binary = DefaultBinary
	}
	return &MagickCompositor{Binary: binary}
}

// Composite runs the montage binary and waits for it synchronously. Any
// non-zero exit or spawn failure is returned as a *CompositionError carrying
// the command, its arguments, and the exit code when the process ran.
func (c *MagickCompositor) Composite(ctx context.Context, request models.MontageRequest) error {
	args := MontageArgs(request)

	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &CompositionError{Command: c.Binary, Args: args, ExitCode: exitCode, Err: err}
	}

	return nil
}

// MontageArgs builds the montage argument list: input files first, then the
// layout flags, output path last. The +frame, +shadow and +label switches
// turn per-tile decoration off.
func MontageArgs(request models.MontageRequest) []string {
	args := make([]string, 0, len(request.Files)+10)
	args = append(args, request.Files...)
	args = append(args,
		"-tile", fmt.Sprintf("%dx", request.TileColumns),
		"-geometry", fmt.Sprintf("%dx%d+0+0", request.CellWidth, request.CellHeight),
		"-background", request.Background,
		"+frame",
		"+shadow",
		"+label",
		request.OutputPath,
	)
	return args
}

// EstimateRows returns the number of grid rows needed to place count images
// across the given column count.
func EstimateRows(count int, columns int) int {
	if columns <= 0 {
		return 0
	}
	return (count + columns - 1) / columns
}
