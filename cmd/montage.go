package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"syscall"

	"github.com/meysamhadeli/snapgrid/compositor"
	compositor_models "github.com/meysamhadeli/snapgrid/compositor/models"
	"github.com/meysamhadeli/snapgrid/constants/lipgloss"
	"github.com/meysamhadeli/snapgrid/finder/models"
	"github.com/meysamhadeli/snapgrid/timeline"
	"github.com/meysamhadeli/snapgrid/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// resolutionPattern accepts per-cell resolutions of the WIDTHxHEIGHT form.
var resolutionPattern = regexp.MustCompile(`^([0-9]+)x([0-9]+)$`)

// MontageCmd: snapgrid montage
var montageCmd = &cobra.Command{
	Use:   "montage",
	Short: "Interactively scan a directory and composite the matched photos into a grid.",
	Long: `The 'montage' subcommand walks through the full pipeline in one interactive
session: it asks for the directory to scan and the image extensions to accept,
reports what it found (including skipped duplicate basenames and the covered
date range), then asks for the grid layout and output name before invoking the
configured compositor.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleMontageCommand(rootDependencies)
	},
}

func init() {
	rootCmd.AddCommand(montageCmd)
}

func handleMontageCommand(rootDependencies *RootDependencies) {

	// Create a context with cancel function
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go utils.GracefulShutdown(ctx, cancel)

	reader := bufio.NewReader(os.Stdin)

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	rootDir, ok := promptRootDirectory(ctx, reader, rootDependencies.Cwd)
	if !ok {
		return
	}

	extensions, ok := promptExtensions(ctx, reader, rootDependencies.Config.Extensions)
	if !ok {
		return
	}

	spinnerScan, _ := spinner.Start("Scanning for date-named images...")

	report, err := rootDependencies.Finder.Search(models.SearchCriteria{
		RootDirectory: rootDir,
		Extensions:    extensions,
		Fingerprint:   rootDependencies.Config.Fingerprint,
	})

	spinnerScan.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	printScanNotices(report)

	if len(report.Files) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No matching images found, nothing to composite."))
		return
	}

	sorted := timeline.SortByDate(report.Files)
	stats := timeline.Summarize(sorted)

	summary := fmt.Sprintf("%d images  •  %s → %s  •  %d day(s)",
		len(sorted),
		stats.Earliest.Format("2006-01-02"),
		stats.Latest.Format("2006-01-02"),
		stats.DaySpan,
	)
	fmt.Println(lipgloss.BoxStyle.Render(summary))

	columns, ok := promptTileColumns(ctx, reader, rootDependencies.Config.TileColumns)
	if !ok {
		return
	}

	cellWidth, cellHeight, ok := promptCellResolution(ctx, reader, rootDependencies.Config.CellResolution)
	if !ok {
		return
	}

	outputPath, ok := promptOutputPath(ctx, reader, rootDependencies.Cwd, rootDependencies.Config.Output)
	if !ok {
		return
	}

	rows := compositor.EstimateRows(len(sorted), columns)
	fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("Grid layout: %d column(s) x %d row(s), cells %dx%d", columns, rows, cellWidth, cellHeight)))

	accepted, err := utils.ConfirmPrompt(fmt.Sprintf("Write %s", outputPath), reader)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting user prompt: %v", err)))
		return
	}
	if !accepted {
		fmt.Println(lipgloss.Red.Render("❌ Composition cancelled."))
		return
	}

	request := compositor_models.MontageRequest{
		Files:       orderedPaths(sorted),
		TileColumns: columns,
		CellWidth:   cellWidth,
		CellHeight:  cellHeight,
		Background:  rootDependencies.Config.Background,
		OutputPath:  outputPath,
	}

	if err := rootDependencies.Compositor.Composite(ctx, request); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		return
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✔️ Contact sheet written to %s", outputPath)))
}

// printScanNotices surfaces the informational events collected during the
// scan: skipped duplicate basenames and identical-content findings.
func printScanNotices(report *models.ScanReport) {
	for _, dup := range report.Duplicates {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Skipped duplicate basename: %s (kept %s)", dup.Path, dup.KeptPath)))
	}
	for _, same := range report.SameContent {
		fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("Identical content: %s and %s", same.Path, same.OtherPath)))
	}
}

func promptRootDirectory(ctx context.Context, reader *bufio.Reader, cwd string) (string, bool) {
	for {
		fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Directory to scan (empty for %s):", cwd)))

		input, err := utils.InputPromptWithContext(ctx, reader)
		if err != nil {
			return "", false
		}
		if input == "" {
			input = cwd
		}

		info, err := os.Stat(input)
		if err != nil || !info.IsDir() {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("'%s' is not an existing directory.", input)))
			continue
		}

		return input, true
	}
}

func promptExtensions(ctx context.Context, reader *bufio.Reader, defaults []string) ([]string, bool) {
	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Extensions to accept, comma separated (empty for %s):", strings.Join(defaults, ","))))

	input, err := utils.InputPromptWithContext(ctx, reader)
	if err != nil {
		return nil, false
	}
	if input == "" {
		return defaults, true
	}

	var extensions []string
	for _, ext := range strings.Split(input, ",") {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			extensions = append(extensions, ext)
		}
	}
	if len(extensions) == 0 {
		return defaults, true
	}

	return extensions, true
}

func promptTileColumns(ctx context.Context, reader *bufio.Reader, fallback int) (int, bool) {
	for {
		fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Images per row (empty for %d):", fallback)))

		input, err := utils.InputPromptWithContext(ctx, reader)
		if err != nil {
			return 0, false
		}
		if input == "" {
			return fallback, true
		}

		columns, err := strconv.Atoi(input)
		if err != nil || columns <= 0 {
			fmt.Println(lipgloss.Red.Render("Images per row must be a positive integer."))
			continue
		}

		return columns, true
	}
}

func promptCellResolution(ctx context.Context, reader *bufio.Reader, fallback string) (int, int, bool) {
	for {
		fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Cell resolution as WIDTHxHEIGHT (empty for %s):", fallback)))

		input, err := utils.InputPromptWithContext(ctx, reader)
		if err != nil {
			return 0, 0, false
		}
		if input == "" {
			input = fallback
		}

		width, height, err := parseResolution(input)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			continue
		}

		return width, height, true
	}
}

func promptOutputPath(ctx context.Context, reader *bufio.Reader, cwd string, fallback string) (string, bool) {
	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Output file name, '.jpg' or '.png' (empty for %s):", fallback)))

	input, err := utils.InputPromptWithContext(ctx, reader)
	if err != nil {
		return "", false
	}
	if input == "" {
		input = fallback
	}

	if ext := strings.ToLower(filepath.Ext(input)); ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		input += ".jpg"
	}

	if !filepath.IsAbs(input) {
		input = filepath.Join(cwd, input)
	}

	return input, true
}

// parseResolution splits a WIDTHxHEIGHT string into its positive components.
func parseResolution(resolution string) (int, int, error) {
	match := resolutionPattern.FindStringSubmatch(resolution)
	if match == nil {
		return 0, 0, fmt.Errorf("invalid resolution '%s', expected WIDTHxHEIGHT (e.g. 320x240)", resolution)
	}

	width, _ := strconv.Atoi(match[1])
	height, _ := strconv.Atoi(match[2])
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("invalid resolution '%s', width and height must be positive", resolution)
	}

	return width, height, nil
}

func orderedPaths(files []models.ImageFile) []string {
	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = file.AbsolutePath
	}
	return paths
}
