package cmd

import (
	"fmt"

	"github.com/meysamhadeli/snapgrid/constants/lipgloss"
	"github.com/meysamhadeli/snapgrid/finder/models"
	"github.com/meysamhadeli/snapgrid/timeline"
	"github.com/spf13/cobra"
)

// scanCmd lists the matched files without compositing anything, for use in
// scripts or to preview what 'montage' would pick up.
var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "List the date-named images beneath a directory in chronological order.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return fmt.Errorf("failed to initialize dependencies")
		}

		rootDir := rootDependencies.Cwd
		if len(args) > 0 {
			rootDir = args[0]
		}

		return handleScanCommand(rootDependencies, rootDir)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func handleScanCommand(rootDependencies *RootDependencies, rootDir string) error {
	report, err := rootDependencies.Finder.Search(models.SearchCriteria{
		RootDirectory: rootDir,
		Extensions:    rootDependencies.Config.Extensions,
		Fingerprint:   rootDependencies.Config.Fingerprint,
	})
	if err != nil {
		return err
	}

	printScanNotices(report)

	if len(report.Files) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No matching images found."))
		return nil
	}

	sorted := timeline.SortByDate(report.Files)
	for _, file := range sorted {
		fmt.Printf("%s  %s\n", file.TakenAt.Format("2006-01-02"), file.AbsolutePath)
	}

	stats := timeline.Summarize(sorted)
	fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("%d image(s) spanning %d day(s) (%s → %s)",
		len(sorted), stats.DaySpan, stats.Earliest.Format("2006-01-02"), stats.Latest.Format("2006-01-02"))))

	return nil
}
