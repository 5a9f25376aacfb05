package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/meysamhadeli/snapgrid/constants/lipgloss"
	"github.com/meysamhadeli/snapgrid/finder/models"
	"github.com/meysamhadeli/snapgrid/timeline"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/cobra"
)

// inspectCmd cross-checks filename dates against EXIF capture dates. Files
// without readable EXIF metadata are counted but not treated as errors.
var inspectCmd = &cobra.Command{
	Use:   "inspect [directory]",
	Short: "Report images whose filename date disagrees with their EXIF capture date.",
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

		return handleInspectCommand(rootDependencies, rootDir)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func handleInspectCommand(rootDependencies *RootDependencies, rootDir string) error {
	report, err := rootDependencies.Finder.Search(models.SearchCriteria{
		RootDirectory: rootDir,
		Extensions:    rootDependencies.Config.Extensions,
	})
	if err != nil {
		return err
	}

	if len(report.Files) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No matching images found."))
		return nil
	}

	var mismatches, unreadable int
	for _, file := range report.Files {
		exifDate, err := exifCaptureDate(file.AbsolutePath)
		if err != nil {
			unreadable++
			continue
		}

		nameDate := timeline.ParseDate(file.Basename)
		if exifDate.Format("20060102") != nameDate.Format("20060102") {
			mismatches++
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%s: filename says %s, EXIF says %s",
				file.AbsolutePath, nameDate.Format("2006-01-02"), exifDate.Format("2006-01-02"))))
		}
	}

	fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("%d image(s) checked, %d mismatch(es), %d without EXIF data",
		len(report.Files), mismatches, unreadable)))

	return nil
}

func exifCaptureDate(path string) (captured time.Time, err error) {
	file, err := os.Open(path)
	if err != nil {
		return captured, err
	}
	defer file.Close()

	meta, err := exif.Decode(file)
	if err != nil {
		return captured, err
	}

	return meta.DateTime()
}
