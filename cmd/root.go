package cmd

import (
	"fmt"
	"os"

	"github.com/meysamhadeli/snapgrid/compositor"
	compositor_contracts "github.com/meysamhadeli/snapgrid/compositor/contracts"
	"github.com/meysamhadeli/snapgrid/config"
	"github.com/meysamhadeli/snapgrid/constants/lipgloss"
	"github.com/meysamhadeli/snapgrid/finder"
	finder_contracts "github.com/meysamhadeli/snapgrid/finder/contracts"
	"github.com/spf13/cobra"
)

// RootDependencies holds the wired services shared by every subcommand.
type RootDependencies struct {
	Config     *config.Config
	Cwd        string
	Finder     finder_contracts.IImageFinder
	Compositor compositor_contracts.IGridCompositor
}

var rootCmd = &cobra.Command{
	Use:   "snapgrid",
	Short: "Build a contact-sheet grid image from date-named photos.",
	Long: `snapgrid scans a directory tree for image files whose names start with an
8-digit date (YYYYMMDD), sorts them chronologically, and composites them into a
single contact-sheet grid image via ImageMagick's montage tool or an in-process
compositor.`,
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// handleRootCommand loads configuration and wires the finder and the selected
// compositor backend for the subcommand handlers.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigs(rootCmd, cwd)

	deps := &RootDependencies{
		Config: cfg,
		Cwd:    cwd,
		Finder: finder.NewImageFinder(),
	}

	switch cfg.Compositor {
	case "native":
		deps.Compositor = compositor.NewNativeCompositor()
	default:
		deps.Compositor = compositor.NewMagickCompositor(cfg.MontageBinary)
	}

	return deps
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}
