package config

import (
	"fmt"
	"github.com/meysamhadeli/snapgrid/constants/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"strings"
)

// Config represents the structure of the configuration file
type Config struct {
	Version        string   `mapstructure:"version"`
	Extensions     []string `mapstructure:"extensions"`
	TileColumns    int      `mapstructure:"tile_columns"`
	CellResolution string   `mapstructure:"cell_resolution"`
	Background     string   `mapstructure:"background"`
	Output         string   `mapstructure:"output"`
	Compositor     string   `mapstructure:"compositor"`
	MontageBinary  string   `mapstructure:"montage_binary"`
	Fingerprint    bool     `mapstructure:"fingerprint"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version:        "1.0.2",
	Extensions:     []string{"jpg", "jpeg", "png"},
	TileColumns:    5,
	CellResolution: "320x240",
	Background:     "white",
	Output:         "contact-sheet.jpg",
	Compositor:     "magick",
	MontageBinary:  "montage",
	Fingerprint:    false,
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file, flags, and environment variables, and returns the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Automatically read environment variables
	viper.AutomaticEnv()

	// Explicitly bind environment variables to config keys
	bindEnv()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the current directory
		viper.SetConfigName("snapgrid-config") // Name of config file (without extension)
		viper.AddConfigPath(cwd)               // Look in the current working directory

		// Support both JSON and YAML formats
		viper.SetConfigType("yaml") // Set default type
		if err := viper.ReadInConfig(); err != nil {
			// If YAML fails, try JSON
			viper.SetConfigType("json")
			_ = viper.ReadInConfig() // Fall back to defaults when neither exists
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("extensions", DefaultConfig.Extensions)
	viper.SetDefault("tile_columns", DefaultConfig.TileColumns)
	viper.SetDefault("cell_resolution", DefaultConfig.CellResolution)
	viper.SetDefault("background", DefaultConfig.Background)
	viper.SetDefault("output", DefaultConfig.Output)
	viper.SetDefault("compositor", DefaultConfig.Compositor)
	viper.SetDefault("montage_binary", DefaultConfig.MontageBinary)
	viper.SetDefault("fingerprint", DefaultConfig.Fingerprint)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv() {
	_ = viper.BindEnv("extensions", "SNAPGRID_EXTENSIONS")
	_ = viper.BindEnv("tile_columns", "SNAPGRID_TILE_COLUMNS")
	_ = viper.BindEnv("cell_resolution", "SNAPGRID_CELL_RESOLUTION")
	_ = viper.BindEnv("background", "SNAPGRID_BACKGROUND")
	_ = viper.BindEnv("output", "SNAPGRID_OUTPUT")
	_ = viper.BindEnv("compositor", "SNAPGRID_COMPOSITOR")
	_ = viper.BindEnv("montage_binary", "SNAPGRID_MONTAGE_BINARY")
	_ = viper.BindEnv("fingerprint", "SNAPGRID_FINGERPRINT")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("extensions", rootCmd.PersistentFlags().Lookup("extensions"))
	_ = viper.BindPFlag("tile_columns", rootCmd.PersistentFlags().Lookup("tile_columns"))
	_ = viper.BindPFlag("cell_resolution", rootCmd.PersistentFlags().Lookup("cell_resolution"))
	_ = viper.BindPFlag("background", rootCmd.PersistentFlags().Lookup("background"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("compositor", rootCmd.PersistentFlags().Lookup("compositor"))
	_ = viper.BindPFlag("montage_binary", rootCmd.PersistentFlags().Lookup("montage_binary"))
	_ = viper.BindPFlag("fingerprint", rootCmd.PersistentFlags().Lookup("fingerprint"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Specifies the path to a configuration file (JSON or YAML) that contains all the settings for the application.")

	rootCmd.PersistentFlags().StringSlice("extensions", DefaultConfig.Extensions, "Image extensions accepted during the directory scan (e.g., 'jpg,png').")
	rootCmd.PersistentFlags().Int("tile_columns", DefaultConfig.TileColumns, "Number of image cells per row in the output grid.")
	rootCmd.PersistentFlags().String("cell_resolution", DefaultConfig.CellResolution, "Per-cell resolution of the grid in WIDTHxHEIGHT form (e.g., '320x240').")
	rootCmd.PersistentFlags().String("background", DefaultConfig.Background, "Background color used to pad an incomplete final row.")
	rootCmd.PersistentFlags().String("output", DefaultConfig.Output, "Path of the contact-sheet image to write; format follows the extension ('.jpg' or '.png').")
	rootCmd.PersistentFlags().String("compositor", DefaultConfig.Compositor, "Grid compositor backend: 'magick' shells out to ImageMagick, 'native' composites in-process.")
	rootCmd.PersistentFlags().String("montage_binary", DefaultConfig.MontageBinary, "Name or path of the ImageMagick montage binary used by the 'magick' backend.")
	rootCmd.PersistentFlags().Bool("fingerprint", DefaultConfig.Fingerprint, "Hash file contents during the scan and report files with identical bytes.")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}

// GetConfigFileType returns the type of the configuration file based on its extension
func GetConfigFileType(filename string) string {
	if strings.HasSuffix(filename, ".json") {
		return "json"
	} else if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		return "yaml"
	}
	return ""
}
