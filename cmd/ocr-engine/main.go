// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ocr-engine CLI: a single-file
// OCR-to-document pipeline. With --input, --output, and --format it runs
// once in batch mode; without them it prompts interactively.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ocr-engine/internal/ocr"
	"github.com/pdiddy/ocr-engine/internal/pipeline"
	"github.com/pdiddy/ocr-engine/internal/raster"
	"github.com/pdiddy/ocr-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ocr-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "ocr-engine",
	Short: "Convert an image or PDF to extracted text",
	Long: `ocr-engine runs OCR over a single JPEG, PNG, or PDF file and writes the
recognized text as a plain .txt file or as a re-flowed, paragraph-styled
.pdf document.

With --input, --output, and --format the conversion runs once and exits.
Without them, the tool prompts for each value interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		cfg := loadConfig()
		p := pipeline.New(
			ocr.NewTesseract(cfg.OCR),
			raster.NewFitz(),
			raster.NewCounter(),
			cfg,
			os.Stderr,
		)

		if input == "" || output == "" || format == "" {
			// Interactive mode; a closed stdin just ends the session.
			_ = p.Interactive(cmd.Context(), os.Stdin)
			return nil
		}

		if format != "txt" && format != "pdf" {
			return fmt.Errorf("invalid --format %q (expected txt or pdf)", format)
		}

		outPath := pipeline.OutputPath(output, format)
		if p.ProcessFile(cmd.Context(), input, outPath) {
			fmt.Printf("Success! Output saved to: %s\n", outPath)
		} else {
			fmt.Println("Failed to process the file.")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ocr-engine.yaml or ~/.config/ocr-engine/config.yaml)")
	rootCmd.Flags().String("input", "", "input file path (PDF or image)")
	rootCmd.Flags().String("output", "", "output file path")
	rootCmd.Flags().String("format", "", "output format (txt or pdf)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ocr-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ocr-engine"))
		}
	}

	viper.SetEnvPrefix("OCR_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig overlays viper settings on the built-in defaults.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()
	if v := viper.GetStringSlice("ocr.languages"); len(v) > 0 {
		cfg.OCR.Languages = v
	}
	if v := viper.GetInt("ocr.dpi"); v > 0 {
		cfg.OCR.DPI = v
	}
	if v := viper.GetFloat64("render.body_size"); v > 0 {
		cfg.Render.BodySize = v
	}
	if v := viper.GetFloat64("render.heading_size"); v > 0 {
		cfg.Render.HeadingSize = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
