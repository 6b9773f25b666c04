// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI: fetch
// PubMed papers for a query, keep the ones with company-affiliated
// authors, and emit JSON, YAML, or CSV.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/eutils"
	"github.com/pdiddy/get-papers-list/internal/output"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds the optional NCBI API key loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command; it runs the whole pipeline for one query.
var rootCmd = &cobra.Command{
	Use:   `get-papers-list "<query>"`,
	Short: "Fetch PubMed papers with company-affiliated authors",
	Long: `get-papers-list queries the PubMed E-utilities API for papers matching a
search query, keeps the papers where at least one author is affiliated with a
commercial (non-academic) organization, and prints the result as JSON. With
-f the result is written as CSV to the given file instead.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]

	debug, _ := cmd.Flags().GetBool("debug")
	filePath, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		MaxResults: viper.GetInt("max_results"),
		APIKey:     loadedSecrets["ncbi-api-key"],
		Debug:      debug,
	}

	traceW := io.Writer(io.Discard)
	if debug {
		traceW = os.Stderr
		fmt.Fprintf(traceW, "fetching papers for query: %q\n", query)
	}

	client := &eutils.Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}

	papers, err := pipeline.Run(context.Background(), client, query, cfg, traceW)
	if err != nil {
		return err
	}

	switch {
	case filePath != "":
		if err := output.WriteCSV(papers, filePath); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", filePath)
		return nil
	case format == "yaml":
		return output.WriteYAML(os.Stdout, papers)
	case format == "json" || format == "":
		return output.WriteJSON(os.Stdout, papers)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/config.yaml)")

	rootCmd.Flags().BoolP("debug", "d", false, "print pipeline stage traces to stderr")
	rootCmd.Flags().StringP("file", "f", "", "write results as CSV to this file instead of printing JSON")
	rootCmd.Flags().String("format", "json", "stdout output format: json or yaml")
	rootCmd.Flags().Int("max-results", 10, "maximum number of papers to fetch")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (0 = client default)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.AutomaticEnv()

	viper.SetDefault("user_agent", "get-papers-list/"+version)

	// Flags override config file values, which override the defaults above.
	viper.BindPFlag("max_results", rootCmd.Flags().Lookup("max-results"))
	viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
