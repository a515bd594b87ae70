// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/offconv/internal/mesh"
	"github.com/pdiddy/offconv/internal/stats"
	"github.com/pdiddy/offconv/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the .off meshes in the input directory",
	Long: `Stats reads every .off mesh in the input directory and prints its vertex
and triangle counts, attributes, bounding box, and whether the .obj output
already exists. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().String("format", string(types.StatsTable), "output format: table, json, or yaml")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	cfg := conversionConfig()

	summaries, err := stats.Inspect(mesh.Library{}, cfg.Dir)
	if err != nil {
		return err
	}

	switch types.StatsFormat(format) {
	case types.StatsTable:
		return stats.WriteTable(os.Stdout, summaries)
	case types.StatsJSON:
		return stats.WriteJSON(os.Stdout, summaries)
	case types.StatsYAML:
		return stats.WriteYAML(os.Stdout, summaries)
	default:
		return fmt.Errorf("unknown format %q: use table, json, or yaml", format)
	}
}
