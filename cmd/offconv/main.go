// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the offconv CLI. Invoked without a
// subcommand it converts every *.off file in the working directory to .obj,
// skipping files whose output already exists.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the offconv CLI.
var rootCmd = &cobra.Command{
	Use:   "offconv",
	Short: "Batch-convert OFF meshes to OBJ with vertex normals",
	Long: `offconv converts every .off mesh in a directory into a .obj file with
per-vertex normals. Files whose .obj output already exists are skipped, so
repeated runs only convert new inputs.

Running offconv without a subcommand is the same as "offconv convert".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the offconv build version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "offconv %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./offconv.yaml or ~/.config/offconv/offconv.yaml)")
	rootCmd.PersistentFlags().String("dir", "", "directory containing .off inputs (default: current directory)")
}

func initConfig() {
	_ = viper.BindPFlag("conversion.dir", rootCmd.PersistentFlags().Lookup("dir"))

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("offconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "offconv"))
		}
	}

	viper.SetEnvPrefix("OFFCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
