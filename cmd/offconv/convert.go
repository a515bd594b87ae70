// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/offconv/internal/convert"
	"github.com/pdiddy/offconv/internal/mesh"
	"github.com/pdiddy/offconv/pkg/types"
)

const defaultDir = "."

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert .off meshes without a matching .obj",
	Long: `Convert scans the input directory for .off files. For each one whose
.obj counterpart does not exist it reads the mesh, computes per-vertex normals
and writes the .obj. Existing outputs are reported and left untouched.

The run stops at the first mesh that cannot be read or written; outputs
written before the failure are kept.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// conversionConfig resolves the conversion settings from flags, the
// OFFCONV_CONVERSION_DIR environment variable and the config file.
func conversionConfig() types.ConversionConfig {
	dir := viper.GetString("conversion.dir")
	if dir == "" {
		dir = defaultDir
	}
	return types.ConversionConfig{Dir: dir}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig()
	_, err := convert.Run(mesh.Library{}, cfg.Dir, os.Stdout)
	return err
}
