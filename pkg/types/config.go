// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Fixed conversion settings. The source and target extensions are not
// configurable; the output name is derived by replacing the final three
// characters of the input name with TargetExt.
const (
	SourceExt = "off"
	TargetExt = "obj"
)

// ConversionConfig holds settings for the conversion pass.
type ConversionConfig struct {
	// Dir is the directory scanned for *.off inputs (default ".").
	Dir string `json:"dir" yaml:"dir"`
}

// StatsFormat selects the output format of the stats command.
type StatsFormat string

const (
	StatsTable StatsFormat = "table"
	StatsJSON  StatsFormat = "json"
	StatsYAML  StatsFormat = "yaml"
)
