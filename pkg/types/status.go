// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates what a conversion pass did with one input file.
type ConversionStatus string

const (
	// ConversionDone means the output file was written during this pass.
	ConversionDone ConversionStatus = "converted"
	// ConversionSkipped means the output file already existed and was left untouched.
	ConversionSkipped ConversionStatus = "skipped"
)
