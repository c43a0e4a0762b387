package config

// Source indicates where an option value came from.
type Source string

// Option source constants.
const (
	// SourceGlobal indicates the value came from the global options file
	// (~/.config/unity-builder/options.yaml).
	SourceGlobal Source = "global"

	// SourceLocal indicates the value came from the local options file
	// (.unity-builder.yaml in the git root).
	SourceLocal Source = "local"

	// SourceFile indicates the value came from a file named on the command line.
	SourceFile Source = "file"

	// SourceFlag indicates the value was set via a --set flag.
	SourceFlag Source = "flag"
)
