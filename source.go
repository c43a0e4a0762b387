package buildinput

// Source indicates which input source supplied a resolved value.
type Source string

// Input source constants, listed from highest to lowest precedence.
const (
	// SourceCIInput indicates the value came from the CI platform's native
	// input mechanism (GitHub Actions "with:" inputs).
	SourceCIInput Source = "ci-input"

	// SourceOption indicates the value came from the explicit option map
	// (command-line flags and option files).
	SourceOption Source = "option"

	// SourceEnv indicates the value came from an environment variable named
	// exactly like the key.
	SourceEnv Source = "env"

	// SourceEnvFormatted indicates the value came from the environment
	// variable named ToEnvVarFormat(key).
	SourceEnvFormatted Source = "env-formatted"

	// SourceDefault indicates no source supplied a value.
	SourceDefault Source = "default"
)
