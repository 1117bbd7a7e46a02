package cmd

// Exit codes for the attest CLI
const (
	// ExitSuccess indicates all rendered tests passed
	ExitSuccess = 0

	// ExitTestFailure indicates the rendered results contain failures
	ExitTestFailure = 1

	// ExitParseError indicates a results file could not be parsed
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
