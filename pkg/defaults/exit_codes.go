package defaults

// Exit codes for the CLI.
const (
	ExitSuccess       = 0 // Clean exit
	ExitParseError    = 1 // The request file could not be parsed
	ExitUserError     = 2 // Invalid arguments or configuration
	ExitInternalError = 4 // Unexpected internal error
)
