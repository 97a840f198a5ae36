// Package cmd provides CLI command implementations.
package cmd

// Exit codes for the sprout CLI.
const (
	// ExitSuccess indicates the command completed successfully, including
	// cancellation by operator choice.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates operator input failed validation.
	ExitValidationError = 2

	// ExitPreconditionError indicates the target directory cannot be used.
	ExitPreconditionError = 3

	// ExitNotFound indicates a template or template directory was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPreconditionError:
		return "Precondition Failed"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
