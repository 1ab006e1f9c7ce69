package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/cart"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/shop"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (empty checkout, bad position, catalog unavailable)
	ExitCommandError = 2 // Command error (bad flags, unreadable config or database)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric     = "E000"
	ErrCodeConfig      = "E001"
	ErrCodeStorage     = "E002"
	ErrCodeCatalog     = "E003"
	ErrCodeUnknownID   = "E004"
	ErrCodeOutOfRange  = "E005"
	ErrCodeEmptyCart   = "E006"
	ErrCodeUnsupported = "E007"
	ErrCodeArgument    = "E008"
)

// Command-level error classes, wrapped around the cause with %w.
var (
	errConfig   = errors.New("invalid configuration")
	errStorage  = errors.New("storage unavailable")
	errArgument = errors.New("invalid argument")
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int    // ExitFailure or ExitCommandError
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// failure is how an error is reported: output code, exit code and summary.
type failure struct {
	code    string
	exit    int
	message string
}

func classify(err error) failure {
	switch {
	case errors.Is(err, errConfig):
		return failure{ErrCodeConfig, ExitCommandError, "invalid configuration"}
	case errors.Is(err, errStorage):
		return failure{ErrCodeStorage, ExitCommandError, "storage unavailable"}
	case errors.Is(err, errArgument):
		return failure{ErrCodeArgument, ExitCommandError, "invalid argument"}
	case errors.Is(err, shop.ErrCheckoutUnsupported):
		return failure{ErrCodeUnsupported, ExitCommandError, "checkout unavailable"}
	case errors.Is(err, catalog.ErrLoadFailure):
		return failure{ErrCodeCatalog, ExitFailure, "catalog unavailable"}
	case errors.Is(err, shop.ErrUnknownProduct):
		return failure{ErrCodeUnknownID, ExitFailure, "unknown product"}
	case errors.Is(err, cart.ErrOutOfRange):
		return failure{ErrCodeOutOfRange, ExitFailure, "invalid cart position"}
	case errors.Is(err, cart.ErrEmptyCheckout):
		return failure{ErrCodeEmptyCart, ExitFailure, "empty cart"}
	default:
		return failure{ErrCodeGeneric, ExitFailure, "command failed"}
	}
}

// report writes err in the configured format and returns the ExitError
// the command should fail with.
func report(f *OutputFormatter, err error, details interface{}) error {
	fl := classify(err)
	if werr := f.Error(fl.code, err.Error(), details); werr != nil {
		return WrapExitError(ExitCommandError, "failed to write output", werr)
	}
	return WrapExitError(fl.exit, fl.message, err)
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format. Text
// output prints data with fmt, so result types implement fmt.Stringer.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
