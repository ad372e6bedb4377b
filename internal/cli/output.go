package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (not diagonalizable where required, etc.)
	ExitCommandError = 2 // Command error (malformed matrix, unknown preset, bad file)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
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

// GetExitCode extracts the exit code from an error. Returns ExitFailure
// if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostic output (defaults to Writer)
	Verbose   bool
	RunID     string // correlates one invocation's outputs; filled lazily
}

// Response is the standard JSON envelope for CLI output.
type Response struct {
	Status string      `json:"status"`           // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`   // success payload
	Error  *ErrorBody  `json:"error,omitempty"`  // error details
	RunID  string      `json:"run_id,omitempty"` // invocation correlation id
}

// ErrorBody is the error structure for JSON responses.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error codes emitted at the boundary.
const (
	ErrCodeBadMatrix     = "BAD_MATRIX"
	ErrCodeUnknownPreset = "UNKNOWN_PRESET"
	ErrCodePresetFile    = "PRESET_FILE"
	ErrCodeBadProgress   = "BAD_PROGRESS"
	ErrCodeBadPoint      = "BAD_POINT"
	ErrCodeViewer        = "VIEWER"
)

// runID returns the formatter's correlation id, generating one on first use.
func (f *OutputFormatter) runID() string {
	if f.RunID == "" {
		f.RunID = uuid.NewString()
	}
	return f.RunID
}

// Success outputs a successful result in the configured format. Text
// rendering is the caller's job; pass the already-formatted string as
// text, the structured payload as data.
func (f *OutputFormatter) Success(data interface{}, text string) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(Response{
			Status: "ok",
			Data:   data,
			RunID:  f.runID(),
		})
	}
	fmt.Fprint(f.Writer, text)
	return nil
}

// Error outputs an error in the configured format and returns an
// ExitError carrying the given exit code.
func (f *OutputFormatter) Error(exitCode int, code, message string, details interface{}) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		_ = enc.Encode(Response{
			Status: "error",
			Error:  &ErrorBody{Code: code, Message: message, Details: details},
			RunID:  f.runID(),
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
		if f.Verbose && details != nil {
			fmt.Fprintf(f.Writer, "Details: %v\n", details)
		}
	}
	return NewExitError(exitCode, fmt.Sprintf("%s: %s", code, message))
}

// VerboseLog outputs a diagnostic line only if verbose mode is enabled.
// Goes to ErrWriter so JSON on the primary writer stays parseable.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
