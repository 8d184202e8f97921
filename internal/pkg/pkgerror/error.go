package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeServer     Type = iota // Server-side errors (e.g., storage or filesystem issues).
	TypeBusiness               // Business logic errors (e.g., domain rule violations).
	TypeValidation             // Validation errors (e.g., input validation failures).
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	CodeInternal         Code = iota // Internal or unspecified error.
	CodeInvalidFormat                // Error code for invalid request format.
	CodeInvalidInput                 // Error code for invalid input.
	CodeNotFound                     // Error code for resource not found.
	CodeUnsupportedType              // Error code for a file type outside the allowed set.
	CodeUnreadableFile               // Error code for a file the parser cannot open or read.
	CodePersistence                  // Error code for an unwritable storage location.
	CodeCorruptRecord                // Error code for a stored record that cannot be decoded.
	CodeTemplateMissing              // Error code for a template that cannot be located.
	CodeSourceUnreadable             // Error code for a source file that cannot be opened.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeUnsupportedType:
		return "ERROR_CODE_UNSUPPORTED_TYPE"
	case CodeUnreadableFile:
		return "ERROR_CODE_UNREADABLE_FILE"
	case CodePersistence:
		return "ERROR_CODE_PERSISTENCE"
	case CodeCorruptRecord:
		return "ERROR_CODE_CORRUPT_RECORD"
	case CodeTemplateMissing:
		return "ERROR_CODE_TEMPLATE_MISSING"
	case CodeSourceUnreadable:
		return "ERROR_CODE_SOURCE_UNREADABLE"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	if e.errType == TypeValidation {
		return "Validation violation"
	}

	if e.errType == TypeBusiness {
		return "Logical business not meet with requirement"
	}

	if e.errType == TypeServer {
		return "Internal error"
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeUnsupportedType:
		return http.StatusBadRequest
	case CodeInvalidInput, CodeUnreadableFile, CodeSourceUnreadable:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodePersistence, CodeCorruptRecord, CodeTemplateMissing, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewBusiness creates a business-type error with the specified message and code.
func NewBusiness(msg string, code Code) error {
	return new(nil, msg, TypeBusiness, code)
}

// NewInvalidInput creates a validation error for invalid input with an underlying error.
func NewInvalidInput(err error) error {
	return new(err, "validation error", TypeValidation, CodeInvalidInput)
}

// NewInvalidFormat creates a validation error for an invalid request body format.
func NewInvalidFormat() error {
	return new(nil, "invalid request body", TypeValidation, CodeInvalidFormat)
}

// NewUnsupportedType creates a validation error for a rejected file extension or size.
func NewUnsupportedType(msg string) error {
	return new(nil, msg, TypeValidation, CodeUnsupportedType)
}

// NewUnreadableFile creates a server-type error for a file the parser cannot read.
func NewUnreadableFile(err error) error {
	return new(err, "file could not be read", TypeServer, CodeUnreadableFile)
}

// NewPersistence creates a server-type error for an unwritable storage location.
func NewPersistence(err error) error {
	return new(err, "failed to persist record", TypeServer, CodePersistence)
}

// NewCorruptRecord creates a server-type error for an undecodable stored record.
func NewCorruptRecord(err error) error {
	return new(err, "stored record is corrupt", TypeServer, CodeCorruptRecord)
}

// NewTemplateMissing creates a server-type error for a template that cannot be located.
func NewTemplateMissing(err error) error {
	return new(err, "template could not be located", TypeServer, CodeTemplateMissing)
}

// NewSourceUnreadable creates a server-type error for a source file that cannot be opened.
func NewSourceUnreadable(err error) error {
	return new(err, "source file could not be opened", TypeServer, CodeSourceUnreadable)
}
