package apperror

// AppError is a custom error type that includes an HTTP status code and an optional offending field.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Field   string // First violated input field for validation failures (optional)
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Validation creates a 400 AppError carrying the violated field name,
// so callers can surface field-level feedback.
func Validation(field, message string) *AppError {
	return &AppError{
		Code:    400,
		Message: message,
		Field:   field,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
