package apperror

// AppError carries an HTTP status code alongside the user-facing message so
// handlers can map service errors without string matching.
type AppError struct {
	Code    int    // HTTP status code (400, 404, 409, ...)
	Message string // user-facing message
	Err     error  // underlying cause, not exposed to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError around an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
