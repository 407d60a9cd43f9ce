package pricing

import "fmt"

// Error codes.
const (
	CodeInvalidRoomType   = "InvalidRoomType"
	CodeInvalidNights     = "InvalidNights"
	CodeInvalidGuestCount = "InvalidGuestCount"
)

// Error is a pricing validation failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}
