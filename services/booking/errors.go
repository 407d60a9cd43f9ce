package booking

import "fmt"

// Error codes surfaced by the booking service.
const (
	CodeValidationError  = "ValidationError"
	CodeComplianceFailed = "ComplianceFailed"
	CodeRoomUnavailable  = "RoomUnavailable"
	CodePricingFailed    = "PricingFailed"
	CodeNotFound         = "NotFound"
	CodePaymentFailed    = "PaymentFailed"
)

// ServiceError is a structured booking failure. BusinessRuleViolations carry
// the itemized Issues list.
type ServiceError struct {
	Code    string
	Message string
	Issues  []string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newServiceError(code, msg string) error {
	return &ServiceError{Code: code, Message: msg}
}
