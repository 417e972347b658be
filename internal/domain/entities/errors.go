package entities

import (
	"errors"
	"fmt"
)

var (
	ErrMissingParentResource  = errors.New("missing parent resource")
	ErrNothingToCancel        = errors.New("payment has neither an authorization nor charges to cancel")
	ErrNothingToCharge        = errors.New("authorization has no open amount left to charge")
	ErrInvalidTransactionURL  = errors.New("invalid transaction url")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrInvalidAmount          = errors.New("invalid amount")
)

// MissingParentResourceError is returned when a cancellation or charge needs
// a parent transaction the payment does not hold.
type MissingParentResourceError struct {
	Parent   TransactionType
	ParentID string
}

func (e *MissingParentResourceError) Error() string {
	switch e.Parent {
	case TransactionTypeAuthorize:
		return "The Authorization object can not be found."
	case TransactionTypeCharge:
		return "The Charge object can not be found."
	default:
		return fmt.Sprintf("The %s object can not be found.", e.Parent)
	}
}

func (e *MissingParentResourceError) Is(target error) bool {
	return target == ErrMissingParentResource
}

// ErrorCode is the closed set of gateway failures the engine reasons about.
type ErrorCode string

const (
	ErrorCodeAlreadyCancelled                ErrorCode = "ALREADY_CANCELLED"
	ErrorCodeAlreadyCharged                  ErrorCode = "ALREADY_CHARGED"
	ErrorCodeAlreadyChargedBack              ErrorCode = "ALREADY_CHARGED_BACK"
	ErrorCodeChargedAmountHigherThanExpected ErrorCode = "CHARGED_AMOUNT_HIGHER_THAN_EXPECTED"
	ErrorCodeAmountIsMissing                 ErrorCode = "AMOUNT_IS_MISSING"
	ErrorCodeCancelReasonCodeIsMissing       ErrorCode = "CANCEL_REASON_CODE_IS_MISSING"
	ErrorCodeUnsupportedOperation            ErrorCode = "UNSUPPORTED_OPERATION"
	ErrorCodePaymentNotFound                 ErrorCode = "PAYMENT_NOT_FOUND"
	ErrorCodeUnknown                         ErrorCode = "UNKNOWN"
)

// GatewayError is a failure reported by the remote payment API.
type GatewayError struct {
	Code            ErrorCode
	APICode         string
	MerchantMessage string
	ClientMessage   string
	StatusCode      int
}

func (e *GatewayError) Error() string {
	msg := e.MerchantMessage
	if msg == "" {
		msg = e.ClientMessage
	}
	if e.APICode != "" {
		return fmt.Sprintf("payment gateway error code=%s api_code=%s status=%d: %s", e.Code, e.APICode, e.StatusCode, msg)
	}
	return fmt.Sprintf("payment gateway error code=%s status=%d: %s", e.Code, e.StatusCode, msg)
}

// Is matches any *GatewayError carrying the same Code, so the sentinels below
// can be used with errors.Is.
func (e *GatewayError) Is(target error) bool {
	t, ok := target.(*GatewayError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrAlreadyCancelled                = &GatewayError{Code: ErrorCodeAlreadyCancelled}
	ErrAlreadyCharged                  = &GatewayError{Code: ErrorCodeAlreadyCharged}
	ErrAlreadyChargedBack              = &GatewayError{Code: ErrorCodeAlreadyChargedBack}
	ErrChargedAmountHigherThanExpected = &GatewayError{Code: ErrorCodeChargedAmountHigherThanExpected}
	ErrAmountIsMissing                 = &GatewayError{Code: ErrorCodeAmountIsMissing}
	ErrCancelReasonCodeIsMissing       = &GatewayError{Code: ErrorCodeCancelReasonCodeIsMissing}
	ErrUnsupportedOperation            = &GatewayError{Code: ErrorCodeUnsupportedOperation}
	ErrPaymentNotFound                 = &GatewayError{Code: ErrorCodePaymentNotFound}
)

// GatewayErrorCode extracts the ErrorCode of a gateway failure, or ErrorCodeUnknown.
func GatewayErrorCode(err error) (ErrorCode, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Code, true
	}
	return ErrorCodeUnknown, false
}

// ToleratedErrors is a set of gateway error codes an operation absorbs as
// settlement races instead of failing.
type ToleratedErrors []ErrorCode

var (
	// AuthorizationCancelTolerated covers reversals of an authorization that
	// was already reversed or fully charged.
	AuthorizationCancelTolerated = ToleratedErrors{ErrorCodeAlreadyCancelled, ErrorCodeAlreadyCharged}

	// ChargeCancelTolerated covers refunds of a charge already refunded,
	// settled or charged back.
	ChargeCancelTolerated = ToleratedErrors{ErrorCodeAlreadyCancelled, ErrorCodeAlreadyCharged, ErrorCodeAlreadyChargedBack}
)

// Tolerates reports whether err is a gateway failure with a code in the set.
func (t ToleratedErrors) Tolerates(err error) bool {
	code, ok := GatewayErrorCode(err)
	if !ok {
		return false
	}
	for _, c := range t {
		if c == code {
			return true
		}
	}
	return false
}
