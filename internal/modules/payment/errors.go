package payment

import "errors"

var (
	ErrUnknownMethod     = errors.New("unknown payment method")
	ErrNoMethodSelected  = errors.New("no payment method selected")
	ErrMissingCardFields = errors.New("card details missing or malformed")
	ErrInvalidHandle     = errors.New("invalid upi id")
	ErrUnverifiedHandle  = errors.New("upi id not verified")
)
