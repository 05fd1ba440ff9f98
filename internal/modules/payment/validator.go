package payment

import (
	"strings"

	"eventhub/internal/domain"
)

type State int

const (
	StateUnselected State = iota
	StateMethodSelected
	StateFieldsEntered
	StateVerified
	StateSubmittable
)

func (s State) String() string {
	switch s {
	case StateUnselected:
		return "unselected"
	case StateMethodSelected:
		return "method_selected"
	case StateFieldsEntered:
		return "fields_entered"
	case StateVerified:
		return "verified"
	case StateSubmittable:
		return "submittable"
	}
	return "unknown"
}

// Validator gates checkout submission. It tracks the selected method
// and its entered details and only hands out an Instrument once the
// details are complete (card) or verified (upi).
//
// Not safe for concurrent use; the checkout session serializes access.
type Validator struct {
	method domain.PaymentMethod
	card   Card
	upi    UPI
}

func NewValidator() *Validator {
	return &Validator{}
}

// SelectMethod switches the active method. Switching discards the
// abandoned method's partial input; re-selecting the current method
// keeps it.
func (v *Validator) SelectMethod(m domain.PaymentMethod) error {
	switch m {
	case domain.MethodCard:
		if v.method != m {
			v.upi = UPI{}
		}
	case domain.MethodUPI:
		if v.method != m {
			v.card = Card{}
		}
	default:
		return ErrUnknownMethod
	}
	v.method = m
	return nil
}

// EnterCard normalizes and stores card input, returning the normalized
// form so the caller can echo it back to the user.
func (v *Validator) EnterCard(number, holder, expiry, cvv string) (Card, error) {
	if v.method != domain.MethodCard {
		return Card{}, ErrNoMethodSelected
	}
	v.card = Card{
		Number: FormatCardNumber(number),
		Holder: strings.TrimSpace(holder),
		Expiry: FormatExpiry(expiry),
		CVV:    FormatCVV(cvv),
	}
	return v.card, nil
}

// EnterHandle stores the UPI handle. Any edit drops a previously
// granted verification; it never survives a change of handle.
func (v *Validator) EnterHandle(handle string) error {
	if v.method != domain.MethodUPI {
		return ErrNoMethodSelected
	}
	v.upi = UPI{Handle: strings.TrimSpace(handle)}
	return nil
}

// VerifyHandle marks the entered handle verified. There is no external
// verifier; a handle of valid shape passes.
func (v *Validator) VerifyHandle() error {
	if v.method != domain.MethodUPI {
		return ErrNoMethodSelected
	}
	if !upiHandleRe.MatchString(v.upi.Handle) {
		return ErrInvalidHandle
	}
	v.upi.Verified = true
	return nil
}

func (v *Validator) State() State {
	switch v.method {
	case domain.MethodCard:
		if v.card.submittable() == nil {
			return StateSubmittable
		}
		return StateMethodSelected
	case domain.MethodUPI:
		if v.upi.Verified {
			return StateSubmittable
		}
		if v.upi.Handle != "" {
			return StateFieldsEntered
		}
		return StateMethodSelected
	}
	return StateUnselected
}

func (v *Validator) Submittable() bool {
	return v.State() == StateSubmittable
}

// Instrument returns the submittable instrument, or the reason the
// validator rejects submission. A rejection is a result, not a panic:
// commit paths re-check here rather than trusting caller-side gating.
func (v *Validator) Instrument() (Instrument, error) {
	var in Instrument
	switch v.method {
	case domain.MethodCard:
		in = v.card
	case domain.MethodUPI:
		in = v.upi
	default:
		return nil, ErrNoMethodSelected
	}
	if err := in.submittable(); err != nil {
		return nil, err
	}
	return in, nil
}
