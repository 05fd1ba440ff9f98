package payment

import (
	"regexp"
	"strings"

	"eventhub/internal/domain"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3}$`)
	upiHandleRe  = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z]+$`)
)

// Instrument is the tagged payment-method variant a commit is backed
// by. Adding a new method means adding a new variant with its own
// submittable rule; existing variants stay untouched.
type Instrument interface {
	Method() domain.PaymentMethod

	// submittable reports whether this instrument can back a commit,
	// returning the rejection reason when it cannot.
	submittable() error
}

// Card holds normalized card input. All four fields must be present
// and well-formed before the instrument is submittable.
type Card struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVV    string `json:"-"`
}

func (Card) Method() domain.PaymentMethod { return domain.MethodCard }

func (c Card) submittable() error {
	if !cardNumberRe.MatchString(c.Number) ||
		strings.TrimSpace(c.Holder) == "" ||
		!expiryRe.MatchString(c.Expiry) ||
		!cvvRe.MatchString(c.CVV) {
		return ErrMissingCardFields
	}
	return nil
}

// UPI holds an account-transfer handle in localpart@provider form.
// Only a verified handle is submittable.
type UPI struct {
	Handle   string `json:"handle"`
	Verified bool   `json:"verified"`
}

func (UPI) Method() domain.PaymentMethod { return domain.MethodUPI }

func (u UPI) submittable() error {
	if !u.Verified {
		return ErrUnverifiedHandle
	}
	return nil
}
