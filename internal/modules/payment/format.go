package payment

import "strings"

const (
	cardNumberDigits = 16
	cardGroupSize    = 4
	expiryDigits     = 4
	cvvDigits        = 3
)

func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

// FormatCardNumber keeps digits only, caps at 16, and groups them in
// runs of four: "4111111111111111" -> "4111 1111 1111 1111".
func FormatCardNumber(s string) string {
	d := digitsOnly(s, cardNumberDigits)

	var b strings.Builder
	for i := 0; i < len(d); i += cardGroupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + cardGroupSize
		if end > len(d) {
			end = len(d)
		}
		b.WriteString(d[i:end])
	}
	return b.String()
}

// FormatExpiry keeps digits only, caps at 4, and inserts the MM/YY
// separator after the second digit.
func FormatExpiry(s string) string {
	d := digitsOnly(s, expiryDigits)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}

// FormatCVV keeps digits only, capped at 3.
func FormatCVV(s string) string {
	return digitsOnly(s, cvvDigits)
}
