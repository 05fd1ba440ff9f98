package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111-1111-1111-1111-9999"), "input beyond 16 digits is truncated")
	assert.Equal(t, "4111 11", FormatCardNumber("411111"))
	assert.Equal(t, "", FormatCardNumber("visa"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "12/26", FormatExpiry("1226"))
	assert.Equal(t, "12/26", FormatExpiry("12/26"))
	assert.Equal(t, "12/26", FormatExpiry("122678"))
	assert.Equal(t, "09", FormatExpiry("09"))
	assert.Equal(t, "1", FormatExpiry("1"))
}

func TestFormatCVV(t *testing.T) {
	assert.Equal(t, "123", FormatCVV("1234"))
	assert.Equal(t, "12", FormatCVV("1x2"))
}

func cardValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator()
	require.NoError(t, v.SelectMethod(domain.MethodCard))
	return v
}

func TestValidator_CardComplete(t *testing.T) {
	v := cardValidator(t)

	card, err := v.EnterCard("4111111111111111", "A Kumar", "1226", "123")
	require.NoError(t, err)
	assert.Equal(t, "4111 1111 1111 1111", card.Number)
	assert.Equal(t, "12/26", card.Expiry)

	assert.Equal(t, StateSubmittable, v.State())

	in, err := v.Instrument()
	require.NoError(t, err)
	assert.Equal(t, domain.MethodCard, in.Method())
}

func TestValidator_CardMissingField(t *testing.T) {
	cases := map[string][4]string{
		"number": {"", "A Kumar", "1226", "123"},
		"holder": {"4111111111111111", "", "1226", "123"},
		"expiry": {"4111111111111111", "A Kumar", "", "123"},
		"cvv":    {"4111111111111111", "A Kumar", "1226", ""},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			v := cardValidator(t)
			_, err := v.EnterCard(f[0], f[1], f[2], f[3])
			require.NoError(t, err)

			assert.False(t, v.Submittable())
			_, err = v.Instrument()
			assert.ErrorIs(t, err, ErrMissingCardFields)
		})
	}
}

func TestValidator_CardShortNumberNotSubmittable(t *testing.T) {
	v := cardValidator(t)
	_, err := v.EnterCard("4111", "A Kumar", "1226", "123")
	require.NoError(t, err)

	assert.Equal(t, StateMethodSelected, v.State())
}

func TestValidator_UPIVerifyFlow(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.SelectMethod(domain.MethodUPI))
	assert.Equal(t, StateMethodSelected, v.State())

	require.NoError(t, v.EnterHandle("akumar@ybl"))
	assert.Equal(t, StateFieldsEntered, v.State())
	_, err := v.Instrument()
	assert.ErrorIs(t, err, ErrUnverifiedHandle)

	require.NoError(t, v.VerifyHandle())
	assert.Equal(t, StateSubmittable, v.State())

	in, err := v.Instrument()
	require.NoError(t, err)
	assert.Equal(t, domain.MethodUPI, in.Method())
}

func TestValidator_UPIEditDropsVerification(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.SelectMethod(domain.MethodUPI))
	require.NoError(t, v.EnterHandle("akumar@ybl"))
	require.NoError(t, v.VerifyHandle())
	require.True(t, v.Submittable())

	// Editing the handle must invalidate the earlier verification.
	require.NoError(t, v.EnterHandle("akumar@paytm"))

	assert.Equal(t, StateFieldsEntered, v.State())
	_, err := v.Instrument()
	assert.ErrorIs(t, err, ErrUnverifiedHandle)
}

func TestValidator_VerifyRejectsMalformedHandle(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.SelectMethod(domain.MethodUPI))

	for _, handle := range []string{"", "nohandle", "@ybl", "a kumar@ybl", "akumar@"} {
		require.NoError(t, v.EnterHandle(handle))
		assert.ErrorIs(t, v.VerifyHandle(), ErrInvalidHandle, "handle %q", handle)
	}
}

func TestValidator_SwitchingDiscardsOtherMethod(t *testing.T) {
	v := cardValidator(t)
	_, err := v.EnterCard("4111111111111111", "A Kumar", "1226", "123")
	require.NoError(t, err)
	require.True(t, v.Submittable())

	// Switching to UPI abandons the card input entirely.
	require.NoError(t, v.SelectMethod(domain.MethodUPI))
	assert.Equal(t, StateMethodSelected, v.State())

	// And switching back does not resurrect it.
	require.NoError(t, v.SelectMethod(domain.MethodCard))
	assert.False(t, v.Submittable())
	_, err = v.Instrument()
	assert.ErrorIs(t, err, ErrMissingCardFields)
}

func TestValidator_NoMethodSelected(t *testing.T) {
	v := NewValidator()

	_, err := v.Instrument()
	assert.ErrorIs(t, err, ErrNoMethodSelected)

	_, err = v.EnterCard("4111111111111111", "A Kumar", "1226", "123")
	assert.ErrorIs(t, err, ErrNoMethodSelected)

	assert.ErrorIs(t, v.EnterHandle("akumar@ybl"), ErrNoMethodSelected)
	assert.ErrorIs(t, v.SelectMethod(domain.PaymentMethod("wallet")), ErrUnknownMethod)
}
