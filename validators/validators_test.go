package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	got, err := EmailValidator("  alice@example.com ")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)

	_, err = EmailValidator("")
	assert.ErrorIs(t, err, ErrEmailEmpty)

	_, err = EmailValidator("   ")
	assert.ErrorIs(t, err, ErrEmailEmpty)

	for _, e := range []string{"not-an-email", "@example.com", "alice@", "Alice <alice@example.com>"} {
		_, err = EmailValidator(e)
		assert.ErrorIs(t, err, ErrEmailInvalid, "email %q", e)
	}
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("secret123"))
	assert.NoError(t, PasswordValidator("12345678"))

	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator("1234567"), ErrPasswordTooShort)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, PasswordValidator(string(long)), ErrPasswordTooLong)
}

func TestTodoTextValidator(t *testing.T) {
	got, err := TodoTextValidator("  buy milk ")
	assert.NoError(t, err)
	assert.Equal(t, "buy milk", got)

	_, err = TodoTextValidator(" ")
	assert.ErrorIs(t, err, ErrTodoTextEmpty)
}
