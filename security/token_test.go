package security

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	m := NewTokenMaker("test-secret")

	tok, err := m.Issue("user123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, AccessAuth, claims.Access)
}

func TestIssueUniqueStrings(t *testing.T) {
	m := NewTokenMaker("test-secret")

	// Two sessions opened in the same second must still get
	// distinct token strings
	t1, err := m.Issue("user123")
	require.NoError(t, err)

	t2, err := m.Issue("user123")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := NewTokenMaker("secret-a").Issue("user123")
	require.NoError(t, err)

	_, err = NewTokenMaker("secret-b").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	m := NewTokenMaker("test-secret")

	tok, err := m.Issue("user123")
	require.NoError(t, err)

	_, err = m.Verify(tok[:len(tok)-2])
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewTokenMaker("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestVerifyUnsignedAlg(t *testing.T) {
	m := NewTokenMaker("test-secret")

	// alg=none tokens must never pass, even with a matching payload
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user123",
		"access":  AccessAuth,
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMissingClaims(t *testing.T) {
	m := NewTokenMaker("test-secret")

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"access": AccessAuth,
	})
	tok, err := signed.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
