package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlenaMolokova/checks/internal/constants"
)

func newTestHandler() *TokenHandler {
	return NewTokenHandler("test-secret", 2*time.Hour, 24*time.Hour)
}

func TestIssueAndParse(t *testing.T) {
	h := newTestHandler()

	token, expiresAt, err := h.Issue(constants.TokenTypeAccess, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, 5*time.Second)

	userID, err := h.Parse(token, constants.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseWithoutExpectedType(t *testing.T) {
	h := newTestHandler()

	token, _, err := h.Issue(constants.TokenTypeRefresh, 7)
	require.NoError(t, err)

	userID, err := h.Parse(token, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestParseWrongTokenType(t *testing.T) {
	h := newTestHandler()

	refresh, _, err := h.Issue(constants.TokenTypeRefresh, 42)
	require.NoError(t, err)

	_, err = h.Parse(refresh, constants.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenKind)
}

func TestParseExpired(t *testing.T) {
	h := NewTokenHandler("test-secret", -time.Minute, 24*time.Hour)

	token, _, err := h.Issue(constants.TokenTypeAccess, 42)
	require.NoError(t, err)

	_, err = h.Parse(token, constants.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	h := newTestHandler()
	other := NewTokenHandler("other-secret", 2*time.Hour, 24*time.Hour)

	token, _, err := other.Issue(constants.TokenTypeAccess, 42)
	require.NoError(t, err)

	_, err = h.Parse(token, constants.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseGarbage(t *testing.T) {
	h := newTestHandler()

	_, err := h.Parse("not-a-jwt", constants.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiryForUnknownType(t *testing.T) {
	h := newTestHandler()

	_, err := h.ExpiryFor("session")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no expiry configured")

	_, _, err = h.Issue("session", 42)
	assert.Error(t, err)
}
