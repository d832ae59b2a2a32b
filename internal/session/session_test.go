package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := New("tok-1")
	require.True(t, s.Valid())

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.False(t, s.CreatedAt().IsZero())

	s.Invalidate()
	assert.False(t, s.Valid())
	_, err = s.Token()
	assert.ErrorIs(t, err, ErrInvalidated)

	// invalidate is idempotent
	s.Invalidate()
	assert.False(t, s.Valid())
}

func TestSessionRenew(t *testing.T) {
	s := New("tok-1")
	s.Invalidate()

	s.Renew("tok-2")
	require.True(t, s.Valid())
	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestSessionEmptyToken(t *testing.T) {
	s := New("")
	assert.False(t, s.Valid())
	_, err := s.Token()
	assert.ErrorIs(t, err, ErrInvalidated)
}
