package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "checkboard", ExpMin: 5}

	token, err := s.Sign("user-1", "alice", "user")
	require.NoError(t, err)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "checkboard", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "checkboard", ExpMin: 5}
	token, err := s.Sign("user-1", "alice", "user")
	require.NoError(t, err)

	other := &Signer{Secret: []byte("different"), Issuer: "checkboard", ExpMin: 5}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "checkboard", ExpMin: -1}
	token, err := s.Sign("user-1", "alice", "user")
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.Error(t, err)
}
