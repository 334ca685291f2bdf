package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	require.NotEqual(t, "pw", hash)

	require.NoError(t, ComparePasswords(hash, "pw"))
	require.Error(t, ComparePasswords(hash, "wrong"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("pw")
	require.NoError(t, err)
	h2, err := HashPassword("pw")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
