package idgen

import (
	"strconv"
	"testing"

	"github.com/mamamamad/backend-domjudge/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestUniqueIDWithinRangeAndReserved(t *testing.T) {
	ids := NewCollisionSet("10000", "10001")

	id, err := UniqueID(ids, DefaultLowerID, DefaultUpperID)
	require.NoError(t, err)
	require.GreaterOrEqual(t, id, DefaultLowerID)
	require.LessOrEqual(t, id, DefaultUpperID)
	require.True(t, ids.Has(strconv.Itoa(id)))
	require.Equal(t, 3, ids.Len())
}

func TestUniqueIDNeverRepeatsWithinRun(t *testing.T) {
	ids := NewCollisionSet()
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		id, err := UniqueID(ids, DefaultLowerID, DefaultUpperID)
		require.NoError(t, err)
		require.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
	require.Equal(t, 100, ids.Len())
}

func TestUniqueIDExhaustedRange(t *testing.T) {
	ids := NewCollisionSet("1", "2", "3")

	_, err := UniqueID(ids, 1, 3)
	require.Error(t, err)
	require.ErrorIs(t, err, entities.ErrIDSpaceExhausted)
}

func TestPasswordLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw := Password(10)
		require.Len(t, pw, 10)
		for _, r := range pw {
			require.Contains(t, passwordAlphabet, string(r))
		}
	}
}

func TestUsername(t *testing.T) {
	require.Equal(t, "T12345", Username(12345))
}

func TestUniqueUsernameFreeBase(t *testing.T) {
	names := NewCollisionSet()

	got, err := UniqueUsername("T123", names)
	require.NoError(t, err)
	require.Equal(t, "T123", got)
	require.True(t, names.Has("T123"))
}

func TestUniqueUsernameSuffixProgression(t *testing.T) {
	names := NewCollisionSet("T123")

	first, err := UniqueUsername("T123", names)
	require.NoError(t, err)
	require.Equal(t, "T1231", first)

	second, err := UniqueUsername("T123", names)
	require.NoError(t, err)
	require.Equal(t, "T1232", second)
}

func TestCollisionSetReserve(t *testing.T) {
	s := NewCollisionSet("a")

	require.False(t, s.Reserve("a"))
	require.True(t, s.Reserve("b"))
	require.False(t, s.Reserve("b"))
	require.Equal(t, 2, s.Len())
}
