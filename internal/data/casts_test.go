package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastModel_LinkTwice(t *testing.T) {
	m := newTestModels(t).Casts

	require.NoError(t, m.Link(1, 2))
	assert.ErrorIs(t, m.Link(1, 2), ErrDuplicateLink)

	// the pair is the key, not either half
	require.NoError(t, m.Link(1, 3))
	require.NoError(t, m.Link(2, 2))

	n, err := m.CountForMovie(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCastModel_Unlink(t *testing.T) {
	m := newTestModels(t).Casts

	require.NoError(t, m.Link(1, 2))
	require.NoError(t, m.Unlink(1, 2))
	require.NoError(t, m.Unlink(1, 2))

	n, err := m.CountForMovie(1)
	require.NoError(t, err)
	assert.Zero(t, n)

	// relinking after an unlink works
	require.NoError(t, m.Link(1, 2))
}
