package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EMMA019/black-jackgames/internal/game"
)

func TestMemory_LoadCreatesAtInitialBalance(t *testing.T) {
	m := NewMemory()
	b, err := m.Load("sid1")
	require.NoError(t, err)
	assert.Equal(t, game.InitialBalance, b)
}

func TestMemory_SaveThenLoad(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Save("sid1", 640))
	b, err := m.Load("sid1")
	require.NoError(t, err)
	assert.Equal(t, 640, b)
}

func TestMemory_NegativeBalanceClamped(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Save("sid1", -50))
	b, err := m.Load("sid1")
	require.NoError(t, err)
	assert.Equal(t, 0, b)
}

func TestMemory_SessionsAreIndependent(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Save("a", 10))
	b, err := m.Load("b")
	require.NoError(t, err)
	assert.Equal(t, game.InitialBalance, b)
}
