package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGeneratorReturnsUUID(t *testing.T) {
	g := NewRandomGenerator()

	a, err := g.NewID()
	require.NoError(t, err)
	b, err := g.NewID()
	require.NoError(t, err)

	_, err = uuid.Parse(a)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSequenceGenerator(t *testing.T) {
	g := &SequenceGenerator{Prefix: "shot-"}

	first, _ := g.NewID()
	second, _ := g.NewID()

	assert.Equal(t, "shot-1", first)
	assert.Equal(t, "shot-2", second)
}
