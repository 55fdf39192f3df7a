package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedSourceStaysInRange(t *testing.T) {
	source := NewSeededSource(42)

	for i := 0; i < 500; i++ {
		signal := source.Generate()

		assert.GreaterOrEqual(t, signal.Fixations, 5)
		assert.LessOrEqual(t, signal.Fixations, 20)
		assert.GreaterOrEqual(t, signal.Saccades, 10)
		assert.LessOrEqual(t, signal.Saccades, 30)
		assert.GreaterOrEqual(t, signal.PupilDilation, 2.0)
		assert.LessOrEqual(t, signal.PupilDilation, 5.0)
		assert.GreaterOrEqual(t, signal.Attention.Eyes, 20)
		assert.LessOrEqual(t, signal.Attention.Eyes, 80)
		assert.GreaterOrEqual(t, signal.Attention.Mouth, 10)
		assert.LessOrEqual(t, signal.Attention.Mouth, 60)
		assert.GreaterOrEqual(t, signal.Attention.Objects, 5)
		assert.LessOrEqual(t, signal.Attention.Objects, 40)
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeededSource(7)
	b := NewSeededSource(7)

	for i := 0; i < 20; i++ {
		require.Equal(t, a.Generate(), b.Generate())
	}
}

func TestSimulatedSourceVaries(t *testing.T) {
	source := NewSeededSource(1)

	first := source.Generate()
	varied := false
	for i := 0; i < 50; i++ {
		if source.Generate() != first {
			varied = true
			break
		}
	}
	assert.True(t, varied, "successive captures should not all be identical")
}
