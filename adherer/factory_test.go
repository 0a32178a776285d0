package adherer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstantAdhererFactoryValidation(t *testing.T) {
	_, err := NewConstantAdhererFactory(0, math.Pi/36, math.Pi)
	require.ErrorIs(t, err, ErrInvalidConfiguration, "zero jump distance")

	f, err := NewConstantAdhererFactory(0.1, math.Pi/36, math.Pi)
	require.NoError(t, err)

	pivot := flatPivot()
	tangent := pivot.N.Clone()
	tangent[0], tangent[1] = 0, 1 // orthogonal to N
	require.NotNil(t, f.Build(pivot, tangent))
}

func TestBinarySearchAdhererFactoryValidation(t *testing.T) {
	_, err := NewBinarySearchAdhererFactory(0.1, math.Pi/36, math.Pi, -1)
	require.ErrorIs(t, err, ErrInvalidConfiguration, "negative depth")

	f, err := NewBinarySearchAdhererFactory(0.1, math.Pi/36, math.Pi, 5)
	require.NoError(t, err)

	pivot := flatPivot()
	tangent := pivot.N.Clone()
	tangent[0], tangent[1] = 0, 1
	require.NotNil(t, f.Build(pivot, tangent))
}
