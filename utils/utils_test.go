package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowdanie/tfhe/utils"
)

func TestAbs(t *testing.T) {
	require.Equal(t, 3, utils.Abs(-3))
	require.Equal(t, 3, utils.Abs(3))
	require.Equal(t, int32(0), utils.Abs(int32(0)))
}

func TestFloorDiv(t *testing.T) {
	require.Equal(t, 1, utils.FloorDiv(7, 4))
	require.Equal(t, -2, utils.FloorDiv(-7, 4))
	require.Equal(t, -1, utils.FloorDiv(-4, 4))
	require.Equal(t, 0, utils.FloorDiv(0, 4))
}
