package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7), "Should return the first match")
	require.Equal(t, -1, FindIndex([]string{"N", "S"}, "E"))
	require.Equal(t, -1, FindIndex(nil, 3))
}
