package ocr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanCode(t *testing.T) {
	require.Equal(t, "4R7", CleanCode(" 4R7\n"))
	require.Equal(t, "103", CleanCode("1 0 3"))
	require.Equal(t, "01C", CleanCode("'01C',"))
	require.Equal(t, "4.7k", CleanCode("4.7k!"))
	require.Empty(t, CleanCode("  \n"))
}
