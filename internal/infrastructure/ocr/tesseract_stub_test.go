//go:build !ocr
// +build !ocr

package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStubEngine(t *testing.T) {
	e, err := NewEngine("eng")
	require.ErrorIs(t, err, ErrDisabled)
	require.Nil(t, e)

	var stub Engine
	_, err = stub.Recognize(context.Background(), []byte("img"))
	require.ErrorIs(t, err, ErrDisabled)
}
